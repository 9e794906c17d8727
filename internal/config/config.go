package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Database    Database
	HTTP        HTTP
	TelegramBot TelegramBot
	Report      Report
}

type Database struct {
	URL string `envconfig:"DATABASE_URL"`
}

type HTTP struct {
	Addr string `envconfig:"HTTP_ADDR" default:":8080"`
}

// TelegramBot is optional; reports are only logged when Token is empty.
type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

type Report struct {
	Weekday  string `envconfig:"REPORT_WEEKDAY" default:"Tuesday"`
	Hour     uint   `envconfig:"REPORT_HOUR" default:"8"`
	Timezone string `envconfig:"TIMEZONE" default:"America/Chicago"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	if c.Report.Hour > 23 {
		return nil, fmt.Errorf("REPORT_HOUR %d out of range", c.Report.Hour)
	}
	if _, err := c.Report.Day(); err != nil {
		return nil, err
	}
	if c.TelegramBot.Token != "" && c.TelegramBot.ChatID == 0 {
		return nil, fmt.Errorf("CHAT_ID is required with TELEGRAM_TOKEN")
	}
	return &c, nil
}

// Day parses Weekday case-insensitively.
func (r Report) Day() (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), r.Weekday) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("REPORT_WEEKDAY %q is not a weekday", r.Weekday)
}
