package config

import (
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/bowling")
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Database.URL != "postgres://localhost/bowling" {
		t.Errorf("Database.URL = %q", c.Database.URL)
	}
	if c.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q, want :8080", c.HTTP.Addr)
	}
	if c.Report.Hour != 8 || c.Report.Timezone != "America/Chicago" {
		t.Errorf("Report = %+v, want hour 8 in America/Chicago", c.Report)
	}
	if d, _ := c.Report.Day(); d != time.Tuesday {
		t.Errorf("Report.Day = %v, want Tuesday", d)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"hour out of range", map[string]string{"REPORT_HOUR": "24"}},
		{"hour not a number", map[string]string{"REPORT_HOUR": "noon"}},
		{"bad weekday", map[string]string{"REPORT_WEEKDAY": "Funday"}},
		{"token without chat", map[string]string{"TELEGRAM_TOKEN": "123:abc"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := New(); err == nil {
				t.Error("New succeeded, want error")
			}
		})
	}
}

func TestReportDay(t *testing.T) {
	d, err := Report{Weekday: "friday"}.Day()
	if err != nil || d != time.Friday {
		t.Errorf("Day = %v, %v, want Friday", d, err)
	}
}
