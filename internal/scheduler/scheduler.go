package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

type Reporter interface {
	StandingsReport(ctx context.Context) (string, error)
}

type Scheduler struct {
	s           gocron.Scheduler
	reporter    Reporter
	sendMessage func(string) error
}

func NewScheduler(reporter Reporter, sendMessage func(string) error, location *time.Location) (*Scheduler, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		reporter:    reporter,
		sendMessage: sendMessage,
	}, nil
}

// Start posts the standings once a week, the morning after league night.
func (s *Scheduler) Start(day time.Weekday, hour uint) error {
	_, err := s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(day), gocron.NewAtTimes(gocron.NewAtTime(hour, 0, 0))),
		gocron.NewTask(s.sendStandings),
	)
	if err != nil {
		return fmt.Errorf("failed to create standings job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendStandings() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	report, err := s.reporter.StandingsReport(ctx)
	if err != nil {
		slog.Error("Failed to build standings report", "error", err)
		return
	}
	if err := s.sendMessage(report); err != nil {
		slog.Error("Failed to send standings report", "error", err)
	}
}
