package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeReporter struct {
	report string
	err    error
}

func (f fakeReporter) StandingsReport(context.Context) (string, error) {
	return f.report, f.err
}

func TestSendStandings(t *testing.T) {
	var sent []string
	send := func(text string) error {
		sent = append(sent, text)
		return nil
	}

	s, err := NewScheduler(fakeReporter{report: "week 3"}, send, time.UTC)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	s.sendStandings()
	if len(sent) != 1 || sent[0] != "week 3" {
		t.Errorf("sent = %v, want [week 3]", sent)
	}

	s.reporter = fakeReporter{err: errors.New("store down")}
	s.sendStandings()
	if len(sent) != 1 {
		t.Errorf("sent after report failure = %v, want nothing new", sent)
	}
}

func TestStartStop(t *testing.T) {
	s, err := NewScheduler(fakeReporter{}, func(string) error { return nil }, time.UTC)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	if err := s.Start(time.Tuesday, 8); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if jobs := s.s.Jobs(); len(jobs) != 1 {
		t.Errorf("jobs = %d, want 1", len(jobs))
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}
