package store

import (
	"context"
	"errors"
	"testing"

	"github.com/utakatalp/bowling-league/internal/league"
)

func TestMemory_SaveGameReplacesSlot(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	first, second := 180, 215
	g := league.Game{PlayerID: 1, TeamID: 1, MatchupID: 4, WeekID: 2, GameNumber: 1, LineupPosition: 1, Score: &first}

	if err := m.SaveGame(ctx, g); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}
	g.Score = &second
	if err := m.SaveGame(ctx, g); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	d, err := m.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(d.Games) != 1 {
		t.Fatalf("games = %d, want 1", len(d.Games))
	}
	if *d.Games[0].Score != 215 {
		t.Errorf("score = %d, want 215", *d.Games[0].Score)
	}
}

func TestMemory_SnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	s := 200
	_ = m.InsertTeams(ctx, []league.Team{{ID: 1, Name: "Pinheads"}})
	_ = m.SaveGame(ctx, league.Game{PlayerID: 1, TeamID: 1, MatchupID: 1, WeekID: 1, GameNumber: 1, LineupPosition: 1, Score: &s})
	s = 0

	d, _ := m.Snapshot(ctx)
	*d.Games[0].Score = 99
	d.Teams[0].Name = "changed"

	again, _ := m.Snapshot(ctx)
	if *again.Games[0].Score != 200 {
		t.Errorf("stored score = %d, want 200", *again.Games[0].Score)
	}
	if again.Teams[0].Name != "Pinheads" {
		t.Errorf("stored team = %q, want Pinheads", again.Teams[0].Name)
	}
}

func TestSeedDemo(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	if err := SeedDemo(ctx, m, 3); err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}
	d, _ := m.Snapshot(ctx)

	if err := d.Validate(); err != nil {
		t.Fatalf("seeded dataset invalid: %v", err)
	}
	if len(d.Teams) != 4 || len(d.Players) != 20 {
		t.Errorf("teams/players = %d/%d, want 4/20", len(d.Teams), len(d.Players))
	}
	// 3 weeks x 2 matchups x 10 bowlers x 3 games
	if len(d.Games) != 180 {
		t.Errorf("games = %d, want 180", len(d.Games))
	}
	if d.LatestWeek() != 3 {
		t.Errorf("LatestWeek = %d, want 3", d.LatestWeek())
	}
}

func TestMemory_SaveScheduleOnce(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	teams := []league.Team{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}

	first := league.GenerateSchedule(teams, 3)
	if err := m.SaveSchedule(ctx, first); err != nil {
		t.Fatalf("SaveSchedule: %v", err)
	}
	if first[0].ID != 1 || first[len(first)-1].ID != len(first) {
		t.Errorf("ids = %d..%d, want 1..%d", first[0].ID, first[len(first)-1].ID, len(first))
	}

	again := league.GenerateSchedule(teams, 3)
	if err := m.SaveSchedule(ctx, again); !errors.Is(err, ErrScheduleExists) {
		t.Errorf("second SaveSchedule err = %v, want ErrScheduleExists", err)
	}
	if again[0].ID != 0 {
		t.Errorf("refused schedule got id %d, want 0", again[0].ID)
	}
}

func TestSeedDemo_ThenScheduleRefused(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	if err := SeedDemo(ctx, m, 2); err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}
	d, _ := m.Snapshot(ctx)
	if err := m.SaveSchedule(ctx, league.GenerateSchedule(d.Teams, 2)); !errors.Is(err, ErrScheduleExists) {
		t.Errorf("SaveSchedule after seed err = %v, want ErrScheduleExists", err)
	}
}
