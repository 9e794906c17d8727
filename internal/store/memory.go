package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/utakatalp/bowling-league/internal/league"
)

// Memory is an in-process Game Store.
type Memory struct {
	mu       sync.RWMutex
	teams    []league.Team
	players  []league.Player
	matchups int
	games    []league.Game
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) InsertTeams(_ context.Context, teams []league.Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teams = append(m.teams, teams...)
	return nil
}

func (m *Memory) InsertPlayers(_ context.Context, players []league.Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.players = append(m.players, players...)
	return nil
}

// SaveSchedule assigns sequential ids to matchups. Like Postgres it
// refuses a second schedule.
func (m *Memory) SaveSchedule(_ context.Context, matchups []league.Matchup) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.matchups > 0 {
		return fmt.Errorf("%w: %d matchups stored", ErrScheduleExists, m.matchups)
	}
	for i := range matchups {
		m.matchups++
		matchups[i].ID = m.matchups
	}
	return nil
}

// SaveGame appends g, replacing an earlier row for the same
// player, matchup and game number.
func (m *Memory) SaveGame(_ context.Context, g league.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g.Score = copyScore(g.Score)
	for i, old := range m.games {
		if old.PlayerID == g.PlayerID && old.MatchupID == g.MatchupID && old.GameNumber == g.GameNumber {
			m.games[i] = g
			return nil
		}
	}
	m.games = append(m.games, g)
	return nil
}

// Snapshot returns a copy the caller may keep.
func (m *Memory) Snapshot(_ context.Context) (league.Dataset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d := league.Dataset{
		Teams:   append([]league.Team(nil), m.teams...),
		Players: append([]league.Player(nil), m.players...),
		Games:   make([]league.Game, len(m.games)),
	}
	for i, g := range m.games {
		g.Score = copyScore(g.Score)
		d.Games[i] = g
	}
	return d, nil
}

func copyScore(s *int) *int {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
