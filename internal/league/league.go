package league

import (
	"errors"
	"fmt"
)

const (
	GamesPerMatchup = 3
	LineupSize      = 5

	MaxScore = 300
)

var (
	ErrInvalidWeek = errors.New("invalid week")
	ErrInvalidGame = errors.New("invalid game")
)

// Team is a club of five bowlers.
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Player belongs to exactly one team for the season.
type Player struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	TeamID int    `json:"team_id"`
}

// Game is one recorded game of a player in a matchup.
// A nil Score means nothing was recorded.
type Game struct {
	PlayerID       int  `json:"player_id"`
	TeamID         int  `json:"team_id"`
	MatchupID      int  `json:"matchup_id"`
	WeekID         int  `json:"week_id"`
	Team1ID        int  `json:"team1_id"`
	Team2ID        int  `json:"team2_id"`
	LineupPosition int  `json:"lineup_position"`
	GameNumber     int  `json:"game_number"`
	Score          *int `json:"score"`
	Absent         bool `json:"absent"`
}

// Counted reports whether the game counts toward the player's average.
func (g Game) Counted() bool {
	return g.Score != nil && !g.Absent
}

// Effective is the score used in comparisons: the recorded score when
// counted, the player's average otherwise.
func (g Game) Effective(average float64) float64 {
	if g.Counted() {
		return float64(*g.Score)
	}
	return average
}

// Matchup pairs two teams within a week.
type Matchup struct {
	ID      int `json:"id"`
	WeekID  int `json:"week_id"`
	Team1ID int `json:"team1_id"`
	Team2ID int `json:"team2_id"`
}

// Dataset is a full materialized snapshot of the Game Store.
type Dataset struct {
	Teams   []Team
	Players []Player
	Games   []Game
}

// Validate checks every row once, at the store boundary.
func (d Dataset) Validate() error {
	teams := make(map[int]bool, len(d.Teams))
	for _, t := range d.Teams {
		teams[t.ID] = true
	}
	players := make(map[int]bool, len(d.Players))
	for _, p := range d.Players {
		if !teams[p.TeamID] {
			return fmt.Errorf("%w: player %d (%s) references unknown team %d", ErrInvalidGame, p.ID, p.Name, p.TeamID)
		}
		players[p.ID] = true
	}

	type slot struct{ player, matchup, game int }
	type seat struct{ matchup, team, position int }
	type entry struct{ player, matchup int }
	seen := make(map[slot]bool, len(d.Games))
	seated := make(map[seat]int)
	positions := make(map[entry]int)
	matchups := make(map[int]Matchup)
	for _, g := range d.Games {
		switch {
		case !players[g.PlayerID]:
			return fmt.Errorf("%w: unknown player %d in matchup %d", ErrInvalidGame, g.PlayerID, g.MatchupID)
		case !teams[g.Team1ID] || !teams[g.Team2ID]:
			return fmt.Errorf("%w: matchup %d references unknown team (%d v %d)", ErrInvalidGame, g.MatchupID, g.Team1ID, g.Team2ID)
		case g.Team1ID == g.Team2ID:
			return fmt.Errorf("%w: matchup %d pairs team %d with itself", ErrInvalidGame, g.MatchupID, g.Team1ID)
		case g.TeamID != g.Team1ID && g.TeamID != g.Team2ID:
			return fmt.Errorf("%w: team %d not part of matchup %d", ErrInvalidGame, g.TeamID, g.MatchupID)
		case g.WeekID < 1:
			return fmt.Errorf("%w: week %d in matchup %d", ErrInvalidGame, g.WeekID, g.MatchupID)
		case g.GameNumber < 1 || g.GameNumber > GamesPerMatchup:
			return fmt.Errorf("%w: game number %d for player %d", ErrInvalidGame, g.GameNumber, g.PlayerID)
		case g.LineupPosition < 1 || g.LineupPosition > LineupSize:
			return fmt.Errorf("%w: lineup position %d for player %d", ErrInvalidGame, g.LineupPosition, g.PlayerID)
		case g.Score != nil && (*g.Score < 0 || *g.Score > MaxScore):
			return fmt.Errorf("%w: score %d for player %d", ErrInvalidGame, *g.Score, g.PlayerID)
		}
		m := Matchup{ID: g.MatchupID, WeekID: g.WeekID, Team1ID: g.Team1ID, Team2ID: g.Team2ID}
		if first, ok := matchups[g.MatchupID]; ok && first != m {
			return fmt.Errorf("%w: matchup %d rows disagree: week %d %d v %d against week %d %d v %d",
				ErrInvalidGame, g.MatchupID, first.WeekID, first.Team1ID, first.Team2ID, m.WeekID, m.Team1ID, m.Team2ID)
		}
		matchups[g.MatchupID] = m
		e := entry{g.PlayerID, g.MatchupID}
		if pos, ok := positions[e]; ok && pos != g.LineupPosition {
			return fmt.Errorf("%w: player %d bowls at positions %d and %d in matchup %d",
				ErrInvalidGame, g.PlayerID, pos, g.LineupPosition, g.MatchupID)
		}
		positions[e] = g.LineupPosition
		k := slot{g.PlayerID, g.MatchupID, g.GameNumber}
		if seen[k] {
			return fmt.Errorf("%w: duplicate game %d for player %d in matchup %d", ErrInvalidGame, g.GameNumber, g.PlayerID, g.MatchupID)
		}
		seen[k] = true
		st := seat{g.MatchupID, g.TeamID, g.LineupPosition}
		if id, ok := seated[st]; ok && id != g.PlayerID {
			return fmt.Errorf("%w: players %d and %d share lineup position %d in matchup %d", ErrInvalidGame, id, g.PlayerID, g.LineupPosition, g.MatchupID)
		}
		seated[st] = g.PlayerID
	}
	return nil
}

// LatestWeek returns the highest week with a recorded game, or 0.
func (d Dataset) LatestWeek() int {
	latest := 0
	for _, g := range d.Games {
		if g.WeekID > latest {
			latest = g.WeekID
		}
	}
	return latest
}
