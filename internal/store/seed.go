package store

import (
	"context"
	"fmt"

	"github.com/utakatalp/bowling-league/internal/league"
)

// Writer is implemented by both Postgres and Memory.
type Writer interface {
	InsertTeams(ctx context.Context, teams []league.Team) error
	InsertPlayers(ctx context.Context, players []league.Player) error
	SaveSchedule(ctx context.Context, matchups []league.Matchup) error
	SaveGame(ctx context.Context, g league.Game) error
}

var demoTeams = []string{"Gutter Kings", "Split Happens", "Pin Pals", "Lane Brains"}

// SeedDemo writes a four-team league with a full lineup per team and
// deterministic scores for the given number of weeks.
func SeedDemo(ctx context.Context, w Writer, weeks int) error {
	teams := make([]league.Team, len(demoTeams))
	var players []league.Player
	for i, name := range demoTeams {
		teams[i] = league.Team{ID: i + 1, Name: name}
		for pos := 1; pos <= league.LineupSize; pos++ {
			players = append(players, league.Player{
				ID:     i*league.LineupSize + pos,
				Name:   fmt.Sprintf("%s %d", name, pos),
				TeamID: teams[i].ID,
			})
		}
	}
	if err := w.InsertTeams(ctx, teams); err != nil {
		return err
	}
	if err := w.InsertPlayers(ctx, players); err != nil {
		return err
	}

	schedule := league.GenerateSchedule(teams, weeks)
	if err := w.SaveSchedule(ctx, schedule); err != nil {
		return err
	}

	for _, m := range schedule {
		for _, p := range players {
			if p.TeamID != m.Team1ID && p.TeamID != m.Team2ID {
				continue
			}
			absent := (p.ID+m.WeekID)%11 == 0
			for n := 1; n <= league.GamesPerMatchup; n++ {
				score := 120 + (p.ID*37+m.WeekID*53+n*29)%131
				g := league.Game{
					PlayerID:       p.ID,
					TeamID:         p.TeamID,
					MatchupID:      m.ID,
					WeekID:         m.WeekID,
					Team1ID:        m.Team1ID,
					Team2ID:        m.Team2ID,
					LineupPosition: (p.ID-1)%league.LineupSize + 1,
					GameNumber:     n,
					Absent:         absent,
				}
				if !absent {
					g.Score = &score
				}
				if err := w.SaveGame(ctx, g); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
