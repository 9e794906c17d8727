package league

// TeamScore is a team's aggregate for one matchup.
type TeamScore struct {
	TeamID   int
	Games    [GamesPerMatchup]float64
	Handicap int
}

// AggregateTeam sums the effective scores and handicaps of a team's
// lineup. Empty lineup slots contribute nothing.
func AggregateTeam(teamID int, lineup []*Bowler) TeamScore {
	ts := TeamScore{TeamID: teamID}
	for _, b := range lineup {
		if b == nil {
			continue
		}
		for i := range ts.Games {
			ts.Games[i] += b.Effective(i)
		}
		ts.Handicap += b.Handicap
	}
	return ts
}

// GameWithHandicap returns game i (0-based) plus the team handicap.
func (ts TeamScore) GameWithHandicap(i int) float64 {
	return ts.Games[i] + float64(ts.Handicap)
}

func (ts TeamScore) Triple() float64 {
	var sum float64
	for _, g := range ts.Games {
		sum += g
	}
	return sum
}

func (ts TeamScore) TripleWithHandicap() float64 {
	return ts.Triple() + float64(ts.Handicap*GamesPerMatchup)
}
