package league

func score(n int) *int { return &n }

// bowler builds a lineup slot with an established average and the given
// recorded scores for games 1..3.
func bowler(playerID int, average float64, scores ...int) *Bowler {
	b := &Bowler{
		PlayerID: playerID,
		Snapshot: Snapshot{Average: average, Handicap: Handicap(average), Games: 3},
	}
	for i, s := range scores {
		b.Games[i] = Game{PlayerID: playerID, GameNumber: i + 1, Score: score(s)}
	}
	return b
}

// games expands a player's three scores in one matchup into rows.
func games(playerID, teamID int, m Matchup, position int, scores ...int) []Game {
	rows := make([]Game, 0, len(scores))
	for i, s := range scores {
		rows = append(rows, Game{
			PlayerID:       playerID,
			TeamID:         teamID,
			MatchupID:      m.ID,
			WeekID:         m.WeekID,
			Team1ID:        m.Team1ID,
			Team2ID:        m.Team2ID,
			LineupPosition: position,
			GameNumber:     i + 1,
			Score:          score(s),
		})
	}
	return rows
}

// twoWeekDataset is a two-team league with one bowler a side.
//
//	week 1 (both at default handicap 36): 200x3 v 180x3
//	week 2 (200 hcp 16 v 180 hcp 24):     210,195,195 v 190,195,195
func twoWeekDataset() Dataset {
	w1 := Matchup{ID: 10, WeekID: 1, Team1ID: 1, Team2ID: 2}
	w2 := Matchup{ID: 20, WeekID: 2, Team1ID: 1, Team2ID: 2}
	d := Dataset{
		Teams:   []Team{{ID: 1, Name: "Gutter Kings"}, {ID: 2, Name: "Split Happens"}},
		Players: []Player{{ID: 1, Name: "Ann", TeamID: 1}, {ID: 2, Name: "Bob", TeamID: 2}},
	}
	d.Games = append(d.Games, games(1, 1, w1, 1, 200, 200, 200)...)
	d.Games = append(d.Games, games(2, 2, w1, 1, 180, 180, 180)...)
	d.Games = append(d.Games, games(1, 1, w2, 1, 210, 195, 195)...)
	d.Games = append(d.Games, games(2, 2, w2, 1, 190, 195, 195)...)
	return d
}
