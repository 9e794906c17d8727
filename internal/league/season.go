package league

import "sort"

// GameLine is how one game of the as-of week is shown.
type GameLine struct {
	Score  *int `json:"score"`
	Absent bool `json:"absent"`
}

// PlayerRanking is one row of the player standings.
type PlayerRanking struct {
	PlayerID           int         `json:"player_id"`
	Name               string      `json:"name"`
	TeamName           string      `json:"team_name"`
	Average            float64     `json:"average"`
	Handicap           int         `json:"handicap"`
	TotalGamesPlayed   int         `json:"total_games_played"`
	TotalSeasonScore   int         `json:"total_season_score"`
	HighestSingle      int         `json:"highest_single"`
	HighestTriple      int         `json:"highest_triple"`
	LastGames          [3]GameLine `json:"last_games"`
	Triple             float64     `json:"triple"`
	TripleWithHandicap float64     `json:"triple_with_handicap"`
	WeekPoints         float64     `json:"week_points"`
	TotalPoints        float64     `json:"total_points"`
}

// TeamRanking is one row of the team standings.
type TeamRanking struct {
	TeamNumber          int     `json:"team_number"`
	TeamName            string  `json:"team_name"`
	TotalAverage        float64 `json:"total_average"`
	TeamHandicap        int     `json:"team_handicap"`
	Victories           int     `json:"victories"`
	BestSinglePoints    int     `json:"best_single_points"`
	PetersonPoints      int     `json:"peterson_points"`
	PlayerMatchupPoints float64 `json:"player_matchup_points"`
	TripleBonusPoints   int     `json:"triple_bonus_points"`
	PreviousWeekPoints  float64 `json:"previous_week_points"`
	CurrentWeekPoints   float64 `json:"current_week_points"`
	TotalPoints         float64 `json:"total_points"`
	PrizeMoney          string  `json:"prize_money"`
}

// Standings is the full computed result as of one week.
type Standings struct {
	Week     int             `json:"week"`
	HasGames bool            `json:"has_games"`
	Players  []PlayerRanking `json:"players"`
	Teams    []TeamRanking   `json:"teams"`
}

// Compute derives player and team standings as of week from the dataset.
// It reads d only and is deterministic for a given input.
func Compute(d Dataset, week int) *Standings {
	weeks := weeksUpTo(d.Games, week)
	snaps := BuildSnapshots(d.Games, append(weeks, week))

	results := make([]WeekResult, 0, len(weeks))
	for _, w := range weeks {
		results = append(results, ComputeWeek(w, BuildLineups(d.Games, w, snaps)))
	}

	st := &Standings{Week: week}
	for _, r := range results {
		if r.Week == week {
			st.HasGames = true
		}
	}
	st.Players = rankPlayers(d, week, snaps, results)
	st.Teams = rankTeams(d, week, snaps, results)
	return st
}

func weeksUpTo(games []Game, week int) []int {
	seen := make(map[int]bool)
	var weeks []int
	for _, g := range games {
		if g.WeekID <= week && !seen[g.WeekID] {
			seen[g.WeekID] = true
			weeks = append(weeks, g.WeekID)
		}
	}
	sort.Ints(weeks)
	return weeks
}

func rankPlayers(d Dataset, week int, snaps Snapshots, results []WeekResult) []PlayerRanking {
	teamNames := make(map[int]string, len(d.Teams))
	for _, t := range d.Teams {
		teamNames[t.ID] = t.Name
	}

	type matchKey struct{ player, matchup int }
	triples := make(map[matchKey][]int)
	rows := make(map[int]*PlayerRanking, len(d.Players))
	for _, p := range d.Players {
		snap := snaps.Lookup(week, p.ID)
		rows[p.ID] = &PlayerRanking{
			PlayerID: p.ID,
			Name:     p.Name,
			TeamName: teamNames[p.TeamID],
			Average:  snap.Average,
			Handicap: snap.Handicap,
		}
	}

	for _, g := range d.Games {
		r := rows[g.PlayerID]
		if r == nil || g.WeekID > week || !g.Counted() {
			continue
		}
		r.TotalGamesPlayed++
		r.TotalSeasonScore += *g.Score
		r.HighestSingle = max(r.HighestSingle, *g.Score)
		k := matchKey{g.PlayerID, g.MatchupID}
		triples[k] = append(triples[k], *g.Score)
	}
	for k, scores := range triples {
		if len(scores) != GamesPerMatchup {
			continue
		}
		sum := 0
		for _, s := range scores {
			sum += s
		}
		rows[k.player].HighestTriple = max(rows[k.player].HighestTriple, sum)
	}

	for _, res := range results {
		for id, pw := range res.Players {
			r := rows[id]
			if r == nil {
				continue
			}
			r.TotalPoints += pw.Points
			if res.Week != week {
				continue
			}
			r.WeekPoints = pw.Points
			for i, g := range pw.Games {
				r.LastGames[i] = GameLine{Score: g.Score, Absent: g.Absent}
			}
			r.Triple = pw.Triple()
			r.TripleWithHandicap = pw.TripleWithHandicap()
		}
	}

	out := make([]PlayerRanking, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Average != b.Average {
			return a.Average > b.Average
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.PlayerID < b.PlayerID
	})
	return out
}

func rankTeams(d Dataset, week int, snaps Snapshots, results []WeekResult) []TeamRanking {
	rows := make(map[int]*TeamRanking, len(d.Teams))
	for _, t := range d.Teams {
		rows[t.ID] = &TeamRanking{TeamNumber: t.ID, TeamName: t.Name}
	}
	for _, p := range d.Players {
		r := rows[p.TeamID]
		if r == nil {
			continue
		}
		snap := snaps.Lookup(week, p.ID)
		r.TotalAverage += snap.Average
		r.TeamHandicap += snap.Handicap
	}

	for _, res := range results {
		for id, tw := range res.Teams {
			r := rows[id]
			if r == nil {
				continue
			}
			r.Victories += tw.Victories
			r.BestSinglePoints += tw.BestSinglePoints
			r.PetersonPoints += tw.PetersonPoints
			r.PlayerMatchupPoints += tw.PlayerMatchupPoints
			r.TripleBonusPoints += tw.TripleBonusPoints
			if res.Week == week {
				r.CurrentWeekPoints += tw.Total()
			} else {
				r.PreviousWeekPoints += tw.Total()
			}
		}
	}

	out := make([]TeamRanking, 0, len(rows))
	for _, r := range rows {
		r.TotalPoints = r.PreviousWeekPoints + r.CurrentWeekPoints
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		return out[i].TeamNumber < out[j].TeamNumber
	})
	for i, money := range Prizes(len(out)) {
		out[i].PrizeMoney = FormatMoney(money)
	}
	return out
}
