package league

import "sort"

const (
	VictoryPoints     = 5
	TripleBonusPoints = 10
	PetersonTop       = 24
)

// BestSingleAwards are paid to the top three team games of the week.
var BestSingleAwards = []int{30, 25, 20}

// MatchupLineup holds both lineups of a matchup indexed by position - 1.
type MatchupLineup struct {
	Matchup
	Lineup1 [LineupSize]*Bowler
	Lineup2 [LineupSize]*Bowler
}

func (m *MatchupLineup) side(teamID int) *[LineupSize]*Bowler {
	if teamID == m.Team1ID {
		return &m.Lineup1
	}
	return &m.Lineup2
}

// BuildLineups groups the games of one week into matchups, attaching each
// bowler's snapshot for that week. Matchups are ordered by id.
func BuildLineups(games []Game, week int, snaps Snapshots) []MatchupLineup {
	index := make(map[int]*MatchupLineup)
	for _, g := range games {
		if g.WeekID != week {
			continue
		}
		m := index[g.MatchupID]
		if m == nil {
			m = &MatchupLineup{Matchup: Matchup{
				ID:      g.MatchupID,
				WeekID:  g.WeekID,
				Team1ID: g.Team1ID,
				Team2ID: g.Team2ID,
			}}
			index[g.MatchupID] = m
		}
		side := m.side(g.TeamID)
		b := side[g.LineupPosition-1]
		if b == nil {
			b = &Bowler{
				PlayerID: g.PlayerID,
				TeamID:   g.TeamID,
				Position: g.LineupPosition,
				Snapshot: snaps.Lookup(week, g.PlayerID),
			}
			side[g.LineupPosition-1] = b
		}
		b.Games[g.GameNumber-1] = g
	}

	lineups := make([]MatchupLineup, 0, len(index))
	for _, m := range index {
		lineups = append(lineups, *m)
	}
	sort.Slice(lineups, func(i, j int) bool { return lineups[i].ID < lineups[j].ID })
	return lineups
}

// TeamWeek is a team's bonus breakdown for one week.
type TeamWeek struct {
	TeamID              int
	Score               TeamScore
	Victories           int
	BestSinglePoints    int
	PetersonPoints      int
	TripleBonusPoints   int
	PlayerMatchupPoints float64
}

// Total is the team's point haul for the week.
func (t *TeamWeek) Total() float64 {
	return float64(t.Victories*VictoryPoints+t.BestSinglePoints+t.PetersonPoints+t.TripleBonusPoints) +
		t.PlayerMatchupPoints
}

// PlayerWeek is a bowler's line for one week.
type PlayerWeek struct {
	Bowler
	Points float64
}

// WeekResult is the aggregate of one week, merged later by the season fold.
type WeekResult struct {
	Week    int
	Teams   map[int]*TeamWeek
	Players map[int]*PlayerWeek
}

// ComputeWeek scores every matchup of a week and applies the league-wide
// bonus categories.
func ComputeWeek(week int, lineups []MatchupLineup) WeekResult {
	res := WeekResult{
		Week:    week,
		Teams:   make(map[int]*TeamWeek),
		Players: make(map[int]*PlayerWeek),
	}
	team := func(id int) *TeamWeek {
		t := res.Teams[id]
		if t == nil {
			t = &TeamWeek{TeamID: id}
			res.Teams[id] = t
		}
		return t
	}
	player := func(b *Bowler) *PlayerWeek {
		p := res.Players[b.PlayerID]
		if p == nil {
			p = &PlayerWeek{}
			res.Players[b.PlayerID] = p
		}
		p.Bowler = *b
		return p
	}

	var scores []TeamScore
	for i := range lineups {
		m := &lineups[i]
		t1, t2 := team(m.Team1ID), team(m.Team2ID)

		for pos := 0; pos < LineupSize; pos++ {
			a, b := m.Lineup1[pos], m.Lineup2[pos]
			switch {
			case a != nil && b != nil:
				pa, pb := MatchPoints(a, b)
				player(a).Points += pa
				player(b).Points += pb
				t1.PlayerMatchupPoints += pa
				t2.PlayerMatchupPoints += pb
			case a != nil:
				player(a)
			case b != nil:
				player(b)
			}
		}

		s1 := AggregateTeam(m.Team1ID, m.Lineup1[:])
		s2 := AggregateTeam(m.Team2ID, m.Lineup2[:])
		t1.Score, t2.Score = s1, s2
		scores = append(scores, s1, s2)

		for g := 0; g < GamesPerMatchup; g++ {
			switch h1, h2 := s1.GameWithHandicap(g), s2.GameWithHandicap(g); {
			case h1 > h2:
				t1.Victories++
			case h2 > h1:
				t2.Victories++
			}
		}
		switch h1, h2 := s1.TripleWithHandicap(), s2.TripleWithHandicap(); {
		case h1 > h2:
			t1.TripleBonusPoints += TripleBonusPoints
		case h2 > h1:
			t2.TripleBonusPoints += TripleBonusPoints
		}
	}

	for _, award := range bestSingle(scores) {
		team(award.teamID).BestSinglePoints += award.points
	}
	for teamID, pts := range peterson(scores) {
		team(teamID).PetersonPoints += pts
	}
	return res
}

type teamAward struct {
	teamID int
	points int
}

// bestSingle pools every team game of the week and pays the top entries.
// Equal scores go to the lower team id, then the earlier game.
func bestSingle(scores []TeamScore) []teamAward {
	type entry struct {
		teamID, game int
		value        float64
	}
	pool := make([]entry, 0, len(scores)*GamesPerMatchup)
	for _, s := range scores {
		for g := 0; g < GamesPerMatchup; g++ {
			pool = append(pool, entry{s.TeamID, g, s.GameWithHandicap(g)})
		}
	}
	sort.Slice(pool, func(i, j int) bool {
		a, b := pool[i], pool[j]
		if a.value != b.value {
			return a.value > b.value
		}
		if a.teamID != b.teamID {
			return a.teamID < b.teamID
		}
		return a.game < b.game
	})

	awards := make([]teamAward, 0, len(BestSingleAwards))
	for i, pts := range BestSingleAwards {
		if i >= len(pool) {
			break
		}
		awards = append(awards, teamAward{pool[i].teamID, pts})
	}
	return awards
}

// peterson ranks all teams in each of the four categories (three games and
// the triple, all with handicap) and pays 24 for first, one less per rank.
// Equal values go to the lower team id.
func peterson(scores []TeamScore) map[int]int {
	categories := make([]func(TeamScore) float64, 0, GamesPerMatchup+1)
	for g := 0; g < GamesPerMatchup; g++ {
		g := g
		categories = append(categories, func(s TeamScore) float64 { return s.GameWithHandicap(g) })
	}
	categories = append(categories, TeamScore.TripleWithHandicap)

	points := make(map[int]int, len(scores))
	ranked := append([]TeamScore(nil), scores...)
	for _, value := range categories {
		sort.Slice(ranked, func(i, j int) bool {
			a, b := value(ranked[i]), value(ranked[j])
			if a != b {
				return a > b
			}
			return ranked[i].TeamID < ranked[j].TeamID
		})
		for rank, s := range ranked {
			points[s.TeamID] += PetersonTop - rank
		}
	}
	return points
}
