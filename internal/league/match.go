package league

// PointsPerPosition is what one lineup position puts at stake in a matchup:
// one point per game plus one for the triple.
const PointsPerPosition = GamesPerMatchup + 1

// Bowler is one player's side of a lineup position in a matchup.
// Games is indexed by game number - 1; a zero Game counts as absent.
type Bowler struct {
	PlayerID int
	TeamID   int
	Position int
	Games    [GamesPerMatchup]Game
	Snapshot
}

// Effective returns the effective score of game i (0-based).
func (b *Bowler) Effective(i int) float64 {
	return b.Games[i].Effective(b.Average)
}

// Triple sums the three effective scores, without handicap.
func (b *Bowler) Triple() float64 {
	var sum float64
	for i := range b.Games {
		sum += b.Effective(i)
	}
	return sum
}

// TripleWithHandicap adds the handicap once per game.
func (b *Bowler) TripleWithHandicap() float64 {
	return b.Triple() + float64(b.Handicap*GamesPerMatchup)
}

// compare awards one point to the higher score and splits a tie.
func compare(a, b float64) (float64, float64) {
	switch {
	case a > b:
		return 1, 0
	case b > a:
		return 0, 1
	default:
		return 0.5, 0.5
	}
}

// MatchPoints plays the two bowlers of a lineup position against each other
// on handicap-adjusted scores. The returned points always sum to 4.
func MatchPoints(a, b *Bowler) (float64, float64) {
	var pa, pb float64
	for i := 0; i < GamesPerMatchup; i++ {
		x, y := compare(
			a.Effective(i)+float64(a.Handicap),
			b.Effective(i)+float64(b.Handicap),
		)
		pa += x
		pb += y
	}
	x, y := compare(a.TripleWithHandicap(), b.TripleWithHandicap())
	return pa + x, pb + y
}
