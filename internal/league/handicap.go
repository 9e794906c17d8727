package league

import (
	"math"
	"sort"
)

const (
	DefaultAverage  = 150.0
	DefaultHandicap = 36

	handicapBase = 240.0
)

// Snapshot is a player's average and handicap going into a week.
type Snapshot struct {
	Average  float64
	Handicap int
	Games    int
}

// Handicap returns max(0, floor((240 - average) * 0.40)).
func Handicap(average float64) int {
	// *2/5 keeps integer averages exact where *0.4 can land just below
	// a whole number.
	h := math.Floor((handicapBase - average) * 2 / 5)
	if h < 0 {
		return 0
	}
	return int(h)
}

// NewSnapshot derives the snapshot from a running total. No games yields the
// league defaults.
func NewSnapshot(total, count int) Snapshot {
	if count == 0 {
		return Snapshot{Average: DefaultAverage, Handicap: DefaultHandicap}
	}
	avg := float64(total) / float64(count)
	return Snapshot{Average: avg, Handicap: Handicap(avg), Games: count}
}

// Snapshots is the week-indexed table of per-player snapshots.
type Snapshots map[int]map[int]Snapshot

// Lookup returns the player's snapshot for week, falling back to defaults.
func (s Snapshots) Lookup(week, playerID int) Snapshot {
	if snap, ok := s[week][playerID]; ok {
		return snap
	}
	return NewSnapshot(0, 0)
}

// BuildSnapshots computes, for every requested week, each player's snapshot
// from the counted games played strictly before that week.
func BuildSnapshots(games []Game, weeks []int) Snapshots {
	byWeek := make(map[int][]Game)
	for _, g := range games {
		if g.Counted() {
			byWeek[g.WeekID] = append(byWeek[g.WeekID], g)
		}
	}
	played := make([]int, 0, len(byWeek))
	for w := range byWeek {
		played = append(played, w)
	}
	sort.Ints(played)

	wanted := append([]int(nil), weeks...)
	sort.Ints(wanted)

	type running struct{ total, count int }
	totals := make(map[int]*running)
	table := make(Snapshots, len(wanted))
	next := 0
	for _, week := range wanted {
		for next < len(played) && played[next] < week {
			for _, g := range byWeek[played[next]] {
				r := totals[g.PlayerID]
				if r == nil {
					r = &running{}
					totals[g.PlayerID] = r
				}
				r.total += *g.Score
				r.count++
			}
			next++
		}
		snaps := make(map[int]Snapshot, len(totals))
		for id, r := range totals {
			snaps[id] = NewSnapshot(r.total, r.count)
		}
		table[week] = snaps
	}
	return table
}
