package league

import "testing"

func TestHandicap(t *testing.T) {
	tests := []struct {
		average float64
		want    int
	}{
		{150, 36},
		{200, 16},
		{180, 24},
		{215, 10},
		{230, 4},
		{239, 0},
		{240, 0},
		{265, 0},
		{187.5, 21},
		{0, 96},
	}
	for _, tc := range tests {
		if got := Handicap(tc.average); got != tc.want {
			t.Errorf("Handicap(%v) = %d, want %d", tc.average, got, tc.want)
		}
	}
}

func TestNewSnapshot_Defaults(t *testing.T) {
	s := NewSnapshot(0, 0)
	if s.Average != 150 || s.Handicap != 36 || s.Games != 0 {
		t.Errorf("NewSnapshot(0, 0) = %+v, want average 150 handicap 36", s)
	}
}

func TestBuildSnapshots_StrictlyPriorWeeks(t *testing.T) {
	w1 := Matchup{ID: 1, WeekID: 1, Team1ID: 1, Team2ID: 2}
	w2 := Matchup{ID: 2, WeekID: 2, Team1ID: 1, Team2ID: 2}
	rows := games(7, 1, w1, 1, 200, 210, 220)
	rows = append(rows, games(7, 1, w2, 1, 190)...)
	// absent games never count, whatever their recorded score
	rows = append(rows, Game{PlayerID: 7, TeamID: 1, MatchupID: 2, WeekID: 2, GameNumber: 2, Score: score(50), Absent: true})
	// missing score never counts
	rows = append(rows, Game{PlayerID: 7, TeamID: 1, MatchupID: 2, WeekID: 2, GameNumber: 3})

	snaps := BuildSnapshots(rows, []int{3, 1, 2})

	if got := snaps.Lookup(1, 7); got.Average != 150 || got.Handicap != 36 {
		t.Errorf("week 1 snapshot = %+v, want defaults", got)
	}
	if got := snaps.Lookup(2, 7); got.Average != 210 || got.Handicap != 12 || got.Games != 3 {
		t.Errorf("week 2 snapshot = %+v, want average 210 handicap 12 over 3 games", got)
	}
	if got := snaps.Lookup(3, 7); got.Average != 205 || got.Handicap != 14 || got.Games != 4 {
		t.Errorf("week 3 snapshot = %+v, want average 205 handicap 14 over 4 games", got)
	}
	if got := snaps.Lookup(2, 99); got.Average != 150 || got.Handicap != 36 {
		t.Errorf("unknown player snapshot = %+v, want defaults", got)
	}
	if got := snaps.Lookup(9, 7); got.Average != 150 {
		t.Errorf("unrequested week snapshot = %+v, want defaults", got)
	}
}
