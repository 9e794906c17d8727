package league

import "testing"

func TestGenerateSchedule_RoundRobin(t *testing.T) {
	for _, n := range []int{4, 5, 6} {
		teams := make([]Team, n)
		for i := range teams {
			teams[i] = Team{ID: i + 1}
		}
		weeks := n - 1
		if n%2 != 0 {
			weeks = n
		}
		schedule := GenerateSchedule(teams, weeks)

		if want := weeks * (n / 2); len(schedule) != want {
			t.Errorf("%d teams: %d matchups, want %d", n, len(schedule), want)
		}
		type pair struct{ a, b int }
		met := make(map[pair]int)
		busy := make(map[[2]int]bool)
		for _, m := range schedule {
			for _, id := range []int{m.Team1ID, m.Team2ID} {
				k := [2]int{m.WeekID, id}
				if busy[k] {
					t.Errorf("%d teams: team %d plays twice in week %d", n, id, m.WeekID)
				}
				busy[k] = true
			}
			a, b := min(m.Team1ID, m.Team2ID), max(m.Team1ID, m.Team2ID)
			met[pair{a, b}]++
		}
		if want := n * (n - 1) / 2; len(met) != want {
			t.Errorf("%d teams: %d distinct pairings, want %d", n, len(met), want)
		}
	}
}

func TestGenerateSchedule_TooFewTeams(t *testing.T) {
	if s := GenerateSchedule([]Team{{ID: 1}}, 3); s != nil {
		t.Errorf("GenerateSchedule with one team = %v, want nil", s)
	}
}
