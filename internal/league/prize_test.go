package league

import "testing"

func TestPrizes(t *testing.T) {
	tests := []struct {
		teams int
		want  []string
	}{
		{0, nil},
		{1, []string{"1600.00"}},
		{2, []string{"1600.00", "200.00"}},
		{3, []string{"1600.00", "900.00", "200.00"}},
		{8, []string{"1600.00", "1400.00", "1200.00", "1000.00", "800.00", "600.00", "400.00", "200.00"}},
	}
	for _, tc := range tests {
		got := Prizes(tc.teams)
		if len(got) != len(tc.want) {
			t.Errorf("Prizes(%d) len = %d, want %d", tc.teams, len(got), len(tc.want))
			continue
		}
		for i, p := range got {
			if FormatMoney(p) != tc.want[i] {
				t.Errorf("Prizes(%d)[%d] = %s, want %s", tc.teams, i, FormatMoney(p), tc.want[i])
			}
		}
	}
}
