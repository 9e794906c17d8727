package league

// GenerateSchedule pairs teams into weekly matchups with the circle method,
// repeating the round robin until weeks are filled. An odd league gives one
// team a bye each week. Matchup ids are left zero for the store to assign.
func GenerateSchedule(teams []Team, weeks int) []Matchup {
	if len(teams) < 2 || weeks < 1 {
		return nil
	}
	ring := make([]*Team, len(teams))
	for i := range teams {
		ring[i] = &teams[i]
	}
	if len(ring)%2 != 0 {
		ring = append(ring, nil)
	}
	n := len(ring)

	var schedule []Matchup
	for week := 1; week <= weeks; week++ {
		for j := 0; j < n/2; j++ {
			a, b := ring[j], ring[n-1-j]
			if a == nil || b == nil {
				continue
			}
			// alternate which side is listed first so lanes rotate
			if week%2 == 0 {
				a, b = b, a
			}
			schedule = append(schedule, Matchup{WeekID: week, Team1ID: a.ID, Team2ID: b.ID})
		}

		// rotate everything but the first slot
		last := ring[n-1]
		copy(ring[2:], ring[1:n-1])
		ring[1] = last
	}
	return schedule
}
