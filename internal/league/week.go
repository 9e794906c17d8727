package league

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseWeek parses an as-of week selector. Week 1 is always accepted so an
// empty season can still be queried; anything after latest is rejected.
func ParseWeek(raw string, latest int) (int, error) {
	week, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidWeek, raw)
	}
	if week < 1 {
		return 0, fmt.Errorf("%w: %d is before week 1", ErrInvalidWeek, week)
	}
	if week > max(latest, 1) {
		return 0, fmt.Errorf("%w: %d is after the latest recorded week %d", ErrInvalidWeek, week, latest)
	}
	return week, nil
}
