// analytics/period.go
package analytics

import (
	"fmt"
	"strings"
	"time"
)

// Period is a named display window anchored at "now".
type Period int

const (
	All Period = iota
	Daily
	Weekly
	Monthly
	Yearly
)

func (p Period) String() string {
	switch p {
	case All:
		return "all"
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod maps a period key to a Period.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(s) {
	case "all":
		return All, nil
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return All, fmt.Errorf("unknown period %q", s)
	}
}

// Start returns the period's lower bound relative to now, in now's location.
// The week starts on Monday; a Sunday belongs to the week that began six
// days earlier. For All the second return is false and there is no bound.
func (p Period) Start(now time.Time) (time.Time, bool) {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	switch p {
	case Daily:
		return midnight, true
	case Weekly:
		wd := int(now.Weekday())
		if wd == 0 {
			wd = 7
		}
		return midnight.AddDate(0, 0, -(wd - 1)), true
	case Monthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, now.Location()), true
	case Yearly:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

// In reports whether an event dated t falls inside the period ending at now.
func (p Period) In(t, now time.Time) bool {
	start, bounded := p.Start(now)
	return !bounded || !t.Before(start)
}
