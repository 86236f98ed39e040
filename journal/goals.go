// journal/goals.go
package journal

import (
	"time"

	"github.com/wzgold/tradelog/store"
)

// SetGoal upserts the profile's goal. A goal's id is always its profile id,
// so each profile carries at most one and lookup is a point read.
func (j *Journal) SetGoal(g *Goal) error {
	if g.ProfileID == "" {
		return invalid("profileId", "must reference a profile")
	}
	if g.Type != WeeklyGoal && g.Type != MonthlyGoal {
		return invalid("type", "must be weekly or monthly")
	}
	if g.Amount < 0 {
		return invalid("amount", "must not be negative")
	}
	if g.DailyProfitTarget < 0 {
		return invalid("dailyProfitTarget", "must not be negative")
	}
	if g.DailyLossTarget < 0 {
		return invalid("dailyLossTarget", "must not be negative")
	}

	g.ID = g.ProfileID
	g.UpdatedAt = time.Now()

	doc, err := marshal(g)
	if err != nil {
		return err
	}
	return j.st.Put(store.Goals, g.ID, g.ProfileID, doc)
}

// GetGoal returns the profile's goal, or nil when none is set. No goal is a
// normal state, not an error.
func (j *Journal) GetGoal(profileID string) (*Goal, error) {
	doc, found, err := j.st.Get(store.Goals, profileID)
	if err != nil {
		return nil, err
	}
	return decodeOne[Goal](doc, found)
}

// ClearGoal removes the profile's goal if one is set.
func (j *Journal) ClearGoal(profileID string) error {
	return j.st.Remove(store.Goals, profileID)
}
