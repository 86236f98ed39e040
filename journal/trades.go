// journal/trades.go
package journal

import (
	"time"

	"github.com/wzgold/tradelog/pkg/id"
	"github.com/wzgold/tradelog/store"
)

func (j *Journal) validateTrade(t *Trade) error {
	if t.ProfileID == "" {
		return invalid("profileId", "must reference a profile")
	}
	if t.LotSize < 0 {
		return invalid("lotSize", "must not be negative")
	}
	if t.RiskRewardRatio < 0 {
		return invalid("riskRewardRatio", "must not be negative")
	}
	if t.Type != Long && t.Type != Short {
		return invalid("type", "must be long or short")
	}
	return nil
}

// AddTrade validates and persists a new trade. When no manual risk/reward
// ratio is set it is derived from the entry, take-profit and stop-loss
// prices.
func (j *Journal) AddTrade(t *Trade) error {
	if err := j.validateTrade(t); err != nil {
		return err
	}

	if t.ID == "" {
		t.ID = id.New()
	}
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	if t.TradeDate.IsZero() {
		t.TradeDate = now
	}
	if t.RiskRewardRatio == 0 {
		t.RiskRewardRatio = t.DeriveRiskReward()
	}

	doc, err := marshal(t)
	if err != nil {
		return err
	}
	return j.st.Add(store.Trades, t.ID, t.ProfileID, doc)
}

// UpdateTrade replaces an existing trade record.
func (j *Journal) UpdateTrade(t *Trade) error {
	if err := j.validateTrade(t); err != nil {
		return err
	}

	t.UpdatedAt = time.Now()
	if t.RiskRewardRatio == 0 {
		t.RiskRewardRatio = t.DeriveRiskReward()
	}

	doc, err := marshal(t)
	if err != nil {
		return err
	}
	return j.st.Put(store.Trades, t.ID, t.ProfileID, doc)
}

// GetTrade returns the trade or nil when it does not exist.
func (j *Journal) GetTrade(tradeID string) (*Trade, error) {
	doc, found, err := j.st.Get(store.Trades, tradeID)
	if err != nil {
		return nil, err
	}
	return decodeOne[Trade](doc, found)
}

// Trades returns every trade recorded under the profile.
func (j *Journal) Trades(profileID string) ([]Trade, error) {
	docs, err := j.st.GetAllByIndex(store.Trades, profileID)
	if err != nil {
		return nil, err
	}
	return decodeAll[Trade](docs)
}
