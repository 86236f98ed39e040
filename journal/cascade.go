// journal/cascade.go
//
// Cascade deletes. Each cascade runs inside one store transaction, so a
// parent and its children disappear together or not at all; there is no
// partially-deleted state to retry.
package journal

import (
	"encoding/json"
	"fmt"

	"github.com/wzgold/tradelog/store"
)

// profileScoped is every collection enumerated when a profile is deleted.
// Order matters only for readability; the transaction makes the sequence
// atomic.
var profileScoped = []store.Collection{
	store.Trades,
	store.Transactions,
	store.Pairs,
	store.Templates,
	store.CustomFields,
	store.Goals,
}

// DeleteTrade removes a trade together with its screenshot images. Deleting
// an absent trade is a no-op.
func (j *Journal) DeleteTrade(tradeID string) error {
	t, err := j.GetTrade(tradeID)
	if err != nil {
		return err
	}
	if t == nil {
		return nil
	}

	return j.st.Update(func(tx *store.Tx) error {
		if err := removeTradeImages(tx, *t); err != nil {
			return err
		}
		return tx.Remove(store.Trades, t.ID)
	})
}

// DeleteProfile removes the profile and everything scoped to it: screenshot
// images first, then trades, then the remaining child collections, then the
// profile record itself.
func (j *Journal) DeleteProfile(profileID string) error {
	if err := j.requireUser(); err != nil {
		return err
	}

	return j.st.Update(func(tx *store.Tx) error {
		docs, err := tx.GetAllByIndex(store.Trades, profileID)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			var t Trade
			if err := json.Unmarshal(doc, &t); err != nil {
				return fmt.Errorf("decode trade: %w", err)
			}
			if err := removeTradeImages(tx, t); err != nil {
				return err
			}
		}

		for _, c := range profileScoped {
			childDocs, err := tx.GetAllByIndex(c, profileID)
			if err != nil {
				return err
			}
			for _, doc := range childDocs {
				var rec struct {
					ID string `json:"id"`
				}
				if err := json.Unmarshal(doc, &rec); err != nil {
					return fmt.Errorf("decode %s: %w", c, err)
				}
				if err := tx.Remove(c, rec.ID); err != nil {
					return err
				}
			}
		}

		return tx.Remove(store.Profiles, profileID)
	})
}

func removeTradeImages(tx *store.Tx, t Trade) error {
	if t.ScreenshotBeforeID != "" {
		if err := tx.Remove(store.TradeImages, t.ScreenshotBeforeID); err != nil {
			return err
		}
	}
	if t.ScreenshotAfterID != "" {
		if err := tx.Remove(store.TradeImages, t.ScreenshotAfterID); err != nil {
			return err
		}
	}
	return nil
}
