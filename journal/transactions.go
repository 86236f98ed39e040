// journal/transactions.go
package journal

import (
	"time"

	"github.com/wzgold/tradelog/pkg/id"
	"github.com/wzgold/tradelog/store"
)

// AddTransaction validates and persists a deposit or withdrawal.
func (j *Journal) AddTransaction(b *BalanceTransaction) error {
	if b.ProfileID == "" {
		return invalid("profileId", "must reference a profile")
	}
	if b.Type != Deposit && b.Type != Withdrawal {
		return invalid("type", "must be deposit or withdrawal")
	}
	if b.Amount <= 0 {
		return invalid("amount", "must be positive")
	}

	if b.ID == "" {
		b.ID = id.New()
	}
	if b.Date.IsZero() {
		b.Date = time.Now()
	}

	doc, err := marshal(b)
	if err != nil {
		return err
	}
	return j.st.Add(store.Transactions, b.ID, b.ProfileID, doc)
}

// Transactions returns every balance transaction under the profile.
func (j *Journal) Transactions(profileID string) ([]BalanceTransaction, error) {
	docs, err := j.st.GetAllByIndex(store.Transactions, profileID)
	if err != nil {
		return nil, err
	}
	return decodeAll[BalanceTransaction](docs)
}

// DeleteTransaction removes a balance transaction. Deleting an absent id is
// not an error.
func (j *Journal) DeleteTransaction(txnID string) error {
	return j.st.Remove(store.Transactions, txnID)
}
