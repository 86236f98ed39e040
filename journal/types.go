// journal/types.go
package journal

import (
	"math"
	"time"

	"github.com/Rhymond/go-money"
)

// Currency is the display currency of a profile. It fixes formatting for
// every amount recorded under that profile.
type Currency string

const (
	USD Currency = "USD"
	IDR Currency = "IDR"
)

// Valid reports whether the currency is one the journal supports.
func (c Currency) Valid() bool {
	return c == USD || c == IDR
}

// Format renders an amount in the profile currency, e.g. "$1,234.50" or
// "Rp1.234,50".
func (c Currency) Format(amount float64) string {
	cur := money.GetCurrency(string(c))
	if cur == nil {
		cur = money.GetCurrency(money.USD)
	}
	minor := int64(math.Round(amount * math.Pow10(cur.Fraction)))
	return money.New(minor, cur.Code).Display()
}

type TradeType string

const (
	Long  TradeType = "long"
	Short TradeType = "short"
)

type TxnType string

const (
	Deposit    TxnType = "deposit"
	Withdrawal TxnType = "withdrawal"
)

// GoalType is the recurring window a profit goal applies to.
type GoalType string

const (
	WeeklyGoal  GoalType = "weekly"
	MonthlyGoal GoalType = "monthly"
)

// Profile is the root of a data partition. Every other entity hangs off one
// profile and does not outlive it.
type Profile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Currency    Currency  `json:"currency"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Trade is one journaled trade. CustomData holds values for the profile's
// CustomFields, keyed by field name; the field list is the source of truth
// for which keys mean anything.
type Trade struct {
	ID                 string            `json:"id"`
	ProfileID          string            `json:"profileId"`
	TradeDate          time.Time         `json:"tradeDate"`
	Pair               string            `json:"pair"`
	Type               TradeType         `json:"type"`
	LotSize            float64           `json:"lotSize"`
	PnL                float64           `json:"pnl"`
	Setup              string            `json:"setup"`
	Notes              string            `json:"notes"`
	EntryPrice         float64           `json:"entryPrice"`
	TakeProfit         float64           `json:"takeProfit"`
	StopLoss           float64           `json:"stopLoss"`
	RiskRewardRatio    float64           `json:"riskRewardRatio"`
	ScreenshotBeforeID string            `json:"screenshotBeforeId,omitempty"`
	ScreenshotAfterID  string            `json:"screenshotAfterId,omitempty"`
	CustomData         map[string]string `json:"customData,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

// DeriveRiskReward computes reward distance over risk distance from the
// trade's entry, take-profit and stop-loss prices. It returns 0 when any
// price is missing or when either distance is non-positive for the trade
// direction.
func (t *Trade) DeriveRiskReward() float64 {
	if t.EntryPrice <= 0 || t.TakeProfit <= 0 || t.StopLoss <= 0 {
		return 0
	}

	var risk, reward float64
	if t.Type == Short {
		reward = t.EntryPrice - t.TakeProfit
		risk = t.StopLoss - t.EntryPrice
	} else {
		reward = t.TakeProfit - t.EntryPrice
		risk = t.EntryPrice - t.StopLoss
	}

	if risk <= 0 || reward <= 0 {
		return 0
	}
	return reward / risk
}

// BalanceTransaction is a cash movement on the account: a deposit adds to
// the balance, a withdrawal subtracts.
type BalanceTransaction struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profileId"`
	Type      TxnType   `json:"type"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
}

// Delta is the signed contribution of the transaction to the balance.
func (b BalanceTransaction) Delta() float64 {
	if b.Type == Withdrawal {
		return -b.Amount
	}
	return b.Amount
}

// Pair is a user-defined instrument in the profile's catalogue.
type Pair struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profileId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Template prefills a new trade with default field values.
type Template struct {
	ID              string    `json:"id"`
	ProfileID       string    `json:"profileId"`
	Name            string    `json:"name"`
	Pair            string    `json:"pair"`
	Type            TradeType `json:"type"`
	LotSize         float64   `json:"lotSize"`
	PnL             float64   `json:"pnl"`
	Setup           string    `json:"setup"`
	RiskRewardRatio float64   `json:"riskRewardRatio"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CustomField declares an extra key usable in Trade.CustomData. Names are
// unique per profile, compared case-insensitively.
type CustomField struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profileId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Goal is a profit target. At most one per profile: its id is the profile id.
type Goal struct {
	ID                string    `json:"id"`
	ProfileID         string    `json:"profileId"`
	Type              GoalType  `json:"type"`
	Amount            float64   `json:"amount"`
	DailyProfitTarget float64   `json:"dailyProfitTarget"`
	DailyLossTarget   float64   `json:"dailyLossTarget"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
