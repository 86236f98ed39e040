// store/schema.go
package store

// Collection names a table in the journal database. The set is fixed: every
// query interpolates the name from one of these constants, never from input.
type Collection string

const (
	Profiles     Collection = "profiles"
	Trades       Collection = "trades"
	Transactions Collection = "balance_transactions"
	Pairs        Collection = "pairs"
	Templates    Collection = "templates"
	CustomFields Collection = "custom_fields"
	Goals        Collection = "goals"
	TradeImages  Collection = "trade_images"
)

// Scoped reports whether the collection carries the profile_id secondary
// index. Profiles are the partition roots and images are referenced by id
// only, so neither is profile-scoped.
func (c Collection) Scoped() bool {
	return c != Profiles && c != TradeImages
}

const Schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id TEXT PRIMARY KEY,
	profile_id TEXT NOT NULL DEFAULT '',
	doc BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	profile_id TEXT NOT NULL DEFAULT '',
	doc BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS balance_transactions (
	id TEXT PRIMARY KEY,
	profile_id TEXT NOT NULL DEFAULT '',
	doc BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS pairs (
	id TEXT PRIMARY KEY,
	profile_id TEXT NOT NULL DEFAULT '',
	doc BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS templates (
	id TEXT PRIMARY KEY,
	profile_id TEXT NOT NULL DEFAULT '',
	doc BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS custom_fields (
	id TEXT PRIMARY KEY,
	profile_id TEXT NOT NULL DEFAULT '',
	doc BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS goals (
	id TEXT PRIMARY KEY,
	profile_id TEXT NOT NULL DEFAULT '',
	doc BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS trade_images (
	id TEXT PRIMARY KEY,
	profile_id TEXT NOT NULL DEFAULT '',
	doc BLOB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_profile ON trades(profile_id);
CREATE INDEX IF NOT EXISTS idx_balance_transactions_profile ON balance_transactions(profile_id);
CREATE INDEX IF NOT EXISTS idx_pairs_profile ON pairs(profile_id);
CREATE INDEX IF NOT EXISTS idx_templates_profile ON templates(profile_id);
CREATE INDEX IF NOT EXISTS idx_custom_fields_profile ON custom_fields(profile_id);
CREATE INDEX IF NOT EXISTS idx_goals_profile ON goals(profile_id);
`
