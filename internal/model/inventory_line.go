package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Backup snapshots store rates and amounts as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// InventoryLine is a stock-keeping record: one product/batch with a remaining
// quantity. Lines only exist while Quantity > 0 — a sale that depletes a line
// removes it from the collection instead of keeping it at zero.
type InventoryLine struct {
	ID uuid.UUID `json:"id"`
	// SerialNo is the per-line display identifier, distinct from ID:
	// a string-encoded positive integer, unique among held lines, assigned
	// at creation as max(existing)+1 and never reassigned. Gaps are expected
	// once sales deplete lines.
	SerialNo string          `json:"serialNo"`
	Code     string          `json:"code"`
	Group    string          `json:"group"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	// Amount is maintained as round(Quantity*Rate, 2) on every quantity change.
	Amount    decimal.Decimal `json:"amount"`
	DateAdded time.Time       `json:"dateAdded"`
}

// RoundAmount computes round(quantity * rate, 2). Rounding is half away from
// zero and applied once, at the point the amount is computed.
func RoundAmount(quantity int, rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}
