package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zamantopups/Mobile-Accessories/internal/model"
)

// ─── Report views ────────────────────────────────────────────────────────────
// Read-only projections handed to the rendering collaborator (terminal table
// or PDF). Footers carry the aggregate totals shown on the printed report.

// StockReport is the remaining-stock report: every held line plus a totals
// footer (unique item count and total inventory cost).
type StockReport struct {
	Lines           []model.InventoryLine `json:"lines"`
	UniqueItemCount int                   `json:"unique_item_count"`
	TotalCost       decimal.Decimal       `json:"total_cost"`
	GeneratedAt     time.Time             `json:"generated_at"`
}

// SalesReport is the date-filtered sales report, newest first, with a totals
// footer (record count and total cost of goods sold). From/To are nil when
// the report is unfiltered.
type SalesReport struct {
	Records     []model.SaleRecord `json:"records"`
	RecordCount int                `json:"record_count"`
	TotalSold   decimal.Decimal    `json:"total_sold"`
	From        *time.Time         `json:"from,omitempty"`
	To          *time.Time         `json:"to,omitempty"`
	GeneratedAt time.Time          `json:"generated_at"`
}
