// Package report derives read-only views from the current ledger state.
// Every function is a pure projection: nothing here mutates the ledger,
// and nothing is cached — views are recomputed on every read.
package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zamantopups/Mobile-Accessories/internal/dto"
	"github.com/zamantopups/Mobile-Accessories/internal/model"
)

// NextSerialNo returns max(parsable serialNo)+1 as a string, "1" for an
// empty inventory. Non-numeric or absent serials are treated as 0. The
// result must be recomputed on every AddStock call — inventory composition
// can change between calls, including via restore.
func NextSerialNo(inventory []model.InventoryLine) string {
	max := 0
	for _, line := range inventory {
		n, err := strconv.Atoi(strings.TrimSpace(line.SerialNo))
		if err != nil || n <= 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

// FilterSalesByDateRange returns the subsequence of sales within the range,
// preserving the newest-first order. Both bounds are inclusive of the full
// local calendar day (start at 00:00:00.000, end at 23:59:59.999). A nil
// bound on either side disables filtering entirely.
func FilterSalesByDateRange(sales []model.SaleRecord, start, end *time.Time) []model.SaleRecord {
	out := make([]model.SaleRecord, 0, len(sales))
	if start == nil || end == nil {
		return append(out, sales...)
	}

	from := startOfDay(*start)
	to := endOfDay(*end)
	for _, s := range sales {
		if s.SaleDate.Before(from) || s.SaleDate.After(to) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), time.Local)
}

// TotalAmount sums AmountSold over records, rounded to 2 decimals.
// A zero-valued AmountSold contributes nothing.
func TotalAmount(records []model.SaleRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.AmountSold)
	}
	return total.Round(2)
}

// Valuation is the totals footer of the remaining-stock report.
type Valuation struct {
	UniqueItemCount int
	TotalCost       decimal.Decimal
}

// InventoryValuation computes the stock footer: number of held lines and
// the sum of round(quantity*rate, 2) over them, rounded to 2 decimals.
func InventoryValuation(inventory []model.InventoryLine) Valuation {
	total := decimal.Zero
	for _, line := range inventory {
		total = total.Add(model.RoundAmount(line.Quantity, line.Rate))
	}
	return Valuation{
		UniqueItemCount: len(inventory),
		TotalCost:       total.Round(2),
	}
}

// BuildStockReport assembles the remaining-stock report view.
func BuildStockReport(inventory []model.InventoryLine) dto.StockReport {
	v := InventoryValuation(inventory)
	return dto.StockReport{
		Lines:           inventory,
		UniqueItemCount: v.UniqueItemCount,
		TotalCost:       v.TotalCost,
		GeneratedAt:     time.Now(),
	}
}

// BuildSalesReport assembles the date-filtered sales report view.
func BuildSalesReport(sales []model.SaleRecord, from, to *time.Time) dto.SalesReport {
	records := FilterSalesByDateRange(sales, from, to)
	return dto.SalesReport{
		Records:     records,
		RecordCount: len(records),
		TotalSold:   TotalAmount(records),
		From:        from,
		To:          to,
		GeneratedAt: time.Now(),
	}
}
