package model

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleRecord is an immutable receipt of a depletion event. The descriptive
// fields are snapshot copies taken at the time of sale, so the record stays
// correct even after the source line is removed from inventory.
type SaleRecord struct {
	ID           uuid.UUID       `json:"id"`
	InventoryID  uuid.UUID       `json:"inventoryId"`
	SerialNo     string          `json:"serialNo"`
	Code         string          `json:"code"`
	Group        string          `json:"group"`
	Name         string          `json:"name"`
	Rate         decimal.Decimal `json:"rate"`
	QuantitySold int             `json:"quantitySold"`
	AmountSold   decimal.Decimal `json:"amountSold"`
	SaleDate     time.Time       `json:"saleDate"`
}

// SortSalesDesc orders sales newest-first by SaleDate. The sales collection
// must hold this order after every insertion, bulk load and restore.
func SortSalesDesc(sales []SaleRecord) {
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].SaleDate.After(sales[j].SaleDate)
	})
}
