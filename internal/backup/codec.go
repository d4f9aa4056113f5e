// Package backup converts between the in-memory ledger and the portable
// JSON snapshot format consumed by external file I/O. Import enforces the
// same invariants as live mutation before any state is replaced.
package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/zamantopups/Mobile-Accessories/internal/apperror"
	"github.com/zamantopups/Mobile-Accessories/internal/model"
)

// Export builds a snapshot of the given collections. Pure read — writing
// the file is the caller's concern.
func Export(inventory []model.InventoryLine, sales []model.SaleRecord) model.Snapshot {
	return model.Snapshot{
		Inventory: inventory,
		Sales:     sales,
		Version:   model.SnapshotVersion,
		Timestamp: time.Now(),
	}
}

// EncodeJSON serialises a snapshot as an indented UTF-8 JSON document.
func EncodeJSON(snap model.Snapshot) ([]byte, error) {
	if snap.Inventory == nil {
		snap.Inventory = []model.InventoryLine{}
	}
	if snap.Sales == nil {
		snap.Sales = []model.SaleRecord{}
	}
	return json.MarshalIndent(snap, "", "  ")
}

// ExportFileName returns the conventional backup file name for a given day:
// inventory_backup_<YYYY-MM-DD>.json.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("inventory_backup_%s.json", t.Format("2006-01-02"))
}

// Import parses raw as a snapshot and validates it. The structural gate —
// inventory and sales must both be present as JSON arrays — is checked
// first; then each record is validated against the live-mutation invariants
// (required code/name, quantity >= 1, non-negative rate). Any failure is a
// FormatError and no partial result is returned. Sales come back re-sorted
// newest-first.
func Import(raw []byte) ([]model.InventoryLine, []model.SaleRecord, error) {
	var head struct {
		Inventory json.RawMessage `json:"inventory"`
		Sales     json.RawMessage `json:"sales"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, nil, apperror.NewFormat("invalid backup file: not a JSON object")
	}
	if !isJSONArray(head.Inventory) || !isJSONArray(head.Sales) {
		return nil, nil, apperror.NewFormat("invalid backup file: inventory and sales must be arrays")
	}

	var inventory []model.InventoryLine
	if err := json.Unmarshal(head.Inventory, &inventory); err != nil {
		return nil, nil, apperror.NewFormat("invalid backup file: malformed inventory record")
	}
	var sales []model.SaleRecord
	if err := json.Unmarshal(head.Sales, &sales); err != nil {
		return nil, nil, apperror.NewFormat("invalid backup file: malformed sale record")
	}

	for i, line := range inventory {
		if line.Code == "" || line.Name == "" {
			return nil, nil, apperror.NewFormat(fmt.Sprintf("invalid backup file: inventory[%d] missing code or name", i))
		}
		if line.Quantity < 1 {
			return nil, nil, apperror.NewFormat(fmt.Sprintf("invalid backup file: inventory[%d] has non-positive quantity", i))
		}
		if line.Rate.IsNegative() {
			return nil, nil, apperror.NewFormat(fmt.Sprintf("invalid backup file: inventory[%d] has negative rate", i))
		}
	}
	for i, rec := range sales {
		if rec.QuantitySold < 1 {
			return nil, nil, apperror.NewFormat(fmt.Sprintf("invalid backup file: sales[%d] has non-positive quantity", i))
		}
		if rec.Rate.IsNegative() {
			return nil, nil, apperror.NewFormat(fmt.Sprintf("invalid backup file: sales[%d] has negative rate", i))
		}
	}

	model.SortSalesDesc(sales)
	return inventory, sales, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
