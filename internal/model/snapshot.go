package model

import "time"

// SnapshotVersion is serialised as the JSON number 1.0.
const SnapshotVersion = 1.0

// Snapshot is a complete exported copy of the ledger suitable for restore.
// It is also the on-disk backup file format (UTF-8 JSON).
type Snapshot struct {
	Inventory []InventoryLine `json:"inventory"`
	Sales     []SaleRecord    `json:"sales"`
	Version   float64         `json:"version"`
	Timestamp time.Time       `json:"timestamp"`
}
