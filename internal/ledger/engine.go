// Package ledger owns the two core collections — inventory lines and sale
// records — and enforces every mutation invariant: held lines always have
// quantity > 0, sales stay ordered newest-first, serial numbers are never
// reissued while a higher serial exists. Each successful mutation is
// mirrored to the durable store; a store failure is logged as a warning and
// never rolls the in-memory change back.
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/zamantopups/Mobile-Accessories/internal/apperror"
	"github.com/zamantopups/Mobile-Accessories/internal/dto"
	"github.com/zamantopups/Mobile-Accessories/internal/model"
	"github.com/zamantopups/Mobile-Accessories/internal/report"
	"github.com/zamantopups/Mobile-Accessories/internal/store"
)

// Engine is the single owner of the ledger state. All other components
// receive copies, never live references. The mutex serialises operations so
// each one runs to completion before the next begins.
type Engine struct {
	mu        sync.Mutex
	store     store.Store
	inventory []model.InventoryLine
	sales     []model.SaleRecord
}

func NewEngine(st store.Store) *Engine {
	return &Engine{store: st}
}

// Load hydrates the engine from the durable store. Missing or corrupt blobs
// degrade to empty collections; only an I/O-level store failure is returned.
func (e *Engine) Load(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var inventory []model.InventoryLine
	if err := e.store.Get(ctx, store.KeyInventory, &inventory); err != nil {
		return err
	}
	var sales []model.SaleRecord
	if err := e.store.Get(ctx, store.KeySales, &sales); err != nil {
		return err
	}

	model.SortSalesDesc(sales)
	e.inventory = inventory
	e.sales = sales
	return nil
}

// Inventory returns a copy of the current inventory collection.
func (e *Engine) Inventory() []model.InventoryLine {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]model.InventoryLine, len(e.inventory))
	copy(out, e.inventory)
	return out
}

// Sales returns a copy of the sales collection, newest first.
func (e *Engine) Sales() []model.SaleRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]model.SaleRecord, len(e.sales))
	copy(out, e.sales)
	return out
}

// AddStock validates the request, assigns the next serial number and a fresh
// id, appends the line and persists the inventory collection.
func (e *Engine) AddStock(ctx context.Context, req dto.AddStockRequest) (*model.InventoryLine, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	line := model.InventoryLine{
		ID:        uuid.New(),
		SerialNo:  report.NextSerialNo(e.inventory),
		Code:      req.Code,
		Group:     req.Group,
		Name:      req.Name,
		Quantity:  req.Quantity,
		Rate:      req.Rate,
		Amount:    model.RoundAmount(req.Quantity, req.Rate),
		DateAdded: time.Now(),
	}
	e.inventory = append(e.inventory, line)

	e.persist(ctx, store.KeyInventory, e.inventory)
	return &line, nil
}

// RecordSale depletes a line by the requested quantity, removing the line
// entirely when it reaches zero, and records an immutable SaleRecord
// snapshotting the line's descriptive fields. Persists both collections.
func (e *Engine) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*model.SaleRecord, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	lineID, err := uuid.Parse(req.InventoryID)
	if err != nil {
		return nil, apperror.NewValidation("invalid inventory id")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx := -1
	for i, line := range e.inventory {
		if line.ID == lineID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperror.NewValidation("inventory line not found")
	}

	line := e.inventory[idx]
	if req.Quantity < 1 || req.Quantity > line.Quantity {
		return nil, apperror.NewValidation("sale quantity invalid or exceeds stock")
	}

	remaining := line.Quantity - req.Quantity
	if remaining > 0 {
		e.inventory[idx].Quantity = remaining
		e.inventory[idx].Amount = model.RoundAmount(remaining, line.Rate)
	} else {
		// Depleted — lines are removed at zero, never kept.
		e.inventory = append(e.inventory[:idx], e.inventory[idx+1:]...)
	}

	rec := model.SaleRecord{
		ID:           uuid.New(),
		InventoryID:  line.ID,
		SerialNo:     line.SerialNo,
		Code:         line.Code,
		Group:        line.Group,
		Name:         line.Name,
		Rate:         line.Rate,
		QuantitySold: req.Quantity,
		AmountSold:   model.RoundAmount(req.Quantity, line.Rate),
		SaleDate:     time.Now(),
	}
	// Prepend, then re-sort to defend against any out-of-order insert.
	e.sales = append([]model.SaleRecord{rec}, e.sales...)
	model.SortSalesDesc(e.sales)

	e.persist(ctx, store.KeyInventory, e.inventory)
	e.persist(ctx, store.KeySales, e.sales)
	return &rec, nil
}

// DeleteAllSales clears the sales history. No-op when already empty; the
// confirmation gate lives at the CLI boundary, not here.
func (e *Engine) DeleteAllSales(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sales = []model.SaleRecord{}
	e.persist(ctx, store.KeySales, e.sales)
}

// DeleteAllInventory clears the inventory. Sales are untouched — they remain
// as historical snapshots even though their source lines are gone.
func (e *Engine) DeleteAllInventory(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.inventory = []model.InventoryLine{}
	e.persist(ctx, store.KeyInventory, e.inventory)
}

// LoadSnapshot replaces both collections wholesale with an already-validated
// restore payload. Prior state is discarded, not merged.
func (e *Engine) LoadSnapshot(ctx context.Context, inventory []model.InventoryLine, sales []model.SaleRecord) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.inventory = make([]model.InventoryLine, len(inventory))
	copy(e.inventory, inventory)
	e.sales = make([]model.SaleRecord, len(sales))
	copy(e.sales, sales)
	model.SortSalesDesc(e.sales)

	e.persist(ctx, store.KeyInventory, e.inventory)
	e.persist(ctx, store.KeySales, e.sales)
}

// persist mirrors a collection to the durable store. Best-effort: the
// in-memory mutation has already taken effect, so a failure is only warned.
func (e *Engine) persist(ctx context.Context, key string, value interface{}) {
	if err := e.store.Set(ctx, key, value); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("persist failed; in-memory state remains authoritative")
	}
}
