package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamantopups/Mobile-Accessories/internal/apperror"
	"github.com/zamantopups/Mobile-Accessories/internal/dto"
	"github.com/zamantopups/Mobile-Accessories/internal/ledger"
	"github.com/zamantopups/Mobile-Accessories/internal/model"
	"github.com/zamantopups/Mobile-Accessories/internal/store"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubStore is an in-memory Store recording every Set for assertion.
type stubStore struct {
	blobs map[string]interface{}
	sets  []string
	fail  bool
}

func newStubStore() *stubStore {
	return &stubStore{blobs: make(map[string]interface{})}
}

func (s *stubStore) Get(_ context.Context, _ string, _ interface{}) error { return nil }

func (s *stubStore) Set(_ context.Context, key string, value interface{}) error {
	if s.fail {
		return apperror.NewStore(key, errors.New("disk full"))
	}
	s.blobs[key] = value
	s.sets = append(s.sets, key)
	return nil
}

var _ store.Store = (*stubStore)(nil)

func buildEngine(t *testing.T) (*ledger.Engine, *stubStore) {
	t.Helper()
	st := newStubStore()
	engine := ledger.NewEngine(st)
	require.NoError(t, engine.Load(context.Background()))
	return engine, st
}

func addLine(t *testing.T, engine *ledger.Engine, code, group, name string, qty int, rate float64) string {
	t.Helper()
	line, err := engine.AddStock(context.Background(), dto.AddStockRequest{
		Code: code, Group: group, Name: name, Quantity: qty, Rate: decimal.NewFromFloat(rate),
	})
	require.NoError(t, err)
	return line.ID.String()
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestAddStock_AssignsSequentialSerials(t *testing.T) {
	engine, st := buildEngine(t)

	for i, code := range []string{"C1", "C2", "C3"} {
		line, err := engine.AddStock(context.Background(), dto.AddStockRequest{
			Code: code, Name: "Item " + code, Quantity: 2, Rate: decimal.NewFromFloat(1.5),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}[i], line.SerialNo)
		assert.Equal(t, "3.00", line.Amount.StringFixed(2))
		assert.False(t, line.DateAdded.IsZero())
	}

	assert.Len(t, engine.Inventory(), 3)
	// Every AddStock persists the inventory collection
	assert.Equal(t, []string{store.KeyInventory, store.KeyInventory, store.KeyInventory}, st.sets)
}

func TestAddStock_Validation(t *testing.T) {
	engine, st := buildEngine(t)

	cases := []dto.AddStockRequest{
		{Code: "", Name: "No Code", Quantity: 1, Rate: decimal.NewFromInt(1)},
		{Code: "X1", Name: "", Quantity: 1, Rate: decimal.NewFromInt(1)},
		{Code: "X1", Name: "Zero Qty", Quantity: 0, Rate: decimal.NewFromInt(1)},
		{Code: "X1", Name: "Negative Qty", Quantity: -3, Rate: decimal.NewFromInt(1)},
		{Code: "X1", Name: "Zero Rate", Quantity: 1, Rate: decimal.Zero},
	}
	for _, req := range cases {
		_, err := engine.AddStock(context.Background(), req)
		var verr *apperror.ValidationError
		assert.ErrorAs(t, err, &verr, "request %+v should fail validation", req)
	}

	// No mutation, no persistence
	assert.Empty(t, engine.Inventory())
	assert.Empty(t, st.sets)
}

func TestRecordSale_PartialThenDepletion(t *testing.T) {
	engine, _ := buildEngine(t)
	id := addLine(t, engine, "C1", "Case", "Basic Case", 10, 5.00)

	line := engine.Inventory()[0]
	assert.Equal(t, "1", line.SerialNo)
	assert.Equal(t, "50.00", line.Amount.StringFixed(2))

	// Partial depletion: 10 - 4 = 6
	rec1, err := engine.RecordSale(context.Background(), dto.RecordSaleRequest{InventoryID: id, Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, "20.00", rec1.AmountSold.StringFixed(2))
	assert.Equal(t, "Basic Case", rec1.Name)
	assert.Equal(t, "1", rec1.SerialNo)
	assert.Equal(t, id, rec1.InventoryID.String())

	inv := engine.Inventory()
	require.Len(t, inv, 1)
	assert.Equal(t, 6, inv[0].Quantity)
	assert.Equal(t, "30.00", inv[0].Amount.StringFixed(2))

	// Full depletion: the line is removed, never kept at zero
	rec2, err := engine.RecordSale(context.Background(), dto.RecordSaleRequest{InventoryID: id, Quantity: 6})
	require.NoError(t, err)
	assert.Equal(t, "30.00", rec2.AmountSold.StringFixed(2))
	assert.Empty(t, engine.Inventory())

	// Sales ordered newest-first
	sales := engine.Sales()
	require.Len(t, sales, 2)
	assert.Equal(t, rec2.ID, sales[0].ID)
	assert.Equal(t, rec1.ID, sales[1].ID)

	// Snapshot fields outlive the source line
	assert.Equal(t, "Basic Case", sales[0].Name)
	assert.Equal(t, "C1", sales[0].Code)
}

func TestRecordSale_InvalidRequestsLeaveStateUnchanged(t *testing.T) {
	engine, st := buildEngine(t)
	id := addLine(t, engine, "E1", "Audio", "Wired Earphones", 5, 3.20)
	setsBefore := len(st.sets)

	var verr *apperror.ValidationError

	_, err := engine.RecordSale(context.Background(), dto.RecordSaleRequest{InventoryID: id, Quantity: 6})
	assert.ErrorAs(t, err, &verr)
	assert.ErrorContains(t, err, "invalid or exceeds stock")

	_, err = engine.RecordSale(context.Background(), dto.RecordSaleRequest{InventoryID: id, Quantity: 0})
	assert.ErrorAs(t, err, &verr)

	_, err = engine.RecordSale(context.Background(), dto.RecordSaleRequest{InventoryID: id, Quantity: -1})
	assert.ErrorAs(t, err, &verr)

	_, err = engine.RecordSale(context.Background(), dto.RecordSaleRequest{InventoryID: "not-a-uuid", Quantity: 1})
	assert.ErrorAs(t, err, &verr)

	// Unknown but well-formed id
	_, err = engine.RecordSale(context.Background(), dto.RecordSaleRequest{
		InventoryID: "5cbbf5c7-6b7b-4d7e-9d5a-111111111111", Quantity: 1,
	})
	assert.ErrorAs(t, err, &verr)

	assert.Equal(t, 5, engine.Inventory()[0].Quantity)
	assert.Empty(t, engine.Sales())
	assert.Equal(t, setsBefore, len(st.sets), "failed sales must not persist anything")
}

func TestSerialNumbers_NotReissuedWhileHigherSerialRemains(t *testing.T) {
	engine, _ := buildEngine(t)
	addLine(t, engine, "A", "", "Item A", 1, 1.0)
	idB := addLine(t, engine, "B", "", "Item B", 1, 1.0)
	addLine(t, engine, "C", "", "Item C", 1, 1.0)

	// Deplete serial "2" — a gap appears and stays
	_, err := engine.RecordSale(context.Background(), dto.RecordSaleRequest{InventoryID: idB, Quantity: 1})
	require.NoError(t, err)

	line, err := engine.AddStock(context.Background(), dto.AddStockRequest{
		Code: "D", Name: "Item D", Quantity: 1, Rate: decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	assert.Equal(t, "4", line.SerialNo, "serial 2 must not be reissued while 3 remains")

	// After full deletion the sequence resets to 1
	engine.DeleteAllInventory(context.Background())
	line, err = engine.AddStock(context.Background(), dto.AddStockRequest{
		Code: "E", Name: "Item E", Quantity: 1, Rate: decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	assert.Equal(t, "1", line.SerialNo)
}

func TestDeleteAllInventory_KeepsSalesHistory(t *testing.T) {
	engine, st := buildEngine(t)
	id := addLine(t, engine, "G1", "Protection", "Tempered Glass", 30, 1.90)
	_, err := engine.RecordSale(context.Background(), dto.RecordSaleRequest{InventoryID: id, Quantity: 10})
	require.NoError(t, err)

	engine.DeleteAllInventory(context.Background())

	assert.Empty(t, engine.Inventory())
	assert.Len(t, engine.Sales(), 1, "sales remain as historical snapshots")
	assert.Equal(t, store.KeyInventory, st.sets[len(st.sets)-1])
}

func TestDeleteAllSales(t *testing.T) {
	engine, _ := buildEngine(t)
	id := addLine(t, engine, "CH1", "Charger", "USB-C Charger", 15, 8.75)
	_, err := engine.RecordSale(context.Background(), dto.RecordSaleRequest{InventoryID: id, Quantity: 2})
	require.NoError(t, err)

	engine.DeleteAllSales(context.Background())
	assert.Empty(t, engine.Sales())
	assert.Len(t, engine.Inventory(), 1)

	// No-op when already empty
	engine.DeleteAllSales(context.Background())
	assert.Empty(t, engine.Sales())
}

func TestLoadSnapshot_ReplacesStateAndSortsSales(t *testing.T) {
	engine, st := buildEngine(t)
	addLine(t, engine, "OLD", "", "Pre-restore Item", 1, 1.0)

	inventory := []model.InventoryLine{
		{ID: uuid.New(), SerialNo: "7", Code: "C7", Name: "Restored Case", Quantity: 3,
			Rate: decimal.NewFromFloat(4.5), Amount: decimal.NewFromFloat(13.5), DateAdded: time.Now()},
	}
	older := time.Date(2026, 8, 20, 10, 0, 0, 0, time.Local)
	newer := time.Date(2026, 8, 24, 18, 30, 0, 0, time.Local)
	sales := []model.SaleRecord{
		{ID: uuid.New(), SerialNo: "2", Code: "B", Name: "Older Sale", QuantitySold: 1,
			Rate: decimal.NewFromInt(2), AmountSold: decimal.NewFromInt(2), SaleDate: older},
		{ID: uuid.New(), SerialNo: "3", Code: "C", Name: "Newer Sale", QuantitySold: 1,
			Rate: decimal.NewFromInt(3), AmountSold: decimal.NewFromInt(3), SaleDate: newer},
	}

	engine.LoadSnapshot(context.Background(), inventory, sales)

	inv := engine.Inventory()
	require.Len(t, inv, 1, "prior state is discarded, not merged")
	assert.Equal(t, "C7", inv[0].Code)

	got := engine.Sales()
	require.Len(t, got, 2)
	assert.Equal(t, "Newer Sale", got[0].Name)
	assert.Equal(t, "Older Sale", got[1].Name)

	// Both collections persisted
	n := len(st.sets)
	assert.Equal(t, store.KeySales, st.sets[n-1])
	assert.Equal(t, store.KeyInventory, st.sets[n-2])
}

func TestPersistFailure_DoesNotRollBackMutation(t *testing.T) {
	engine, st := buildEngine(t)
	st.fail = true

	line, err := engine.AddStock(context.Background(), dto.AddStockRequest{
		Code: "C1", Name: "Basic Case", Quantity: 10, Rate: decimal.NewFromFloat(5),
	})
	require.NoError(t, err, "store failure is a warning, not an operation failure")
	require.NotNil(t, line)

	// In-memory state remains authoritative for the session
	assert.Len(t, engine.Inventory(), 1)

	_, err = engine.RecordSale(context.Background(), dto.RecordSaleRequest{InventoryID: line.ID.String(), Quantity: 10})
	require.NoError(t, err)
	assert.Empty(t, engine.Inventory())
	assert.Len(t, engine.Sales(), 1)
}
