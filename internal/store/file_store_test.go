package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamantopups/Mobile-Accessories/internal/model"
	"github.com/zamantopups/Mobile-Accessories/internal/store"
)

func TestFileStore_SetGetRoundTrip(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	in := []model.InventoryLine{{
		ID: uuid.New(), SerialNo: "1", Code: "C1", Name: "Basic Case",
		Quantity: 10, Rate: decimal.NewFromFloat(5), Amount: decimal.NewFromFloat(50),
	}}
	require.NoError(t, st.Set(ctx, store.KeyInventory, in))

	var out []model.InventoryLine
	require.NoError(t, st.Get(ctx, store.KeyInventory, &out))
	require.Len(t, out, 1)
	assert.Equal(t, in[0].ID, out[0].ID)
	assert.Equal(t, in[0].Quantity, out[0].Quantity)
	assert.True(t, in[0].Rate.Equal(out[0].Rate))
}

func TestFileStore_MissingKeyLeavesEmptyDefault(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	var out []model.SaleRecord
	require.NoError(t, st.Get(context.Background(), store.KeySales, &out))
	assert.Empty(t, out)
}

func TestFileStore_CorruptBlobDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	st, err := store.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, store.KeyInventory+".json"), []byte("{{{ not json"), 0o644))

	var out []model.InventoryLine
	require.NoError(t, st.Get(context.Background(), store.KeyInventory, &out))
	assert.Empty(t, out)
}

func TestFileStore_SetOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	st, err := store.NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, store.KeySales, []model.SaleRecord{{ID: uuid.New(), QuantitySold: 1}}))
	require.NoError(t, st.Set(ctx, store.KeySales, []model.SaleRecord{}))

	var out []model.SaleRecord
	require.NoError(t, st.Get(ctx, store.KeySales, &out))
	assert.Empty(t, out)

	// No temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}
