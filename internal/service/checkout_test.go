package service

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tastybites/counter/internal/menu"
	"github.com/tastybites/counter/internal/order"
	"github.com/tastybites/counter/internal/receipt"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var noon = time.Date(2026, 10, 19, 12, 0, 0, 0, time.Local)

func TestCheckoutEmptyLedger(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	res, err := NewCheckout(dir, &out, zap.NewNop(), fixedClock(noon)).Complete(order.NewLedger())
	require.NoError(t, err)

	assert.True(t, res.Empty)
	assert.Contains(t, out.String(), "No items ordered. Goodbye!")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCheckoutPrintsAndSaves(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	ledger := order.NewLedger()
	ledger.AddLine(&menu.Item{Name: "Mocha", Price: decimal.RequireFromString("5.00")}, 2)

	res, err := NewCheckout(dir, &out, zap.NewNop(), fixedClock(noon)).Complete(ledger)
	require.NoError(t, err)

	assert.False(t, res.Empty)
	assert.Equal(t, filepath.Join(dir, receipt.FileName(noon)), res.ReceiptPath)
	assert.Contains(t, out.String(), res.Receipt)
	assert.Contains(t, out.String(), "Receipt saved as '"+res.ReceiptPath+"'.")

	saved, err := os.ReadFile(res.ReceiptPath)
	require.NoError(t, err)
	assert.Equal(t, res.Receipt, string(saved))
	assert.Contains(t, string(saved), "Grand Total:        $10.00")
}

func TestCheckoutSaveFailureIsReported(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	var out bytes.Buffer

	ledger := order.NewLedger()
	ledger.AddLine(&menu.Item{Name: "Muffin", Price: decimal.RequireFromString("2.50")}, 1)

	res, err := NewCheckout(dir, &out, zap.NewNop(), fixedClock(noon)).Complete(ledger)
	assert.ErrorIs(t, err, receipt.ErrPersist)

	assert.NotEmpty(t, res.Receipt)
	assert.Empty(t, res.ReceiptPath)
	assert.Contains(t, out.String(), "TASTY BITES ONLINE BILL")
	assert.Contains(t, out.String(), "Error saving receipt:")
}
