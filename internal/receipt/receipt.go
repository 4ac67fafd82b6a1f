package receipt

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tastybites/counter/internal/enum"
	"github.com/tastybites/counter/internal/order"
)

// ErrPersist wraps any failure to write a receipt file.
var ErrPersist = errors.New("save receipt")

const (
	nameWidth     = 15
	timeLayout    = "2006-01-02 15:04:05"
	rule          = "-------------------------------------------"
	closingBorder = "==========================================="
)

// FileName is the sortable receipt file name for an order accepted at ts.
func FileName(ts time.Time) string {
	return enum.ReceiptFilePrefix + ts.Format(enum.ReceiptFileLayout) + enum.ReceiptFileExt
}

// Render formats the ledger as the customer's bill.
func Render(ledger *order.Ledger, ts time.Time) string {
	var lines []string

	lines = append(lines, "========== TASTY BITES ONLINE BILL ==========")
	lines = append(lines, fmt.Sprintf("Order Accepted Time: %s", ts.Format(timeLayout)))
	lines = append(lines, fmt.Sprintf("Order ID: %s", ledger.ID()))
	lines = append(lines, rule)

	for _, l := range ledger.Lines() {
		lines = append(lines, fmt.Sprintf("%-*s x %2d = $%s",
			nameWidth, l.Item.Name, l.Quantity, l.LineTotal().StringFixed(2)))
	}

	lines = append(lines, rule)
	lines = append(lines, fmt.Sprintf("Total Items Ordered: %d", ledger.LineCount()))
	lines = append(lines, fmt.Sprintf("Total Quantity:      %d", ledger.TotalQuantity()))
	lines = append(lines, fmt.Sprintf("Grand Total:        $%s", ledger.TotalAmount().StringFixed(2)))
	lines = append(lines, rule)
	lines = append(lines, "Your order has been accepted. Please collect it soon!")
	lines = append(lines, "Thank you for ordering at TastyBites!")
	lines = append(lines, closingBorder)

	return strings.Join(lines, "\n") + "\n"
}

// Persist writes text to FileName(ts) inside dir and returns the path.
// The file is closed on every path; a close failure is reported like a
// write failure.
func Persist(dir, text string, ts time.Time) (path string, err error) {
	path = filepath.Join(dir, FileName(ts))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPersist, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			path, err = "", fmt.Errorf("%w: %w", ErrPersist, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(text); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return path, nil
}
