package service

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/tastybites/counter/internal/order"
	"github.com/tastybites/counter/internal/receipt"
)

// CheckoutResult describes what happened to the order at checkout.
type CheckoutResult struct {
	Empty       bool
	Receipt     string
	ReceiptPath string
}

// Checkout turns a finished ledger into a printed and saved receipt.
type Checkout struct {
	receiptDir string
	out        io.Writer
	logger     *zap.Logger
	now        func() time.Time
}

// NewCheckout creates a Checkout saving receipts into receiptDir.
func NewCheckout(receiptDir string, out io.Writer, logger *zap.Logger, now func() time.Time) *Checkout {
	return &Checkout{receiptDir: receiptDir, out: out, logger: logger, now: now}
}

// Complete prints the receipt and saves it. A failed save is reported to the
// operator and returned, but the order stands: the receipt was already shown.
// An empty ledger produces a farewell and no receipt.
func (c *Checkout) Complete(ledger *order.Ledger) (CheckoutResult, error) {
	if ledger.IsEmpty() {
		fmt.Fprintln(c.out, "No items ordered. Goodbye!")
		c.logger.Info("checkout without items", zap.String("order_id", ledger.ID().String()))
		return CheckoutResult{Empty: true}, nil
	}

	acceptedAt := c.now()
	text := receipt.Render(ledger, acceptedAt)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, text)

	c.logger.Info("order accepted",
		zap.String("order_id", ledger.ID().String()),
		zap.Int("lines", ledger.LineCount()),
		zap.Int("quantity", ledger.TotalQuantity()),
		zap.String("total", ledger.TotalAmount().StringFixed(2)))

	res := CheckoutResult{Receipt: text}
	path, err := receipt.Persist(c.receiptDir, text, acceptedAt)
	if err != nil {
		c.logger.Error("receipt not saved", zap.String("order_id", ledger.ID().String()), zap.Error(err))
		fmt.Fprintf(c.out, "Error saving receipt: %v\n", err)
		return res, err
	}

	res.ReceiptPath = path
	c.logger.Info("receipt saved", zap.String("path", path))
	fmt.Fprintf(c.out, "Receipt saved as '%s'.\n", path)
	return res, nil
}
