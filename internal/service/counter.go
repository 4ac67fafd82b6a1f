package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/tastybites/counter/internal/hours"
	"github.com/tastybites/counter/internal/menu"
	"github.com/tastybites/counter/internal/order"
)

// CounterResult is the outcome of one run of the counter.
type CounterResult struct {
	Closed   bool
	Ledger   *order.Ledger
	Checkout CheckoutResult
}

// Counter is the café counter: it checks opening hours once, runs a single
// ordering session and checks the order out.
type Counter struct {
	catalog    *menu.Catalog
	window     hours.Window
	receiptDir string
	logger     *zap.Logger
	now        func() time.Time
}

// NewCounter creates a Counter. now is consulted for the opening-hours check
// and for the receipt timestamp.
func NewCounter(catalog *menu.Catalog, window hours.Window, receiptDir string, logger *zap.Logger, now func() time.Time) *Counter {
	if now == nil {
		now = time.Now
	}
	return &Counter{
		catalog:    catalog,
		window:     window,
		receiptDir: receiptDir,
		logger:     logger,
		now:        now,
	}
}

// Run serves one operator reading from in and writing to out. Outside
// opening hours it prints a closure notice and returns without a session.
// A receipt that cannot be saved is not an error here; it has been reported
// to the operator already.
func (c *Counter) Run(ctx context.Context, in io.Reader, out io.Writer) (CounterResult, error) {
	fmt.Fprintln(out, "Welcome to TastyBites Online Ordering")
	fmt.Fprintf(out, "Café Timings: %s\n", c.window)

	if !c.window.Contains(hours.Of(c.now())) {
		c.logger.Info("counter closed", zap.String("window", c.window.String()))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Sorry! TastyBites is currently closed.")
		fmt.Fprintf(out, "Please visit us between %s and %s.\n", c.window.Open, c.window.Close)
		return CounterResult{Closed: true}, nil
	}

	ledger := order.NewLedger()
	c.logger.Info("counter open", zap.String("order_id", ledger.ID().String()))

	session := NewSession(c.catalog, ledger, in, out, c.logger)
	if err := session.Run(ctx); err != nil {
		return CounterResult{Ledger: ledger}, fmt.Errorf("ordering session: %w", err)
	}

	checkout := NewCheckout(c.receiptDir, out, c.logger, c.now)
	res, err := checkout.Complete(ledger)
	if err != nil {
		c.logger.Warn("order accepted without saved receipt", zap.String("order_id", ledger.ID().String()))
	}
	return CounterResult{Ledger: ledger, Checkout: res}, nil
}
