package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tastybites/counter/internal/menu"
)

// Line is one accepted selection. Lines are never modified after creation.
type Line struct {
	Item     *menu.Item
	Quantity int
}

// LineTotal = unit price * quantity.
func (l Line) LineTotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Ledger accumulates the lines of a single order in selection order.
type Ledger struct {
	id    uuid.UUID
	lines []Line
}

// NewLedger creates an empty ledger with a fresh order id.
func NewLedger() *Ledger {
	return &Ledger{id: uuid.New()}
}

// ID identifies the order on the receipt and in logs.
func (l *Ledger) ID() uuid.UUID {
	return l.id
}

// AddLine appends a line. Stock has already been taken by the caller.
func (l *Ledger) AddLine(item *menu.Item, qty int) {
	l.lines = append(l.lines, Line{Item: item, Quantity: qty})
}

// Lines returns the lines in insertion order.
func (l *Ledger) Lines() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Ledger) IsEmpty() bool {
	return len(l.lines) == 0
}

// LineCount is the number of distinct lines, not units.
func (l *Ledger) LineCount() int {
	return len(l.lines)
}

func (l *Ledger) TotalQuantity() int {
	total := 0
	for _, line := range l.lines {
		total += line.Quantity
	}
	return total
}

func (l *Ledger) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l.lines {
		total = total.Add(line.LineTotal())
	}
	return total
}
