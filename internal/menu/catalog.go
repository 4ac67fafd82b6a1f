package menu

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errors returned by the catalog.
var (
	ErrOutOfRange        = errors.New("item number out of range")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUnknownItem       = errors.New("item does not belong to catalog")
	ErrInvalidQuantity   = errors.New("quantity must be > 0")
)

// Item is a purchasable product with its live stock count.
type Item struct {
	Name      string
	Price     decimal.Decimal
	Available int
}

// StockError reports a refused stock reduction along with what is left.
type StockError struct {
	Item      string
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("%s: requested %d, only %d available", e.Item, e.Requested, e.Available)
}

// Is lets callers match a StockError with errors.Is(err, ErrInsufficientStock).
func (e *StockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// Catalog owns the fixed list of items in display order.
// It is not safe for concurrent use.
type Catalog struct {
	items []*Item
}

// NewCatalog copies the given items into a catalog, preserving order.
func NewCatalog(items []Item) *Catalog {
	c := &Catalog{items: make([]*Item, 0, len(items))}
	for i := range items {
		it := items[i]
		c.items = append(c.items, &it)
	}
	return c
}

// List returns the items in initialization order.
func (c *Catalog) List() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len is the number of items on the menu.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Get returns the item at a 1-based display position.
func (c *Catalog) Get(index int) (*Item, error) {
	if index < 1 || index > len(c.items) {
		return nil, fmt.Errorf("%w: %d (menu has %d items)", ErrOutOfRange, index, len(c.items))
	}
	return c.items[index-1], nil
}

// ReduceStock takes qty units of item off the shelf. When qty exceeds what
// is available the item is left untouched and a *StockError is returned.
// A qty of zero or less is rejected with ErrInvalidQuantity.
func (c *Catalog) ReduceStock(item *Item, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, qty)
	}
	if !c.owns(item) {
		return ErrUnknownItem
	}
	if qty > item.Available {
		return &StockError{Item: item.Name, Requested: qty, Available: item.Available}
	}
	item.Available -= qty
	return nil
}

func (c *Catalog) owns(item *Item) bool {
	for _, it := range c.items {
		if it == item {
			return true
		}
	}
	return false
}
