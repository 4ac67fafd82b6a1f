package menu

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Errors returned while loading a menu seed file.
var (
	ErrEmptyMenu     = errors.New("menu has no items")
	ErrDuplicateItem = errors.New("duplicate item name")
	ErrInvalidItem   = errors.New("invalid item")
)

// DefaultItems is the built-in café menu.
func DefaultItems() []Item {
	return []Item{
		{Name: "Espresso", Price: decimal.RequireFromString("3.50"), Available: 10},
		{Name: "Cappuccino", Price: decimal.RequireFromString("4.00"), Available: 8},
		{Name: "Latte", Price: decimal.RequireFromString("4.50"), Available: 6},
		{Name: "Mocha", Price: decimal.RequireFromString("5.00"), Available: 5},
		{Name: "Croissant", Price: decimal.RequireFromString("2.75"), Available: 15},
		{Name: "Muffin", Price: decimal.RequireFromString("2.50"), Available: 12},
		{Name: "Sandwich", Price: decimal.RequireFromString("5.50"), Available: 7},
	}
}

type seedFile struct {
	Items []seedItem `yaml:"items"`
}

// Prices travel as strings so YAML never rounds them through float64.
type seedItem struct {
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Quantity int    `yaml:"quantity"`
}

// ReadYAML decodes and validates a menu seed.
func ReadYAML(r io.Reader) ([]Item, error) {
	var f seedFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyMenu
		}
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	if len(f.Items) == 0 {
		return nil, ErrEmptyMenu
	}

	seen := make(map[string]bool, len(f.Items))
	items := make([]Item, 0, len(f.Items))
	for i, s := range f.Items {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, fmt.Errorf("item[%d]: %w: name is required", i, ErrInvalidItem)
		}
		if seen[name] {
			return nil, fmt.Errorf("item[%d]: %w: %s", i, ErrDuplicateItem, name)
		}
		seen[name] = true

		price, err := decimal.NewFromString(strings.TrimSpace(s.Price))
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("item[%d]: %w: price %q", i, ErrInvalidItem, s.Price)
		}
		if s.Quantity < 0 {
			return nil, fmt.Errorf("item[%d]: %w: quantity %d", i, ErrInvalidItem, s.Quantity)
		}
		items = append(items, Item{Name: name, Price: price, Available: s.Quantity})
	}
	return items, nil
}

// WriteYAML encodes items in the format ReadYAML accepts.
func WriteYAML(w io.Writer, items []Item) error {
	f := seedFile{Items: make([]seedItem, 0, len(items))}
	for _, it := range items {
		f.Items = append(f.Items, seedItem{
			Name:     it.Name,
			Price:    it.Price.StringFixed(2),
			Quantity: it.Available,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode menu: %w", err)
	}
	return enc.Close()
}
