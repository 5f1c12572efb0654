package mealmatch

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrDuplicateItem = errors.New("inventory item already exists")
	ErrItemNotFound  = errors.New("inventory item not found")
	ErrEmptyItemName = errors.New("inventory item name is required")
)

const expiringWindow = 3 * 24 * time.Hour

type Expiry string

const (
	ExpiryFresh    Expiry = "fresh"
	ExpiryExpiring Expiry = "expiring"
	ExpiryExpired  Expiry = "expired"
)

type InventoryItem struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit"`
	ExpiryDate *time.Time      `json:"expiryDate,omitempty"`
}

// ExpiryStatus classifies an item relative to now. Items without an expiry
// date never expire.
func (i InventoryItem) ExpiryStatus(now time.Time) Expiry {
	if i.ExpiryDate == nil {
		return ExpiryFresh
	}
	left := i.ExpiryDate.Sub(now)
	switch {
	case left < 0:
		return ExpiryExpired
	case left <= expiringWindow:
		return ExpiryExpiring
	default:
		return ExpiryFresh
	}
}

func InventoryNames(items []InventoryItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

// Inventory is a local ingredient store that keeps its meal suggestions in
// step with every change. It is not safe for concurrent use.
type Inventory struct {
	catalog     []Recipe
	items       []InventoryItem
	suggestions Suggestions
}

func NewInventory(catalog []Recipe) *Inventory {
	inv := &Inventory{catalog: catalog}
	inv.recompute()
	return inv
}

func (inv *Inventory) recompute() {
	inv.suggestions = Suggest(InventoryNames(inv.items), inv.catalog)
}

func (inv *Inventory) indexOf(id string) int {
	for i, item := range inv.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (inv *Inventory) Add(item InventoryItem) (InventoryItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return InventoryItem{}, ErrEmptyItemName
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if inv.indexOf(item.ID) >= 0 {
		return InventoryItem{}, ErrDuplicateItem
	}

	inv.items = append(inv.items, item)
	inv.recompute()
	return item, nil
}

func (inv *Inventory) Update(id string, item InventoryItem) error {
	idx := inv.indexOf(id)
	if idx < 0 {
		return ErrItemNotFound
	}
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return ErrEmptyItemName
	}

	item.ID = id
	inv.items[idx] = item
	inv.recompute()
	return nil
}

func (inv *Inventory) Remove(id string) error {
	idx := inv.indexOf(id)
	if idx < 0 {
		return ErrItemNotFound
	}

	inv.items = append(inv.items[:idx], inv.items[idx+1:]...)
	inv.recompute()
	return nil
}

func (inv *Inventory) Items() []InventoryItem {
	out := make([]InventoryItem, len(inv.items))
	copy(out, inv.items)
	return out
}

func (inv *Inventory) Suggestions() Suggestions {
	return inv.suggestions
}

// Expiring returns the items that are expired or about to expire.
func (inv *Inventory) Expiring(now time.Time) []InventoryItem {
	return ExpiringItems(inv.items, now)
}

func ExpiringItems(items []InventoryItem, now time.Time) []InventoryItem {
	out := []InventoryItem{}
	for _, item := range items {
		if item.ExpiryStatus(now) != ExpiryFresh {
			out = append(out, item)
		}
	}
	return out
}
