package cart

import (
	"github.com/shopspring/decimal"

	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
)

// Cart is the transient, unpersisted set of items a user intends to order.
// It lives only in the browser-session registry and is lost when the
// session goes away. At most one entry per menu-item identifier.
//
// Cart itself is not safe for concurrent use; the owning session
// serializes access.
type Cart struct {
	items []entity.MenuItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Items returns a copy of the entries in insertion order.
func (c *Cart) Items() []entity.MenuItem {
	return append([]entity.MenuItem(nil), c.items...)
}

// Len returns the number of entries.
func (c *Cart) Len() int {
	return len(c.items)
}

// Contains reports whether an item with the given ID is in the cart.
func (c *Cart) Contains(id uint64) bool {
	for _, item := range c.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// add appends an entry. Callers must have checked Contains first.
func (c *Cart) add(item entity.MenuItem) {
	c.items = append(c.items, item)
}

// Remove drops the entry with the given ID. Removing an absent ID is a
// no-op, not an error.
func (c *Cart) Remove(id uint64) {
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Total is the live sum of the entry prices. It is recomputed on every
// call and never cached apart from the collection, so it cannot drift.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Price)
	}
	return total
}

// ItemIDs returns the entry identifiers in insertion order.
func (c *Cart) ItemIDs() []uint64 {
	ids := make([]uint64, 0, len(c.items))
	for _, item := range c.items {
		ids = append(ids, item.ID)
	}
	return ids
}
