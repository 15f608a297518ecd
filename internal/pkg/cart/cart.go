// Package cart holds the coverage selections of a quote and derives its premium.
package cart

import (
	"encoding/json"
)

// TaxRate is the flat tax applied to the subtotal.
const TaxRate = 0.07

// CoverageSelection is one chosen coverage level held in the cart.
type CoverageSelection struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Deductible  float64 `json:"deductible"`
	Price       float64 `json:"price"`
}

// Cart is an ordered set of selections keyed by ID. The zero value is an
// empty cart ready to use. A Cart is not safe for concurrent use.
type Cart struct {
	items []CoverageSelection
}

// New returns a cart holding the given selections. Later duplicates replace
// earlier ones.
func New(items ...CoverageSelection) *Cart {
	c := &Cart{}
	for _, item := range items {
		c.AddOrReplace(item)
	}
	return c
}

// AddOrReplace replaces the selection with the same ID in place, or appends it.
func (c *Cart) AddOrReplace(sel CoverageSelection) {
	if i := c.indexOf(sel.ID); i >= 0 {
		c.items[i] = sel
		return
	}
	c.items = append(c.items, sel)
}

// Remove drops the selection with the given ID. Unknown IDs are ignored.
func (c *Cart) Remove(id string) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the selections in insertion order.
func (c *Cart) Items() []CoverageSelection {
	out := make([]CoverageSelection, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of selections.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether nothing is selected.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Contains reports whether a selection is stored under id.
func (c *Cart) Contains(id string) bool {
	return c.indexOf(id) >= 0
}

// Get returns the selection stored under id.
func (c *Cart) Get(id string) (CoverageSelection, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	return CoverageSelection{}, false
}

// Subtotal is the sum of all selection prices.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, item := range c.items {
		sum += item.Price
	}
	return sum
}

// Tax is Subtotal times TaxRate.
func (c *Cart) Tax() float64 {
	return c.Subtotal() * TaxRate
}

// Total is Subtotal plus Tax.
func (c *Cart) Total() float64 {
	return c.Subtotal() + c.Tax()
}

// MarshalJSON encodes the cart as a JSON array of selections in insertion order.
func (c *Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Items())
}

// UnmarshalJSON restores a cart from a JSON array of selections, collapsing
// duplicate IDs the same way AddOrReplace does.
func (c *Cart) UnmarshalJSON(data []byte) error {
	var items []CoverageSelection
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*c = *New(items...)
	return nil
}

func (c *Cart) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}
