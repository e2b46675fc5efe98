package models

import "time"

type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart is a session-only basket. It is never written to the durable store.
type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Add puts one unit of p in the cart, merging with an existing line for the
// same product id.
func (c *Cart) Add(p Product) {
	for i := range c.Items {
		if c.Items[i].ID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{Product: p, Quantity: 1})
}

// UpdateQuantity shifts a line's quantity by delta. A change that would
// leave the line at zero or below is ignored; use Remove to drop a line.
func (c *Cart) UpdateQuantity(productID string, delta int) bool {
	for i := range c.Items {
		if c.Items[i].ID != productID {
			continue
		}
		qty := c.Items[i].Quantity + delta
		if qty <= 0 {
			return false
		}
		c.Items[i].Quantity = qty
		return true
	}
	return false
}

func (c *Cart) Remove(productID string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

func (c *Cart) Count() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

type CartSummary struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
	Count int        `json:"count"`
	Total float64    `json:"total"`
}

func (c *Cart) Summary() CartSummary {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return CartSummary{
		ID:    c.ID,
		Items: items,
		Count: c.Count(),
		Total: c.Total(),
	}
}

type WhatsAppOrder struct {
	Phone   string  `json:"phone"`
	Message string  `json:"message"`
	URL     string  `json:"url"`
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
}
