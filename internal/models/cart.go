// internal/models/cart.go
package models

import "time"

// CartItem is one line in a cart, uniquely keyed by product id. The
// product copy and unit price are captured when the line is created and
// never refreshed from the catalog afterwards.
type CartItem struct {
	ProductID  string  `json:"productId"`
	Product    Product `json:"product"`
	Quantity   int     `json:"quantity"`
	PriceAtAdd float64 `json:"priceAtAdd"`
	ItemTotal  float64 `json:"itemTotal"`
}

type Cart struct {
	ID        string     `json:"id"`
	SessionID string     `json:"sessionId"`
	Items     []CartItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Recalculate re-derives every line total and the cart totals from
// quantity and the frozen unit price. Totals are never hand-patched.
func (c *Cart) Recalculate() {
	var subtotal float64
	for i := range c.Items {
		c.Items[i].ItemTotal = float64(c.Items[i].Quantity) * c.Items[i].PriceAtAdd
		subtotal += c.Items[i].ItemTotal
	}
	c.Subtotal = subtotal
	// Shipping is only added at checkout, never stored on the live cart.
	c.Total = subtotal
}

// ItemCount is the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for i := range c.Items {
		count += c.Items[i].Quantity
	}
	return count
}

// FindItem returns the index of the line for productID, or -1.
func (c *Cart) FindItem(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so callers cannot mutate engine state by
// reference.
func (c *Cart) Clone() *Cart {
	out := *c
	out.Items = make([]CartItem, len(c.Items))
	copy(out.Items, c.Items)
	for i := range out.Items {
		if dp := out.Items[i].Product.DiscountPrice; dp != nil {
			v := *dp
			out.Items[i].Product.DiscountPrice = &v
		}
		if pc := out.Items[i].Product.DiscountPercent; pc != nil {
			v := *pc
			out.Items[i].Product.DiscountPercent = &v
		}
	}
	return &out
}
