// internal/models/wishlist.go
package models

import "time"

// WishlistItem stores only a product reference. Product data is
// rehydrated live from the catalog on read, unlike cart lines.
type WishlistItem struct {
	ProductID string    `json:"productId"`
	AddedAt   time.Time `json:"addedAt"`
}

type Wishlist struct {
	ID        string         `json:"id"`
	SessionID string         `json:"sessionId"`
	Items     []WishlistItem `json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// FindItem returns the index of the reference for productID, or -1.
func (w *Wishlist) FindItem(productID string) int {
	for i := range w.Items {
		if w.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (w *Wishlist) Clone() *Wishlist {
	out := *w
	out.Items = make([]WishlistItem, len(w.Items))
	copy(out.Items, w.Items)
	return &out
}
