// internal/services/hub.go
package services

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/urbannest/storefront/internal/session"
	"github.com/urbannest/storefront/internal/store"
)

// Hub hands out the per-session cart and wishlist engines behind the
// HTTP layer. Engines are created on first use for a session and cached
// so repeated requests share in-memory state.
type Hub struct {
	catalog *CatalogService
	store   store.Store
	log     *logrus.Entry

	mtx       sync.Mutex
	carts     map[string]*CartService
	wishlists map[string]*WishlistService
}

func NewHub(catalog *CatalogService, st store.Store, log *logrus.Entry) *Hub {
	return &Hub{
		catalog:   catalog,
		store:     st,
		log:       log,
		carts:     make(map[string]*CartService),
		wishlists: make(map[string]*WishlistService),
	}
}

func (h *Hub) Cart(sessionID string) (*CartService, error) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return h.cartLocked(sessionID)
}

func (h *Hub) cartLocked(sessionID string) (*CartService, error) {
	if cart, ok := h.carts[sessionID]; ok {
		return cart, nil
	}
	cart, err := NewCartService(h.catalog, h.store, session.Static(sessionID), h.log)
	if err != nil {
		return nil, err
	}
	h.carts[sessionID] = cart
	return cart, nil
}

func (h *Hub) Wishlist(sessionID string) (*WishlistService, error) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	if wishlist, ok := h.wishlists[sessionID]; ok {
		return wishlist, nil
	}
	cart, err := h.cartLocked(sessionID)
	if err != nil {
		return nil, err
	}
	wishlist, err := NewWishlistService(h.catalog, cart, h.store, session.Static(sessionID), h.log)
	if err != nil {
		return nil, err
	}
	h.wishlists[sessionID] = wishlist
	return wishlist, nil
}
