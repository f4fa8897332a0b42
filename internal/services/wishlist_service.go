// internal/services/wishlist_service.go
package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/urbannest/storefront/internal/models"
	"github.com/urbannest/storefront/internal/session"
	"github.com/urbannest/storefront/internal/store"
)

// WishlistService owns saved-for-later product references for one
// session. Unlike the cart it never snapshots product data; reads
// rehydrate from the catalog so price and availability stay current.
type WishlistService struct {
	catalog *CatalogService
	cart    *CartService
	store   store.Store
	log     *logrus.Entry

	mtx       sync.Mutex
	sessionID string
	key       string
	wishlist  *models.Wishlist
}

func NewWishlistService(catalog *CatalogService, cart *CartService, st store.Store, sessions session.Provider, log *logrus.Entry) (*WishlistService, error) {
	sessionID, err := sessions.GetOrCreateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	s := &WishlistService{
		catalog:   catalog,
		cart:      cart,
		store:     st,
		log:       log,
		sessionID: sessionID,
		key:       "wishlist:" + sessionID,
	}
	s.wishlist = s.loadOrDefault()
	return s, nil
}

func (s *WishlistService) loadOrDefault() *models.Wishlist {
	raw, ok, err := s.store.Get(s.key)
	if err != nil {
		s.log.WithError(err).WithField("key", s.key).Warn("Failed to read wishlist snapshot, starting fresh")
		return s.emptyWishlist()
	}
	if !ok {
		return s.emptyWishlist()
	}

	var wishlist models.Wishlist
	if err := json.Unmarshal([]byte(raw), &wishlist); err != nil {
		s.log.WithError(err).WithField("key", s.key).Warn("Corrupted wishlist snapshot, starting fresh")
		return s.emptyWishlist()
	}
	if wishlist.Items == nil {
		wishlist.Items = []models.WishlistItem{}
	}
	return &wishlist
}

func (s *WishlistService) emptyWishlist() *models.Wishlist {
	now := time.Now()
	return &models.Wishlist{
		ID:        uuid.New().String(),
		SessionID: s.sessionID,
		Items:     []models.WishlistItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *WishlistService) persist() error {
	s.wishlist.UpdatedAt = time.Now()
	data, err := json.Marshal(s.wishlist)
	if err != nil {
		return fmt.Errorf("failed to encode wishlist: %w", err)
	}
	if err := s.store.Set(s.key, string(data)); err != nil {
		return fmt.Errorf("failed to persist wishlist: %w", err)
	}
	return nil
}

// AddItem appends a reference for productID. Already present is a
// no-op.
func (s *WishlistService) AddItem(productID string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.addLocked(productID)
}

func (s *WishlistService) addLocked(productID string) error {
	if s.wishlist.FindItem(productID) >= 0 {
		return nil
	}
	s.wishlist.Items = append(s.wishlist.Items, models.WishlistItem{
		ProductID: productID,
		AddedAt:   time.Now(),
	})
	return s.persist()
}

// RemoveItem drops the reference for productID. Absence is a no-op.
func (s *WishlistService) RemoveItem(productID string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.removeLocked(productID)
}

func (s *WishlistService) removeLocked(productID string) error {
	idx := s.wishlist.FindItem(productID)
	if idx < 0 {
		return nil
	}
	s.wishlist.Items = append(s.wishlist.Items[:idx], s.wishlist.Items[idx+1:]...)
	return s.persist()
}

// ToggleItem adds the product when absent and removes it when present.
// Two consecutive toggles restore the exact prior state.
func (s *WishlistService) ToggleItem(productID string) (added bool, err error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.wishlist.FindItem(productID) >= 0 {
		return false, s.removeLocked(productID)
	}
	return true, s.addLocked(productID)
}

func (s *WishlistService) IsInWishlist(productID string) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.wishlist.FindItem(productID) >= 0
}

// GetWishlist resolves every stored reference against the catalog.
// References the catalog can no longer resolve are dropped from the
// result silently, never surfaced as errors.
func (s *WishlistService) GetWishlist() []models.Product {
	s.mtx.Lock()
	items := make([]models.WishlistItem, len(s.wishlist.Items))
	copy(items, s.wishlist.Items)
	s.mtx.Unlock()

	products := []models.Product{}
	for _, item := range items {
		if p := s.catalog.GetByID(item.ProductID); p != nil {
			products = append(products, *p)
		}
	}
	return products
}

// ItemCount is the number of stored references, resolvable or not.
func (s *WishlistService) ItemCount() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return len(s.wishlist.Items)
}

// MoveToCart adds one unit to the cart and then removes the wishlist
// reference. The cart add runs first so a failure there leaves the
// wishlist untouched.
func (s *WishlistService) MoveToCart(productID string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.wishlist.FindItem(productID) < 0 {
		return ErrNotInWishlist
	}
	if _, err := s.cart.AddItem(productID, 1); err != nil {
		return err
	}
	return s.removeLocked(productID)
}

// ClearWishlist empties all references.
func (s *WishlistService) ClearWishlist() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.wishlist.Items = []models.WishlistItem{}
	return s.persist()
}

func (s *WishlistService) SessionID() string {
	return s.sessionID
}
