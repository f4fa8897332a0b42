// internal/services/cart_service.go
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

// CartService owns the shopping cart for one session: line items,
// frozen unit prices, derived totals. Every mutation persists the full
// snapshot synchronously before returning.
type CartService struct {
	catalog *CatalogService
	store   store.Store
	log     *logrus.Entry

	mtx       sync.Mutex
	sessionID string
	key       string
	cart      *models.Cart
}

func NewCartService(catalog *CatalogService, st store.Store, sessions session.Provider, log *logrus.Entry) (*CartService, error) {
	sessionID, err := sessions.GetOrCreateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	s := &CartService{
		catalog:   catalog,
		store:     st,
		log:       log,
		sessionID: sessionID,
		key:       "cart:" + sessionID,
	}
	s.cart = s.loadOrDefault()
	return s, nil
}

// loadOrDefault revives a persisted snapshot, falling back to a fresh
// empty cart on any read or parse failure. Corruption degrades to
// "start fresh" instead of breaking the caller.
func (s *CartService) loadOrDefault() *models.Cart {
	raw, ok, err := s.store.Get(s.key)
	if err != nil {
		s.log.WithError(err).WithField("key", s.key).Warn("Failed to read cart snapshot, starting fresh")
		return s.emptyCart()
	}
	if !ok {
		return s.emptyCart()
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		s.log.WithError(err).WithField("key", s.key).Warn("Corrupted cart snapshot, starting fresh")
		return s.emptyCart()
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart
}

func (s *CartService) emptyCart() *models.Cart {
	now := time.Now()
	return &models.Cart{
		ID:        uuid.New().String(),
		SessionID: s.sessionID,
		Items:     []models.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *CartService) persist() error {
	data, err := json.Marshal(s.cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.store.Set(s.key, string(data)); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// AddItem adds quantity units of a product. A repeat add increments the
// existing line and keeps the originally snapshotted unit price; only a
// brand new line captures the current catalog price.
func (s *CartService) AddItem(productID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product := s.catalog.GetByID(productID)
	if product == nil {
		return nil, ErrProductNotFound
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if idx := s.cart.FindItem(productID); idx >= 0 {
		s.cart.Items[idx].Quantity += quantity
	} else {
		s.cart.Items = append(s.cart.Items, models.CartItem{
			ProductID:  productID,
			Product:    *product,
			Quantity:   quantity,
			PriceAtAdd: product.EffectivePrice(),
		})
	}

	if err := s.commit(); err != nil {
		return nil, err
	}
	return s.cart.Clone(), nil
}

// RemoveItem drops the line for productID. Absence is a no-op, not an
// error.
func (s *CartService) RemoveItem(productID string) (*models.Cart, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.removeLocked(productID)
}

func (s *CartService) removeLocked(productID string) (*models.Cart, error) {
	idx := s.cart.FindItem(productID)
	if idx < 0 {
		return s.cart.Clone(), nil
	}
	s.cart.Items = append(s.cart.Items[:idx], s.cart.Items[idx+1:]...)
	if err := s.commit(); err != nil {
		return nil, err
	}
	return s.cart.Clone(), nil
}

// UpdateQuantity sets the line's quantity, recomputing its total from
// the frozen unit price. A quantity of zero or less removes the line.
// Unknown products are a no-op.
func (s *CartService) UpdateQuantity(productID string, quantity int) (*models.Cart, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if quantity <= 0 {
		return s.removeLocked(productID)
	}

	idx := s.cart.FindItem(productID)
	if idx < 0 {
		return s.cart.Clone(), nil
	}
	s.cart.Items[idx].Quantity = quantity

	if err := s.commit(); err != nil {
		return nil, err
	}
	return s.cart.Clone(), nil
}

// ClearCart empties all line items.
func (s *CartService) ClearCart() (*models.Cart, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.cart.Items = []models.CartItem{}
	if err := s.commit(); err != nil {
		return nil, err
	}
	return s.cart.Clone(), nil
}

// commit re-derives totals, stamps the cart and writes the snapshot.
// Callers must hold the mutex.
func (s *CartService) commit() error {
	s.cart.Recalculate()
	s.cart.UpdatedAt = time.Now()
	return s.persist()
}

// GetCart returns a defensive copy of the current state.
func (s *CartService) GetCart() *models.Cart {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.cart.Clone()
}

// GetItemCount is the sum of quantities across all lines.
func (s *CartService) GetItemCount() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.cart.ItemCount()
}

// GetTotal is the current cart total.
func (s *CartService) GetTotal() float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.cart.Total
}

func (s *CartService) SessionID() string {
	return s.sessionID
}
