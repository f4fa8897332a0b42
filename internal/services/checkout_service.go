// internal/services/checkout_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/urbannest/storefront/internal/models"
	"github.com/urbannest/storefront/internal/store"
	"github.com/urbannest/storefront/internal/utils"
)

const (
	orderLogKey     = "orders"
	orderCounterKey = "orders:counter"

	// Order numbers look like A1F-20250310-0042. The counter is global,
	// not per-day, so the suffix never resets.
	orderNumberPrefix = "A1F"

	flatShippingFee      = 500.0
	estimatedDeliveryDue = 7 * 24 * time.Hour
)

// CheckoutService orchestrates order placement: validation, shipping,
// order minting and the persisted order log. It reads the identity gate
// purely to attribute orders; guest orders carry no user id.
type CheckoutService struct {
	store    store.Store
	identity IdentityGate
	log      *logrus.Entry

	mtx sync.Mutex
	now func() time.Time
}

// ValidationResult is a structured outcome: every violated rule is
// collected so the caller can display the full list at once.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

type SubmitOrderRequest struct {
	Items         []models.CartItem    `json:"items"`
	Address       models.Address       `json:"address"`
	Contact       models.ContactInfo   `json:"contact"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	// GuestCheckout forces a guest order even when a user is signed in.
	GuestCheckout bool `json:"guestCheckout"`
	// ClearCart defaults to true; the "buy now" flow sets it to false so
	// whatever is sitting in the cart stays untouched.
	ClearCart *bool `json:"clearCart"`
}

func (r *SubmitOrderRequest) shouldClearCart() bool {
	return r.ClearCart == nil || *r.ClearCart
}

// CartClearer is the slice of the cart engine checkout needs.
type CartClearer interface {
	ClearCart() (*models.Cart, error)
}

func NewCheckoutService(st store.Store, identity IdentityGate, log *logrus.Entry) *CheckoutService {
	return &CheckoutService{
		store:    st,
		identity: identity,
		log:      log,
		now:      time.Now,
	}
}

var addressFieldLabels = map[string]string{
	"FullName": "Full name",
	"Line1":    "Address line 1",
	"City":     "City",
	"State":    "State",
	"Pincode":  "Pincode",
	"Phone":    "Phone",
}

var contactFieldLabels = map[string]string{
	"Email": "Email",
	"Phone": "Contact phone",
}

// InitiateCheckout starts a checkout session over a deep copy of the
// supplied items; mutating the caller's slice afterwards must not
// affect the session. Shipping stays zero until an address is known.
func (s *CheckoutService) InitiateCheckout(items []models.CartItem) (*models.CheckoutSession, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	copied := copyCartItems(items)
	subtotal := itemsSubtotal(copied)

	return &models.CheckoutSession{
		ID:           uuid.New().String(),
		Items:        copied,
		Subtotal:     subtotal,
		ShippingCost: 0,
		Total:        subtotal,
		CreatedAt:    s.now(),
	}, nil
}

// ValidateAddress checks every rule independently and reports all
// violations; it never returns an error.
func (s *CheckoutService) ValidateAddress(address models.Address) ValidationResult {
	messages := utils.ValidationMessages(utils.ValidateStruct(&address), addressFieldLabels)
	return ValidationResult{
		IsValid: len(messages) == 0,
		Errors:  messages,
	}
}

// CalculateShipping applies the flat rule table: free delivery within
// Mumbai (either name), a flat fee everywhere else.
func (s *CheckoutService) CalculateShipping(address models.Address) float64 {
	city := strings.ToLower(strings.TrimSpace(address.City))
	if city == "mumbai" || city == "bombay" {
		return 0
	}
	return flatShippingFee
}

// SubmitOrder validates order-level fields, then the address, and only
// then mints an order number, builds the immutable order record and
// appends it to the persisted log. Cart clearing is skipped for the
// "buy now" flow. A validation failure creates no record and never
// advances the order counter.
func (s *CheckoutService) SubmitOrder(ctx context.Context, req *SubmitOrderRequest, cart CartClearer) (*models.Order, error) {
	if err := s.validateOrder(req); err != nil {
		return nil, err
	}

	if result := s.ValidateAddress(req.Address); !result.IsValid {
		return nil, &AddressValidationError{Messages: result.Errors}
	}

	items := copyCartItems(req.Items)
	subtotal := itemsSubtotal(items)
	shipping := s.CalculateShipping(req.Address)

	var userID *uuid.UUID
	if !req.GuestCheckout && s.identity != nil && s.identity.IsAuthenticated(ctx) {
		if user := s.identity.CurrentUser(ctx); user != nil {
			id := user.ID
			userID = &id
		}
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	now := s.now()
	orderNumber, err := s.nextOrderNumber(now)
	if err != nil {
		return nil, err
	}

	estimated := now.Add(estimatedDeliveryDue)
	order := models.Order{
		ID:                uuid.New().String(),
		OrderNumber:       orderNumber,
		UserID:            userID,
		Items:             toOrderItems(items),
		Subtotal:          subtotal,
		ShippingCost:      shipping,
		Total:             subtotal + shipping,
		Status:            models.OrderStatusPending,
		PaymentMethod:     req.PaymentMethod,
		PaymentStatus:     models.PaymentStatusPending,
		Address:           req.Address,
		Contact:           req.Contact,
		OrderedAt:         now,
		EstimatedDelivery: &estimated,
	}

	orders := s.loadOrders()
	orders = append(orders, order)
	if err := s.persistOrders(orders); err != nil {
		return nil, err
	}

	if req.shouldClearCart() && cart != nil {
		if _, err := cart.ClearCart(); err != nil {
			s.log.WithError(err).Warn("Order placed but cart could not be cleared")
		}
	}

	s.log.WithFields(logrus.Fields{
		"order_number": order.OrderNumber,
		"total":        order.Total,
		"guest":        userID == nil,
	}).Info("Order placed")

	return &order, nil
}

func (s *CheckoutService) validateOrder(req *SubmitOrderRequest) error {
	var messages []string

	if len(req.Items) == 0 {
		messages = append(messages, "Order must contain at least one item")
	}
	messages = append(messages, utils.ValidationMessages(utils.ValidateStruct(&req.Contact), contactFieldLabels)...)
	if !req.PaymentMethod.IsSupported() {
		messages = append(messages, fmt.Sprintf("Payment method must be %q or %q", models.PaymentMethodCOD, models.PaymentMethodOnline))
	}

	if len(messages) > 0 {
		return &OrderValidationError{Messages: messages}
	}
	return nil
}

// GetOrders returns the orders attributed to the currently
// authenticated user. Guests get an empty list.
func (s *CheckoutService) GetOrders(ctx context.Context) []models.Order {
	if s.identity == nil || !s.identity.IsAuthenticated(ctx) {
		return []models.Order{}
	}
	user := s.identity.CurrentUser(ctx)
	if user == nil {
		return []models.Order{}
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	results := []models.Order{}
	for _, order := range s.loadOrders() {
		if order.UserID != nil && *order.UserID == user.ID {
			results = append(results, order)
		}
	}
	return results
}

// GetOrderByID matches either the internal id or the human-readable
// order number; nil when neither matches.
func (s *CheckoutService) GetOrderByID(idOrNumber string) *models.Order {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, order := range s.loadOrders() {
		if order.ID == idOrNumber || order.OrderNumber == idOrNumber {
			order := order
			return &order
		}
	}
	return nil
}

func (s *CheckoutService) loadOrders() []models.Order {
	raw, ok, err := s.store.Get(orderLogKey)
	if err != nil {
		s.log.WithError(err).Warn("Failed to read order log, treating as empty")
		return []models.Order{}
	}
	if !ok {
		return []models.Order{}
	}

	var orders []models.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		s.log.WithError(err).Warn("Corrupted order log, treating as empty")
		return []models.Order{}
	}
	return orders
}

func (s *CheckoutService) persistOrders(orders []models.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to encode order log: %w", err)
	}
	if err := s.store.Set(orderLogKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist order log: %w", err)
	}
	return nil
}

// nextOrderNumber advances the persisted global counter and formats the
// human-readable order number for the given date.
func (s *CheckoutService) nextOrderNumber(now time.Time) (string, error) {
	counter := 0
	raw, ok, err := s.store.Get(orderCounterKey)
	if err != nil {
		return "", fmt.Errorf("failed to read order counter: %w", err)
	}
	if ok {
		if parsed, err := strconv.Atoi(raw); err == nil {
			counter = parsed
		} else {
			s.log.WithField("value", raw).Warn("Corrupted order counter, restarting from zero")
		}
	}

	counter++
	if err := s.store.Set(orderCounterKey, strconv.Itoa(counter)); err != nil {
		return "", fmt.Errorf("failed to persist order counter: %w", err)
	}

	return fmt.Sprintf("%s-%s-%04d", orderNumberPrefix, now.Format("20060102"), counter), nil
}

func copyCartItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	for i := range out {
		if dp := out[i].Product.DiscountPrice; dp != nil {
			v := *dp
			out[i].Product.DiscountPrice = &v
		}
		if pc := out[i].Product.DiscountPercent; pc != nil {
			v := *pc
			out[i].Product.DiscountPercent = &v
		}
	}
	return out
}

func itemsSubtotal(items []models.CartItem) float64 {
	var subtotal float64
	for i := range items {
		subtotal += float64(items[i].Quantity) * items[i].PriceAtAdd
	}
	return subtotal
}

func toOrderItems(items []models.CartItem) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.PriceAtAdd,
			ItemTotal:   float64(item.Quantity) * item.PriceAtAdd,
		})
	}
	return out
}
