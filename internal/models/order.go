// internal/models/order.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Address struct {
	FullName string `json:"fullName" validate:"required"`
	Line1    string `json:"line1" validate:"required"`
	Line2    string `json:"line2,omitempty"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	Pincode  string `json:"pincode" validate:"required,pincode"`
	Phone    string `json:"phone" validate:"required,phone"`
}

type ContactInfo struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,phone"`
}

// OrderItem is an immutable order line. The product name is denormalized
// at conversion time so the record survives catalog changes.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	ItemTotal   float64 `json:"itemTotal"`
}

// Order is created once at checkout submission and appended to the
// persisted order log; no update operations exist.
type Order struct {
	ID                string        `json:"id"`
	OrderNumber       string        `json:"orderNumber"`
	UserID            *uuid.UUID    `json:"userId,omitempty"`
	Items             []OrderItem   `json:"items"`
	Subtotal          float64       `json:"subtotal"`
	ShippingCost      float64       `json:"shippingCost"`
	Total             float64       `json:"total"`
	Status            OrderStatus   `json:"status"`
	PaymentMethod     PaymentMethod `json:"paymentMethod"`
	PaymentStatus     PaymentStatus `json:"paymentStatus"`
	Address           Address       `json:"address"`
	Contact           ContactInfo   `json:"contact"`
	OrderedAt         time.Time     `json:"orderedAt"`
	EstimatedDelivery *time.Time    `json:"estimatedDelivery,omitempty"`
}

// CheckoutSession holds a deep copy of the items a checkout was started
// with. Shipping stays zero until an address is known.
type CheckoutSession struct {
	ID           string     `json:"id"`
	Items        []CartItem `json:"items"`
	Subtotal     float64    `json:"subtotal"`
	ShippingCost float64    `json:"shippingCost"`
	Total        float64    `json:"total"`
	CreatedAt    time.Time  `json:"createdAt"`
}
