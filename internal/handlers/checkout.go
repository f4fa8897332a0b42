// internal/handlers/checkout.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/urbannest/storefront/internal/middleware"
	"github.com/urbannest/storefront/internal/models"
	"github.com/urbannest/storefront/internal/services"
	"github.com/urbannest/storefront/internal/utils"
)

type CheckoutHandler struct {
	checkout *services.CheckoutService
	hub      *services.Hub
}

func NewCheckoutHandler(checkout *services.CheckoutService, hub *services.Hub) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, hub: hub}
}

// POST /checkout/initiate
// Starts a checkout session over whatever is in the session cart.
func (h *CheckoutHandler) InitiateCheckout(c *gin.Context) {
	cart, err := h.hub.Cart(middleware.GetSessionID(c))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load cart")
		return
	}

	session, err := h.checkout.InitiateCheckout(cart.GetCart().Items)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, "Failed to start checkout")
		return
	}

	utils.SuccessResponse(c, gin.H{"checkout": session})
}

// POST /checkout/validate-address
func (h *CheckoutHandler) ValidateAddress(c *gin.Context) {
	var address models.Address
	if err := c.ShouldBindJSON(&address); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"result": h.checkout.ValidateAddress(address)})
}

// POST /checkout/shipping
func (h *CheckoutHandler) CalculateShipping(c *gin.Context) {
	var address models.Address
	if err := c.ShouldBindJSON(&address); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"shippingCost": h.checkout.CalculateShipping(address)})
}

// POST /checkout/submit
func (h *CheckoutHandler) SubmitOrder(c *gin.Context) {
	var req services.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	cart, err := h.hub.Cart(middleware.GetSessionID(c))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load cart")
		return
	}

	// An empty items payload means "order the current cart".
	if len(req.Items) == 0 {
		req.Items = cart.GetCart().Items
	}

	order, err := h.checkout.SubmitOrder(c.Request.Context(), &req, cart)
	if err != nil {
		var orderErr *services.OrderValidationError
		var addressErr *services.AddressValidationError
		switch {
		case errors.As(err, &orderErr):
			utils.BadRequestResponse(c, "Order validation failed", orderErr.Messages)
		case errors.As(err, &addressErr):
			utils.BadRequestResponse(c, "Address validation failed", addressErr.Messages)
		default:
			utils.InternalErrorResponse(c, "Failed to place order")
		}
		return
	}

	utils.CreatedResponse(c, gin.H{"order": order})
}

// GET /orders
func (h *CheckoutHandler) GetOrders(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"orders": h.checkout.GetOrders(c.Request.Context())})
}

// GET /orders/:id
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	order := h.checkout.GetOrderByID(c.Param("id"))
	if order == nil {
		utils.NotFoundResponse(c, "Order")
		return
	}
	utils.SuccessResponse(c, gin.H{"order": order})
}
