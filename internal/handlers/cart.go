// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/urbannest/storefront/internal/middleware"
	"github.com/urbannest/storefront/internal/services"
	"github.com/urbannest/storefront/internal/utils"
)

type CartHandler struct {
	hub *services.Hub
}

func NewCartHandler(hub *services.Hub) *CartHandler {
	return &CartHandler{hub: hub}
}

func (h *CartHandler) cart(c *gin.Context) (*services.CartService, bool) {
	cart, err := h.hub.Cart(middleware.GetSessionID(c))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load cart")
		return nil, false
	}
	return cart, true
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, gin.H{"cart": cart.GetCart()})
}

// GET /cart/count
func (h *CartHandler) GetItemCount(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, gin.H{"count": cart.GetItemCount(), "total": cart.GetTotal()})
}

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, ok := h.cart(c)
	if !ok {
		return
	}

	updated, err := cart.AddItem(req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			utils.BadRequestResponse(c, err.Error(), nil)
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "Product")
		default:
			utils.InternalErrorResponse(c, "Failed to add item to cart")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{"cart": updated})
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// PUT /cart/items/:id
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	cart, ok := h.cart(c)
	if !ok {
		return
	}

	updated, err := cart.UpdateQuantity(c.Param("id"), req.Quantity)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to update cart")
		return
	}
	utils.SuccessResponse(c, gin.H{"cart": updated})
}

// DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}

	updated, err := cart.RemoveItem(c.Param("id"))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to update cart")
		return
	}
	utils.SuccessResponse(c, gin.H{"cart": updated})
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}

	updated, err := cart.ClearCart()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to clear cart")
		return
	}
	utils.SuccessResponse(c, gin.H{"cart": updated})
}
