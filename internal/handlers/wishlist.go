// internal/handlers/wishlist.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/urbannest/storefront/internal/middleware"
	"github.com/urbannest/storefront/internal/services"
	"github.com/urbannest/storefront/internal/utils"
)

type WishlistHandler struct {
	hub *services.Hub
}

func NewWishlistHandler(hub *services.Hub) *WishlistHandler {
	return &WishlistHandler{hub: hub}
}

func (h *WishlistHandler) wishlist(c *gin.Context) (*services.WishlistService, bool) {
	wishlist, err := h.hub.Wishlist(middleware.GetSessionID(c))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load wishlist")
		return nil, false
	}
	return wishlist, true
}

// GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	wishlist, ok := h.wishlist(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, gin.H{
		"products": wishlist.GetWishlist(),
		"count":    wishlist.ItemCount(),
	})
}

type toggleRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// POST /wishlist/toggle
func (h *WishlistHandler) ToggleItem(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	wishlist, ok := h.wishlist(c)
	if !ok {
		return
	}

	added, err := wishlist.ToggleItem(req.ProductID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to update wishlist")
		return
	}
	utils.SuccessResponse(c, gin.H{"added": added, "count": wishlist.ItemCount()})
}

// DELETE /wishlist/items/:id
func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	wishlist, ok := h.wishlist(c)
	if !ok {
		return
	}

	if err := wishlist.RemoveItem(c.Param("id")); err != nil {
		utils.InternalErrorResponse(c, "Failed to update wishlist")
		return
	}
	utils.SuccessResponse(c, gin.H{"count": wishlist.ItemCount()})
}

// POST /wishlist/items/:id/move-to-cart
func (h *WishlistHandler) MoveToCart(c *gin.Context) {
	wishlist, ok := h.wishlist(c)
	if !ok {
		return
	}

	if err := wishlist.MoveToCart(c.Param("id")); err != nil {
		switch {
		case errors.Is(err, services.ErrNotInWishlist):
			utils.NotFoundResponse(c, "Wishlist item")
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "Product")
		default:
			utils.InternalErrorResponse(c, "Failed to move item to cart")
		}
		return
	}
	utils.SuccessResponse(c, gin.H{"count": wishlist.ItemCount()})
}

// DELETE /wishlist
func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	wishlist, ok := h.wishlist(c)
	if !ok {
		return
	}

	if err := wishlist.ClearWishlist(); err != nil {
		utils.InternalErrorResponse(c, "Failed to clear wishlist")
		return
	}
	utils.SuccessResponse(c, gin.H{"count": 0})
}
