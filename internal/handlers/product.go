// internal/handlers/product.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/urbannest/storefront/internal/services"
	"github.com/urbannest/storefront/internal/utils"
)

type ProductHandler struct {
	catalog *services.CatalogService
}

func NewProductHandler(catalog *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// GET /products?category=&q=
func (h *ProductHandler) GetProducts(c *gin.Context) {
	if query := c.Query("q"); query != "" {
		utils.SuccessResponse(c, gin.H{"products": h.catalog.Search(query)})
		return
	}
	if category := c.Query("category"); category != "" {
		utils.SuccessResponse(c, gin.H{"products": h.catalog.GetByCategory(category)})
		return
	}
	utils.SuccessResponse(c, gin.H{"products": h.catalog.ListProducts()})
}

// GET /products/featured?limit=
func (h *ProductHandler) GetFeaturedProducts(c *gin.Context) {
	limit := 8
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	utils.SuccessResponse(c, gin.H{"products": h.catalog.GetFeatured(limit)})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product := h.catalog.GetByID(c.Param("id"))
	if product == nil {
		utils.NotFoundResponse(c, "Product")
		return
	}
	utils.SuccessResponse(c, gin.H{"product": product})
}

// GET /products/:id/detail
func (h *ProductHandler) GetProductDetail(c *gin.Context) {
	detail := h.catalog.GetDetailByID(c.Param("id"))
	if detail == nil {
		utils.NotFoundResponse(c, "Product")
		return
	}
	utils.SuccessResponse(c, gin.H{"product": detail})
}

// GET /categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"categories": h.catalog.ListCategories()})
}
