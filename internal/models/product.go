// internal/models/product.go
package models

import "time"

type Product struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription"`
	Price            float64   `json:"price"`
	DiscountPrice    *float64  `json:"discountPrice,omitempty"`
	DiscountPercent  *int      `json:"discountPercent,omitempty"`
	Category         string    `json:"category"`
	Subcategory      string    `json:"subcategory,omitempty"`
	Image            string    `json:"image"`
	Rating           float64   `json:"rating"`
	RatingCount      int       `json:"ratingCount"`
	InStock          bool      `json:"inStock"`
	SKU              string    `json:"sku"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// EffectivePrice is the unit price a buyer pays right now: the discount
// price when one is set, the base price otherwise.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

type Dimensions struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

type ProductDetail struct {
	Product
	Images         []string          `json:"images"`
	Materials      []string          `json:"materials"`
	Dimensions     Dimensions        `json:"dimensions"`
	Specifications map[string]string `json:"specifications"`
	DeliveryInfo   string            `json:"deliveryInfo"`
	WarrantyInfo   string            `json:"warrantyInfo"`
}

// Summary maps a detail record back to its base product with a fixed
// field list, so the two shapes cannot drift apart silently.
func (d *ProductDetail) Summary() Product {
	return Product{
		ID:               d.ID,
		Name:             d.Name,
		Slug:             d.Slug,
		Description:      d.Description,
		ShortDescription: d.ShortDescription,
		Price:            d.Price,
		DiscountPrice:    d.DiscountPrice,
		DiscountPercent:  d.DiscountPercent,
		Category:         d.Category,
		Subcategory:      d.Subcategory,
		Image:            d.Image,
		Rating:           d.Rating,
		RatingCount:      d.RatingCount,
		InStock:          d.InStock,
		SKU:              d.SKU,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image,omitempty"`
}
