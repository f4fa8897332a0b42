// internal/catalog/data.go
package catalog

import (
	"time"

	"github.com/urbannest/storefront/internal/models"
)

// Static product dataset. The storefront treats this as a read-only
// external collaborator keyed by product id.

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

var catalogedAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

var categories = []models.Category{
	{ID: "sofas", Name: "Sofas", Slug: "sofas", Image: "/images/categories/sofas.jpg"},
	{ID: "beds", Name: "Beds", Slug: "beds", Image: "/images/categories/beds.jpg"},
	{ID: "dining", Name: "Dining", Slug: "dining", Image: "/images/categories/dining.jpg"},
	{ID: "chairs", Name: "Chairs", Slug: "chairs", Image: "/images/categories/chairs.jpg"},
	{ID: "storage", Name: "Storage", Slug: "storage", Image: "/images/categories/storage.jpg"},
	{ID: "decor", Name: "Decor", Slug: "decor", Image: "/images/categories/decor.jpg"},
}

var products = []models.Product{
	{
		ID:               "prod-1",
		Name:             "Aurora 3-Seater Fabric Sofa",
		Slug:             "aurora-3-seater-fabric-sofa",
		Description:      "A deep-seated three-seater upholstered in stain-resistant linen blend fabric over a solid sheesham frame. High-density foam cushions keep their shape for years.",
		ShortDescription: "Deep-seated linen sofa on a sheesham frame",
		Price:            45000,
		DiscountPrice:    fptr(38000),
		DiscountPercent:  iptr(15),
		Category:         "Sofas",
		Subcategory:      "Fabric Sofas",
		Image:            "/images/products/aurora-sofa.jpg",
		Rating:           4.6,
		RatingCount:      182,
		InStock:          true,
		SKU:              "UN-SOF-001",
		CreatedAt:        catalogedAt,
		UpdatedAt:        catalogedAt,
	},
	{
		ID:               "prod-2",
		Name:             "Hudson Queen Bed with Storage",
		Slug:             "hudson-queen-bed-storage",
		Description:      "Queen-size bed in engineered wood with a walnut finish and hydraulic under-bed storage. Headboard padded in vegan leather.",
		ShortDescription: "Queen bed with hydraulic storage",
		Price:            52000,
		DiscountPrice:    fptr(46500),
		DiscountPercent:  iptr(10),
		Category:         "Beds",
		Subcategory:      "Queen Beds",
		Image:            "/images/products/hudson-bed.jpg",
		Rating:           4.4,
		RatingCount:      96,
		InStock:          true,
		SKU:              "UN-BED-002",
		CreatedAt:        catalogedAt,
		UpdatedAt:        catalogedAt,
	},
	{
		ID:               "prod-3",
		Name:             "Willow 6-Seater Dining Set",
		Slug:             "willow-6-seater-dining-set",
		Description:      "Six-seater dining set in solid mango wood with a natural matte finish. Chairs come with woven cane backrests and cushioned seats.",
		ShortDescription: "Solid mango wood dining set for six",
		Price:            68000,
		Category:         "Dining",
		Subcategory:      "Dining Sets",
		Image:            "/images/products/willow-dining.jpg",
		Rating:           4.8,
		RatingCount:      143,
		InStock:          true,
		SKU:              "UN-DIN-003",
		CreatedAt:        catalogedAt,
		UpdatedAt:        catalogedAt,
	},
	{
		ID:               "prod-4",
		Name:             "Nest Lounge Chair",
		Slug:             "nest-lounge-chair",
		Description:      "Mid-century lounge chair with a moulded plywood shell, bouclé upholstery and splayed oak legs.",
		ShortDescription: "Mid-century bouclé lounge chair",
		Price:            18500,
		DiscountPrice:    fptr(15900),
		DiscountPercent:  iptr(14),
		Category:         "Chairs",
		Subcategory:      "Lounge Chairs",
		Image:            "/images/products/nest-chair.jpg",
		Rating:           4.2,
		RatingCount:      64,
		InStock:          true,
		SKU:              "UN-CHR-004",
		CreatedAt:        catalogedAt,
		UpdatedAt:        catalogedAt,
	},
	{
		ID:               "prod-5",
		Name:             "Loft Bookshelf",
		Slug:             "loft-bookshelf",
		Description:      "Five-tier open bookshelf in powder-coated steel and acacia wood, wall-anchored for stability.",
		ShortDescription: "Five-tier steel and acacia bookshelf",
		Price:            14000,
		Category:         "Storage",
		Subcategory:      "Shelving",
		Image:            "/images/products/loft-bookshelf.jpg",
		Rating:           4.0,
		RatingCount:      38,
		InStock:          true,
		SKU:              "UN-STO-005",
		CreatedAt:        catalogedAt,
		UpdatedAt:        catalogedAt,
	},
	{
		ID:               "prod-6",
		Name:             "Marlow Recliner",
		Slug:             "marlow-recliner",
		Description:      "Single-seater manual recliner in breathable leatherette with a 160-degree recline and padded armrests.",
		ShortDescription: "Manual recliner in leatherette",
		Price:            32000,
		DiscountPrice:    fptr(27500),
		DiscountPercent:  iptr(14),
		Category:         "Sofas",
		Subcategory:      "Recliners",
		Image:            "/images/products/marlow-recliner.jpg",
		Rating:           4.5,
		RatingCount:      211,
		InStock:          false,
		SKU:              "UN-SOF-006",
		CreatedAt:        catalogedAt,
		UpdatedAt:        catalogedAt,
	},
	{
		ID:               "prod-7",
		Name:             "Ember Ceramic Table Lamp",
		Slug:             "ember-ceramic-table-lamp",
		Description:      "Hand-glazed ceramic table lamp with a cotton drum shade and warm-white bulb included.",
		ShortDescription: "Hand-glazed ceramic table lamp",
		Price:            4200,
		Category:         "Decor",
		Subcategory:      "Lighting",
		Image:            "/images/products/ember-lamp.jpg",
		Rating:           3.9,
		RatingCount:      27,
		InStock:          true,
		SKU:              "UN-DEC-007",
		CreatedAt:        catalogedAt,
		UpdatedAt:        catalogedAt,
	},
	{
		ID:               "prod-8",
		Name:             "Cove King Bed",
		Slug:             "cove-king-bed",
		Description:      "King-size platform bed in solid teak with a floating frame profile and slatted base. No box spring needed.",
		ShortDescription: "Solid teak king platform bed",
		Price:            89000,
		Category:         "Beds",
		Subcategory:      "King Beds",
		Image:            "/images/products/cove-bed.jpg",
		Rating:           0,
		RatingCount:      0,
		InStock:          true,
		SKU:              "UN-BED-008",
		CreatedAt:        catalogedAt,
		UpdatedAt:        catalogedAt,
	},
}

var details = map[string]models.ProductDetail{
	"prod-1": {
		Images: []string{
			"/images/products/aurora-sofa.jpg",
			"/images/products/aurora-sofa-side.jpg",
			"/images/products/aurora-sofa-detail.jpg",
		},
		Materials:  []string{"Linen blend fabric", "Solid sheesham wood", "High-density foam"},
		Dimensions: models.Dimensions{Width: 210, Depth: 92, Height: 85, Unit: "cm"},
		Specifications: map[string]string{
			"Seating capacity": "3",
			"Frame warranty":   "36 months",
			"Assembly":         "Carpenter assembly included",
		},
		DeliveryInfo: "Delivered within 7-10 business days. Free installation.",
		WarrantyInfo: "3 years on frame, 1 year on upholstery.",
	},
	"prod-2": {
		Images:     []string{"/images/products/hudson-bed.jpg", "/images/products/hudson-bed-open.jpg"},
		Materials:  []string{"Engineered wood", "Vegan leather", "Hydraulic lift hardware"},
		Dimensions: models.Dimensions{Width: 165, Depth: 215, Height: 110, Unit: "cm"},
		Specifications: map[string]string{
			"Mattress size":    "Queen (60 x 78 in)",
			"Storage type":     "Hydraulic",
			"Recommended load": "250 kg",
		},
		DeliveryInfo: "Delivered within 10-12 business days.",
		WarrantyInfo: "2 years on frame and hydraulics.",
	},
	"prod-3": {
		Images:     []string{"/images/products/willow-dining.jpg", "/images/products/willow-dining-chair.jpg"},
		Materials:  []string{"Solid mango wood", "Natural cane", "Cotton cushioning"},
		Dimensions: models.Dimensions{Width: 180, Depth: 90, Height: 76, Unit: "cm"},
		Specifications: map[string]string{
			"Seating capacity": "6",
			"Finish":           "Natural matte",
		},
		DeliveryInfo: "Delivered within 7-10 business days. Free installation.",
		WarrantyInfo: "3 years on wood structure.",
	},
	"prod-4": {
		Images:     []string{"/images/products/nest-chair.jpg"},
		Materials:  []string{"Moulded plywood", "Bouclé fabric", "Solid oak"},
		Dimensions: models.Dimensions{Width: 72, Depth: 80, Height: 78, Unit: "cm"},
		Specifications: map[string]string{
			"Max load": "120 kg",
		},
		DeliveryInfo: "Ships fully assembled within 5-7 business days.",
		WarrantyInfo: "1 year manufacturing warranty.",
	},
}

// Products returns the full dataset in its fixed underlying order.
func Products() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// Detail returns the detail record for id with the base product fields
// filled in, or false when either half is missing.
func Detail(id string) (models.ProductDetail, bool) {
	d, ok := details[id]
	if !ok {
		return models.ProductDetail{}, false
	}
	for i := range products {
		if products[i].ID == id {
			d.Product = products[i]
			return d, true
		}
	}
	return models.ProductDetail{}, false
}

// Categories returns the fixed enumerable category set.
func Categories() []models.Category {
	out := make([]models.Category, len(categories))
	copy(out, categories)
	return out
}
