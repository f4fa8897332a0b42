// internal/services/catalog_service.go
package services

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/urbannest/storefront/internal/catalog"
	"github.com/urbannest/storefront/internal/models"
)

// CatalogService is the read-only accessor over the product dataset.
// Every read path is memoized for a bounded window; entries expire by
// age only, since the dataset never changes underneath the cache.
type CatalogService struct {
	mtx       sync.RWMutex
	cache     map[string]cacheEntry
	lookupTTL time.Duration
	listTTL   time.Duration
	now       func() time.Time
	log       *logrus.Entry
}

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

func NewCatalogService(log *logrus.Entry) *CatalogService {
	return &CatalogService{
		cache:     make(map[string]cacheEntry),
		lookupTTL: 5 * time.Minute,
		listTTL:   2 * time.Minute,
		now:       time.Now,
		log:       log,
	}
}

func (s *CatalogService) cached(key string) (interface{}, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	entry, ok := s.cache[key]
	if !ok || s.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

func (s *CatalogService) memoize(key string, value interface{}, ttl time.Duration) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.cache[key] = cacheEntry{value: value, expiresAt: s.now().Add(ttl)}
}

// ClearCache drops every memoized entry. Intended for tests and
// administrative reset.
func (s *CatalogService) ClearCache() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.cache = make(map[string]cacheEntry)
}

// ListProducts returns the whole dataset in its fixed order.
func (s *CatalogService) ListProducts() []models.Product {
	key := "products"
	if v, ok := s.cached(key); ok {
		return copyProducts(v.([]models.Product))
	}
	results := catalog.Products()
	s.memoize(key, results, s.lookupTTL)
	return copyProducts(results)
}

// GetByID returns the product for id, or nil when unknown.
func (s *CatalogService) GetByID(id string) *models.Product {
	key := "product:" + id
	if v, ok := s.cached(key); ok {
		return copyProduct(v.(*models.Product))
	}
	var found *models.Product
	for _, p := range catalog.Products() {
		if p.ID == id {
			p := p
			found = &p
			break
		}
	}
	s.memoize(key, found, s.lookupTTL)
	return copyProduct(found)
}

// GetDetailByID returns the extended detail record for id, or nil.
func (s *CatalogService) GetDetailByID(id string) *models.ProductDetail {
	key := "detail:" + id
	if v, ok := s.cached(key); ok {
		return copyDetail(v.(*models.ProductDetail))
	}
	var found *models.ProductDetail
	if d, ok := catalog.Detail(id); ok {
		found = &d
	}
	s.memoize(key, found, s.lookupTTL)
	return copyDetail(found)
}

// GetByCategory matches the category name case-insensitively. An
// unknown category yields an empty list, not an error.
func (s *CatalogService) GetByCategory(category string) []models.Product {
	normalized := strings.ToLower(strings.TrimSpace(category))
	key := "category:" + normalized
	if v, ok := s.cached(key); ok {
		return copyProducts(v.([]models.Product))
	}
	results := []models.Product{}
	for _, p := range catalog.Products() {
		if strings.ToLower(p.Category) == normalized {
			results = append(results, p)
		}
	}
	s.memoize(key, results, s.lookupTTL)
	return copyProducts(results)
}

// Search does a case-insensitive substring match over name,
// descriptions and category fields. An empty or whitespace-only query
// yields an empty list rather than the full catalog.
func (s *CatalogService) Search(query string) []models.Product {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return []models.Product{}
	}
	key := "search:" + normalized
	if v, ok := s.cached(key); ok {
		return copyProducts(v.([]models.Product))
	}
	results := []models.Product{}
	for _, p := range catalog.Products() {
		haystack := strings.ToLower(strings.Join([]string{
			p.Name, p.Description, p.ShortDescription, p.Category, p.Subcategory,
		}, " "))
		if strings.Contains(haystack, normalized) {
			results = append(results, p)
		}
	}
	s.memoize(key, results, s.lookupTTL)
	return copyProducts(results)
}

// GetFeatured returns in-stock products by descending rating, ties kept
// in dataset order, truncated to limit.
func (s *CatalogService) GetFeatured(limit int) []models.Product {
	key := "featured:" + strconv.Itoa(limit)
	if v, ok := s.cached(key); ok {
		return copyProducts(v.([]models.Product))
	}
	results := []models.Product{}
	for _, p := range catalog.Products() {
		if p.InStock {
			results = append(results, p)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Rating > results[j].Rating
	})
	if limit >= 0 && len(results) > limit {
		results = results[:limit]
	}
	s.memoize(key, results, s.lookupTTL)
	return copyProducts(results)
}

// ListCategories returns the fixed category set. The listing is cached
// for a shorter window than product lookups.
func (s *CatalogService) ListCategories() []models.Category {
	key := "categories"
	if v, ok := s.cached(key); ok {
		return append([]models.Category(nil), v.([]models.Category)...)
	}
	results := catalog.Categories()
	s.memoize(key, results, s.listTTL)
	return append([]models.Category(nil), results...)
}

func copyProduct(p *models.Product) *models.Product {
	if p == nil {
		return nil
	}
	out := *p
	if p.DiscountPrice != nil {
		v := *p.DiscountPrice
		out.DiscountPrice = &v
	}
	if p.DiscountPercent != nil {
		v := *p.DiscountPercent
		out.DiscountPercent = &v
	}
	return &out
}

func copyProducts(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

func copyDetail(d *models.ProductDetail) *models.ProductDetail {
	if d == nil {
		return nil
	}
	out := *d
	out.Images = append([]string(nil), d.Images...)
	out.Materials = append([]string(nil), d.Materials...)
	out.Specifications = make(map[string]string, len(d.Specifications))
	for k, v := range d.Specifications {
		out.Specifications[k] = v
	}
	return &out
}
