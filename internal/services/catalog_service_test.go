// internal/services/catalog_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	catalog *CatalogService
	clock   time.Time
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.catalog = NewCatalogService(testLogger())
	suite.clock = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	suite.catalog.now = func() time.Time { return suite.clock }
}

func (suite *CatalogServiceTestSuite) TestListProducts() {
	products := suite.catalog.ListProducts()
	suite.Require().Len(products, 8)
	assert.Equal(suite.T(), "prod-1", products[0].ID)
}

func (suite *CatalogServiceTestSuite) TestGetByID() {
	product := suite.catalog.GetByID("prod-1")
	suite.Require().NotNil(product)
	assert.Equal(suite.T(), "Aurora 3-Seater Fabric Sofa", product.Name)
	assert.Equal(suite.T(), 38000.0, product.EffectivePrice())

	assert.Nil(suite.T(), suite.catalog.GetByID("prod-999"))
}

func (suite *CatalogServiceTestSuite) TestGetDetailByID() {
	detail := suite.catalog.GetDetailByID("prod-1")
	suite.Require().NotNil(detail)
	assert.Equal(suite.T(), "Aurora 3-Seater Fabric Sofa", detail.Name)
	assert.NotEmpty(suite.T(), detail.Images)

	// prod-5 exists but carries no extended record.
	assert.Nil(suite.T(), suite.catalog.GetDetailByID("prod-5"))
}

func (suite *CatalogServiceTestSuite) TestGetByCategoryIsCaseInsensitive() {
	sofas := suite.catalog.GetByCategory("sOfAs")
	suite.Require().Len(sofas, 2)
	assert.Equal(suite.T(), "prod-1", sofas[0].ID)
	assert.Equal(suite.T(), "prod-6", sofas[1].ID)

	assert.Empty(suite.T(), suite.catalog.GetByCategory("garden"))
}

func (suite *CatalogServiceTestSuite) TestSearch() {
	results := suite.catalog.Search("teak")
	suite.Require().Len(results, 1)
	assert.Equal(suite.T(), "prod-8", results[0].ID)

	assert.Empty(suite.T(), suite.catalog.Search(""))
	assert.Empty(suite.T(), suite.catalog.Search("   "))
	assert.Empty(suite.T(), suite.catalog.Search("hovercraft"))
}

func (suite *CatalogServiceTestSuite) TestGetFeaturedExcludesOutOfStock() {
	featured := suite.catalog.GetFeatured(3)
	suite.Require().Len(featured, 3)

	// prod-6 has the second-highest rating but is out of stock.
	assert.Equal(suite.T(), "prod-3", featured[0].ID)
	for _, p := range featured {
		assert.True(suite.T(), p.InStock)
		assert.NotEqual(suite.T(), "prod-6", p.ID)
	}
}

func (suite *CatalogServiceTestSuite) TestGetFeaturedLimitBeyondDataset() {
	featured := suite.catalog.GetFeatured(50)
	assert.Len(suite.T(), featured, 7)
}

func (suite *CatalogServiceTestSuite) TestListCategories() {
	categories := suite.catalog.ListCategories()
	suite.Require().Len(categories, 6)
	assert.Equal(suite.T(), "Sofas", categories[0].Name)
}

func (suite *CatalogServiceTestSuite) TestLookupsReturnCopies() {
	first := suite.catalog.GetByID("prod-1")
	suite.Require().NotNil(first)
	*first.DiscountPrice = 1
	first.Name = "tampered"

	second := suite.catalog.GetByID("prod-1")
	assert.Equal(suite.T(), 38000.0, *second.DiscountPrice)
	assert.Equal(suite.T(), "Aurora 3-Seater Fabric Sofa", second.Name)
}

func (suite *CatalogServiceTestSuite) TestCacheEntriesExpire() {
	suite.catalog.GetByID("prod-1")
	_, ok := suite.catalog.cached("product:prod-1")
	assert.True(suite.T(), ok)

	suite.clock = suite.clock.Add(6 * time.Minute)
	_, ok = suite.catalog.cached("product:prod-1")
	assert.False(suite.T(), ok)

	// Category listings use the shorter window.
	suite.catalog.ListCategories()
	suite.clock = suite.clock.Add(3 * time.Minute)
	_, ok = suite.catalog.cached("categories")
	assert.False(suite.T(), ok)
}

func (suite *CatalogServiceTestSuite) TestClearCache() {
	suite.catalog.GetByID("prod-1")
	suite.catalog.ListProducts()
	suite.catalog.ClearCache()

	_, ok := suite.catalog.cached("product:prod-1")
	assert.False(suite.T(), ok)
	_, ok = suite.catalog.cached("products")
	assert.False(suite.T(), ok)
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
