// internal/services/wishlist_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/urbannest/storefront/internal/session"
	"github.com/urbannest/storefront/internal/store"
)

type WishlistServiceTestSuite struct {
	suite.Suite
	store    *store.MemoryStore
	catalog  *CatalogService
	cart     *CartService
	wishlist *WishlistService
}

func (suite *WishlistServiceTestSuite) SetupTest() {
	suite.store = store.NewMemoryStore()
	suite.catalog = NewCatalogService(testLogger())

	cart, err := NewCartService(suite.catalog, suite.store, session.Static("sess-1"), testLogger())
	suite.Require().NoError(err)
	suite.cart = cart

	wishlist, err := NewWishlistService(suite.catalog, cart, suite.store, session.Static("sess-1"), testLogger())
	suite.Require().NoError(err)
	suite.wishlist = wishlist
}

func (suite *WishlistServiceTestSuite) TestAddIsIdempotent() {
	suite.Require().NoError(suite.wishlist.AddItem("prod-1"))
	suite.Require().NoError(suite.wishlist.AddItem("prod-1"))

	assert.Equal(suite.T(), 1, suite.wishlist.ItemCount())
	assert.True(suite.T(), suite.wishlist.IsInWishlist("prod-1"))
}

func (suite *WishlistServiceTestSuite) TestToggleTwiceRestoresState() {
	added, err := suite.wishlist.ToggleItem("prod-2")
	suite.Require().NoError(err)
	assert.True(suite.T(), added)
	assert.True(suite.T(), suite.wishlist.IsInWishlist("prod-2"))

	added, err = suite.wishlist.ToggleItem("prod-2")
	suite.Require().NoError(err)
	assert.False(suite.T(), added)
	assert.False(suite.T(), suite.wishlist.IsInWishlist("prod-2"))
	assert.Equal(suite.T(), 0, suite.wishlist.ItemCount())
}

func (suite *WishlistServiceTestSuite) TestRemoveAbsentIsNoOp() {
	suite.Require().NoError(suite.wishlist.RemoveItem("prod-999"))
	assert.Equal(suite.T(), 0, suite.wishlist.ItemCount())
}

func (suite *WishlistServiceTestSuite) TestGetWishlistRehydratesFromCatalog() {
	suite.Require().NoError(suite.wishlist.AddItem("prod-4"))

	products := suite.wishlist.GetWishlist()
	suite.Require().Len(products, 1)
	assert.Equal(suite.T(), "Nest Lounge Chair", products[0].Name)
	assert.Equal(suite.T(), 15900.0, products[0].EffectivePrice())
}

func (suite *WishlistServiceTestSuite) TestGetWishlistDropsUnresolvableReferences() {
	suite.Require().NoError(suite.wishlist.AddItem("prod-1"))
	suite.Require().NoError(suite.wishlist.AddItem("ghost-9"))

	products := suite.wishlist.GetWishlist()
	suite.Require().Len(products, 1)
	assert.Equal(suite.T(), "prod-1", products[0].ID)
	// The stored reference itself is kept.
	assert.Equal(suite.T(), 2, suite.wishlist.ItemCount())
}

func (suite *WishlistServiceTestSuite) TestMoveToCartAddsOneUnitThenRemoves() {
	suite.Require().NoError(suite.wishlist.AddItem("prod-4"))

	suite.Require().NoError(suite.wishlist.MoveToCart("prod-4"))

	cart := suite.cart.GetCart()
	suite.Require().Len(cart.Items, 1)
	assert.Equal(suite.T(), "prod-4", cart.Items[0].ProductID)
	assert.Equal(suite.T(), 1, cart.Items[0].Quantity)
	assert.Equal(suite.T(), 15900.0, cart.Items[0].PriceAtAdd)
	assert.False(suite.T(), suite.wishlist.IsInWishlist("prod-4"))
}

func (suite *WishlistServiceTestSuite) TestMoveToCartFailureKeepsWishlist() {
	suite.Require().NoError(suite.wishlist.AddItem("ghost-9"))

	err := suite.wishlist.MoveToCart("ghost-9")
	assert.ErrorIs(suite.T(), err, ErrProductNotFound)
	assert.True(suite.T(), suite.wishlist.IsInWishlist("ghost-9"))
	assert.Empty(suite.T(), suite.cart.GetCart().Items)
}

func (suite *WishlistServiceTestSuite) TestMoveToCartNotInWishlist() {
	err := suite.wishlist.MoveToCart("prod-1")
	assert.ErrorIs(suite.T(), err, ErrNotInWishlist)
}

func (suite *WishlistServiceTestSuite) TestSnapshotSurvivesReload() {
	suite.Require().NoError(suite.wishlist.AddItem("prod-1"))
	suite.Require().NoError(suite.wishlist.AddItem("prod-3"))

	reloaded, err := NewWishlistService(suite.catalog, suite.cart, suite.store, session.Static("sess-1"), testLogger())
	suite.Require().NoError(err)

	assert.Equal(suite.T(), 2, reloaded.ItemCount())
	assert.True(suite.T(), reloaded.IsInWishlist("prod-1"))
	assert.True(suite.T(), reloaded.IsInWishlist("prod-3"))
}

func (suite *WishlistServiceTestSuite) TestCorruptedSnapshotStartsFresh() {
	suite.Require().NoError(suite.store.Set("wishlist:sess-2", "!!"))

	wishlist, err := NewWishlistService(suite.catalog, suite.cart, suite.store, session.Static("sess-2"), testLogger())
	suite.Require().NoError(err)
	assert.Equal(suite.T(), 0, wishlist.ItemCount())
}

func (suite *WishlistServiceTestSuite) TestClearWishlist() {
	suite.Require().NoError(suite.wishlist.AddItem("prod-1"))
	suite.Require().NoError(suite.wishlist.AddItem("prod-2"))

	suite.Require().NoError(suite.wishlist.ClearWishlist())
	assert.Equal(suite.T(), 0, suite.wishlist.ItemCount())
}

func TestWishlistServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WishlistServiceTestSuite))
}
