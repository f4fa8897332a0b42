// internal/services/checkout_service_test.go
package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/urbannest/storefront/internal/models"
	"github.com/urbannest/storefront/internal/store"
)

// cartClearerSpy records whether checkout asked for the cart to be
// emptied.
type cartClearerSpy struct {
	cleared bool
}

func (c *cartClearerSpy) ClearCart() (*models.Cart, error) {
	c.cleared = true
	return &models.Cart{Items: []models.CartItem{}}, nil
}

type CheckoutServiceTestSuite struct {
	suite.Suite
	store    *store.MemoryStore
	identity *StaticIdentity
	checkout *CheckoutService
}

func (suite *CheckoutServiceTestSuite) SetupTest() {
	suite.store = store.NewMemoryStore()
	suite.identity = &StaticIdentity{}
	suite.checkout = NewCheckoutService(suite.store, suite.identity, testLogger())
	suite.checkout.now = func() time.Time {
		return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	}
}

func (suite *CheckoutServiceTestSuite) validAddress() models.Address {
	return models.Address{
		FullName: "Asha Rao",
		Line1:    "14 Lakeview Road",
		City:     "Delhi",
		State:    "Delhi",
		Pincode:  "110001",
		Phone:    "9876543210",
	}
}

func (suite *CheckoutServiceTestSuite) validContact() models.ContactInfo {
	return models.ContactInfo{
		Email: "asha@example.com",
		Phone: "9876543210",
	}
}

func (suite *CheckoutServiceTestSuite) sampleItems() []models.CartItem {
	return []models.CartItem{
		{
			ProductID:  "prod-2",
			Product:    models.Product{ID: "prod-2", Name: "Hudson Queen Bed with Storage"},
			Quantity:   2,
			PriceAtAdd: 25000,
			ItemTotal:  50000,
		},
	}
}

func (suite *CheckoutServiceTestSuite) validRequest() *SubmitOrderRequest {
	return &SubmitOrderRequest{
		Items:         suite.sampleItems(),
		Address:       suite.validAddress(),
		Contact:       suite.validContact(),
		PaymentMethod: models.PaymentMethodCOD,
	}
}

func (suite *CheckoutServiceTestSuite) TestCalculateShipping() {
	address := suite.validAddress()

	address.City = "Mumbai"
	assert.Equal(suite.T(), 0.0, suite.checkout.CalculateShipping(address))

	address.City = "  bombay "
	assert.Equal(suite.T(), 0.0, suite.checkout.CalculateShipping(address))

	address.City = "Delhi"
	assert.Equal(suite.T(), 500.0, suite.checkout.CalculateShipping(address))
}

func (suite *CheckoutServiceTestSuite) TestValidateAddressCollectsEveryViolation() {
	result := suite.checkout.ValidateAddress(models.Address{})

	assert.False(suite.T(), result.IsValid)
	assert.Len(suite.T(), result.Errors, 6)
	assert.Contains(suite.T(), result.Errors, "Full name is required")
	assert.Contains(suite.T(), result.Errors, "Pincode is required")
	assert.Contains(suite.T(), result.Errors, "Phone is required")
}

func (suite *CheckoutServiceTestSuite) TestValidateAddressPincodeFormat() {
	address := suite.validAddress()
	address.Pincode = "4110"

	result := suite.checkout.ValidateAddress(address)
	assert.False(suite.T(), result.IsValid)
	assert.Equal(suite.T(), []string{"Pincode must be exactly 6 digits"}, result.Errors)
}

func (suite *CheckoutServiceTestSuite) TestSubmitOrderComputesTotals() {
	order, err := suite.checkout.SubmitOrder(context.Background(), suite.validRequest(), nil)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), 50000.0, order.Subtotal)
	assert.Equal(suite.T(), 500.0, order.ShippingCost)
	assert.Equal(suite.T(), 50500.0, order.Total)
	assert.Equal(suite.T(), models.OrderStatusPending, order.Status)
	assert.Equal(suite.T(), models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(suite.T(), "Hudson Queen Bed with Storage", order.Items[0].ProductName)

	suite.Require().NotNil(order.EstimatedDelivery)
	assert.Equal(suite.T(), order.OrderedAt.Add(7*24*time.Hour), *order.EstimatedDelivery)
}

func (suite *CheckoutServiceTestSuite) TestOrderNumberFormatAndSequence() {
	first, err := suite.checkout.SubmitOrder(context.Background(), suite.validRequest(), nil)
	suite.Require().NoError(err)
	second, err := suite.checkout.SubmitOrder(context.Background(), suite.validRequest(), nil)
	suite.Require().NoError(err)

	assert.Regexp(suite.T(), regexp.MustCompile(`^A1F-20250310-\d{4}$`), first.OrderNumber)
	assert.Equal(suite.T(), "A1F-20250310-0001", first.OrderNumber)
	assert.Equal(suite.T(), "A1F-20250310-0002", second.OrderNumber)
	assert.NotEqual(suite.T(), first.ID, second.ID)
}

func (suite *CheckoutServiceTestSuite) TestFailedValidationDoesNotAdvanceCounter() {
	bad := suite.validRequest()
	bad.Contact = models.ContactInfo{}

	_, err := suite.checkout.SubmitOrder(context.Background(), bad, nil)
	suite.Require().Error(err)

	order, err := suite.checkout.SubmitOrder(context.Background(), suite.validRequest(), nil)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "A1F-20250310-0001", order.OrderNumber)
}

func (suite *CheckoutServiceTestSuite) TestOrderValidationAggregatesMessages() {
	req := &SubmitOrderRequest{
		Address:       suite.validAddress(),
		PaymentMethod: "wire",
	}

	_, err := suite.checkout.SubmitOrder(context.Background(), req, nil)

	var orderErr *OrderValidationError
	suite.Require().ErrorAs(err, &orderErr)
	assert.Contains(suite.T(), orderErr.Messages, "Order must contain at least one item")
	assert.Contains(suite.T(), orderErr.Messages, "Email is required")
	assert.Contains(suite.T(), orderErr.Messages, `Payment method must be "cod" or "online"`)
}

func (suite *CheckoutServiceTestSuite) TestAddressFailureCreatesNoOrder() {
	bad := suite.validRequest()
	bad.Address.Pincode = ""

	_, err := suite.checkout.SubmitOrder(context.Background(), bad, nil)

	var addressErr *AddressValidationError
	suite.Require().ErrorAs(err, &addressErr)
	assert.Contains(suite.T(), addressErr.Messages, "Pincode is required")
	assert.Empty(suite.T(), suite.checkout.loadOrders())
}

func (suite *CheckoutServiceTestSuite) TestGuestOrderCarriesNoUser() {
	order, err := suite.checkout.SubmitOrder(context.Background(), suite.validRequest(), nil)
	suite.Require().NoError(err)
	assert.Nil(suite.T(), order.UserID)
}

func (suite *CheckoutServiceTestSuite) TestSignedInOrderIsAttributed() {
	user := &models.User{ID: uuid.New(), Name: "Asha Rao", Email: "asha@example.com"}
	suite.identity.User = user

	order, err := suite.checkout.SubmitOrder(context.Background(), suite.validRequest(), nil)
	suite.Require().NoError(err)
	suite.Require().NotNil(order.UserID)
	assert.Equal(suite.T(), user.ID, *order.UserID)

	orders := suite.checkout.GetOrders(context.Background())
	suite.Require().Len(orders, 1)
	assert.Equal(suite.T(), order.OrderNumber, orders[0].OrderNumber)
}

func (suite *CheckoutServiceTestSuite) TestGuestCheckoutFlagForcesGuestOrder() {
	suite.identity.User = &models.User{ID: uuid.New()}

	req := suite.validRequest()
	req.GuestCheckout = true

	order, err := suite.checkout.SubmitOrder(context.Background(), req, nil)
	suite.Require().NoError(err)
	assert.Nil(suite.T(), order.UserID)
}

func (suite *CheckoutServiceTestSuite) TestGetOrdersForGuestIsEmpty() {
	_, err := suite.checkout.SubmitOrder(context.Background(), suite.validRequest(), nil)
	suite.Require().NoError(err)

	assert.Empty(suite.T(), suite.checkout.GetOrders(context.Background()))
}

func (suite *CheckoutServiceTestSuite) TestSubmitOrderClearsCartByDefault() {
	spy := &cartClearerSpy{}
	_, err := suite.checkout.SubmitOrder(context.Background(), suite.validRequest(), spy)
	suite.Require().NoError(err)
	assert.True(suite.T(), spy.cleared)
}

func (suite *CheckoutServiceTestSuite) TestBuyNowKeepsCart() {
	spy := &cartClearerSpy{}
	keep := false

	req := suite.validRequest()
	req.ClearCart = &keep

	_, err := suite.checkout.SubmitOrder(context.Background(), req, spy)
	suite.Require().NoError(err)
	assert.False(suite.T(), spy.cleared)
}

func (suite *CheckoutServiceTestSuite) TestGetOrderByIDMatchesIDAndNumber() {
	order, err := suite.checkout.SubmitOrder(context.Background(), suite.validRequest(), nil)
	suite.Require().NoError(err)

	byID := suite.checkout.GetOrderByID(order.ID)
	suite.Require().NotNil(byID)
	assert.Equal(suite.T(), order.OrderNumber, byID.OrderNumber)

	byNumber := suite.checkout.GetOrderByID(order.OrderNumber)
	suite.Require().NotNil(byNumber)
	assert.Equal(suite.T(), order.ID, byNumber.ID)

	assert.Nil(suite.T(), suite.checkout.GetOrderByID("A1F-19700101-9999"))
}

func (suite *CheckoutServiceTestSuite) TestOrderLogSurvivesReload() {
	order, err := suite.checkout.SubmitOrder(context.Background(), suite.validRequest(), nil)
	suite.Require().NoError(err)

	reloaded := NewCheckoutService(suite.store, suite.identity, testLogger())
	found := reloaded.GetOrderByID(order.OrderNumber)
	suite.Require().NotNil(found)
	assert.Equal(suite.T(), order.Total, found.Total)
}

func (suite *CheckoutServiceTestSuite) TestInitiateCheckoutEmptyCart() {
	_, err := suite.checkout.InitiateCheckout(nil)
	assert.ErrorIs(suite.T(), err, ErrEmptyCart)
}

func (suite *CheckoutServiceTestSuite) TestInitiateCheckoutDeepCopiesItems() {
	items := suite.sampleItems()

	session, err := suite.checkout.InitiateCheckout(items)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), 50000.0, session.Subtotal)
	assert.Equal(suite.T(), 0.0, session.ShippingCost)
	assert.Equal(suite.T(), 50000.0, session.Total)

	items[0].Quantity = 99
	assert.Equal(suite.T(), 2, session.Items[0].Quantity)
}

func TestCheckoutServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutServiceTestSuite))
}
