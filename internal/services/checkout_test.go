package service_test

import (
	"context"
	"testing"

	"github.com/discool/storefront/internal/config"
	appErrors "github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/models"
	repository "github.com/discool/storefront/internal/repositories"
	"github.com/discool/storefront/internal/repositories/mocks"
	service "github.com/discool/storefront/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	products  *mocks.ProductRepository
	addresses *mocks.AddressRepository
	carts     *mocks.BackendCartRepository
	orders    *mocks.OrderRepository
	service   service.CheckoutService
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	f := &checkoutFixture{
		products:  new(mocks.ProductRepository),
		addresses: new(mocks.AddressRepository),
		carts:     new(mocks.BackendCartRepository),
		orders:    new(mocks.OrderRepository),
	}

	coupons, err := repository.NewStaticCouponRepo(config.DefaultCoupons())
	require.NoError(t, err)

	stock := service.NewStockVerifier(f.products, 4)
	shipping := service.NewShippingQuoter(config.Shipping{Tiers: []config.ShippingTier{
		{ID: "economico", Name: "Econômico", FloorPrice: 12, EtaDays: 10},
		{ID: "padrao", Name: "Padrão", FloorPrice: 20, EtaDays: 6},
		{ID: "expresso", Name: "Expresso", FloorPrice: 40, EtaDays: 2},
	}})
	assembler := service.NewOrderAssembler(stock, f.carts, f.orders, service.NewNotificationService(nil))

	f.service = service.NewCheckoutService(stock, shipping, service.NewCouponValidator(coupons), f.addresses, assembler)

	return f
}

func loggedInSession(t *testing.T) *models.Session {
	t.Helper()

	session := models.NewSession("s-checkout")
	session.Auth = &models.AuthInfo{Token: "tok", CustomerID: "c1", Name: "Ana Souza", Email: "ana@discool.com.br"}
	session.Cart = cartWith(t, line("1", "Produto X", 100, 2))

	return session
}

var homeAddress = []models.Address{
	{ID: "a0", Street: "Rua Augusta", Zip: "01305-000"},
	{ID: "a1", Street: "Av. Paulista", Zip: "01310-100", IsDefault: true},
}

func TestCheckoutService_Proceed(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Enters Contact And Address", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)
		f.products.On("GetProduct", mock.Anything, "1").Return(&models.Product{ID: "1", Name: "Produto X", Stock: 5}, nil).Once()
		f.addresses.On("ListAddresses", mock.Anything, "tok").Return(homeAddress, nil).Once()

		// Act
		view, err := f.service.Proceed(ctx, session)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.StepContactAndAddress, view.Step)
		assert.Equal(t, "a1", view.SelectedAddressID, "default address preselected")
		assert.Equal(t, "Ana Souza", view.Contact.Name)
		require.NotNil(t, view.Shipping)
		assert.Equal(t, "padrao", view.Shipping.SelectedID)
		assert.True(t, decimal.NewFromInt(220).Equal(view.Summary.Total))
		require.NotNil(t, view.Stock)
		assert.True(t, view.Stock.AllAvailable)
		assert.NotEmpty(t, session.Checkout.AttemptID)
		f.products.AssertExpectations(t)
		f.addresses.AssertExpectations(t)
	})

	t.Run("Failure - Empty Cart Stays In Cart", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)
		session.Cart = models.Cart{}

		// Act
		view, err := f.service.Proceed(ctx, session)

		// Assert
		assert.Nil(t, view)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
		assert.Equal(t, models.StepCart, session.Checkout.Step)
		f.products.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
		f.addresses.AssertNotCalled(t, "ListAddresses", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Logged Out", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)
		session.Auth = nil

		// Act
		_, err := f.service.Proceed(ctx, session)

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeUnauthorized))
		assert.Equal(t, models.StepCart, session.Checkout.Step)
	})

	t.Run("Failure - Address Load Fails", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)
		f.products.On("GetProduct", mock.Anything, "1").Return(&models.Product{ID: "1", Stock: 5}, nil).Maybe()
		f.addresses.On("ListAddresses", mock.Anything, "tok").Return(nil, appErrors.NetworkError(context.DeadlineExceeded)).Once()

		// Act
		_, err := f.service.Proceed(ctx, session)

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNetwork))
		assert.Equal(t, models.StepCart, session.Checkout.Step)
	})
}

func TestCheckoutService_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	advance := func(t *testing.T, f *checkoutFixture, session *models.Session) {
		t.Helper()

		f.products.On("GetProduct", mock.Anything, "1").Return(&models.Product{ID: "1", Name: "Produto X", Stock: 5}, nil).Once()
		f.addresses.On("ListAddresses", mock.Anything, "tok").Return(homeAddress, nil)

		_, err := f.service.Proceed(ctx, session)
		require.NoError(t, err)

		_, err = f.service.UpdateContact(ctx, session, &models.Contact{Name: "Ana Souza", Email: "Ana@Discool.com.br", Phone: "11999990000"})
		require.NoError(t, err)
	}

	t.Run("Success - End To End Handoff", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)
		advance(t, f, session)

		f.products.On("GetProduct", mock.Anything, "1").Return(&models.Product{ID: "1", Name: "Produto X", Stock: 5}, nil).Once()
		f.carts.On("FindCartByCustomer", ctx, "tok", "c1").Return(nil, nil).Once()
		f.carts.On("CreateCart", ctx, "tok", "c1", mock.MatchedBy(func(items []models.OrderItem) bool {
			return len(items) == 1 && items[0].ProductID == "1" && items[0].Quantity == 2
		})).Return(&models.BackendCart{ID: "bc-9"}, nil).Once()
		f.orders.On("CreateOrder", ctx, "tok", mock.MatchedBy(func(d *models.OrderDraft) bool {
			return d.CustomerID == "c1" && d.AddressID == "a1" && d.CartID == "bc-9" &&
				d.ShippingPrice.Equal(decimal.NewFromInt(20)) && d.Discount.IsZero() &&
				d.Description == "Presente" && d.IdempotencyKey == session.Checkout.AttemptID
		})).Return(&models.Order{ID: "42", Total: decimal.NewNullDecimal(decimal.NewFromInt(220))}, nil).Once()

		// Act
		view, err := f.service.PlaceOrder(ctx, session, &models.PlaceOrderRequest{Description: "<b>Presente</b>"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.StepPaymentHandoff, view.Step)
		require.NotNil(t, view.Order)
		assert.Equal(t, "42", view.Order.OrderID)
		assert.True(t, decimal.NewFromInt(220).Equal(view.Order.Total))
		assert.True(t, session.Cart.IsEmpty())
		f.carts.AssertExpectations(t)
		f.orders.AssertExpectations(t)
	})

	t.Run("Success - Second Confirmation Returns Existing Order", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)
		session.Cart = models.Cart{}
		session.Checkout.Step = models.StepPaymentHandoff
		session.Checkout.Order = &models.PlacedOrder{OrderID: "42", Total: decimal.NewFromInt(220)}

		// Act
		view, err := f.service.PlaceOrder(ctx, session, nil)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "42", view.Order.OrderID)
		f.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Shortfall On Reverification Keeps Cart", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)
		advance(t, f, session)

		f.products.On("GetProduct", mock.Anything, "1").Return(&models.Product{ID: "1", Name: "Produto X", Stock: 1}, nil).Once()

		// Act
		view, err := f.service.PlaceOrder(ctx, session, nil)

		// Assert
		assert.Nil(t, view)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeStockShortfall, appErr.Code)
		assert.Equal(t, []string{"Produto X — disponível: 1"}, appErr.Details)
		assert.Equal(t, 2, session.Cart.Totals().TotalItems)
		assert.Equal(t, models.StepContactAndAddress, session.Checkout.Step)
		f.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Backend Rejects Order Keeps Cart", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)
		advance(t, f, session)
		attempt := session.Checkout.AttemptID

		f.products.On("GetProduct", mock.Anything, "1").Return(&models.Product{ID: "1", Name: "Produto X", Stock: 5}, nil).Once()
		f.carts.On("FindCartByCustomer", ctx, "tok", "c1").Return(&models.BackendCart{ID: "bc-1"}, nil).Once()
		f.carts.On("ReplaceCartItems", ctx, "tok", "bc-1", mock.Anything).Return(&models.BackendCart{ID: "bc-1"}, nil).Once()
		f.orders.On("CreateOrder", ctx, "tok", mock.Anything).Return(nil, appErrors.ServerRejectionError("Endereço inválido", 409)).Once()

		// Act
		_, err := f.service.PlaceOrder(ctx, session, nil)

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeServerRejection))
		assert.Equal(t, 2, session.Cart.Totals().TotalItems)
		assert.Equal(t, attempt, session.Checkout.AttemptID, "retry reuses the idempotency key")
		f.carts.AssertExpectations(t)
	})

	t.Run("Failure - Missing Phone", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)
		f.products.On("GetProduct", mock.Anything, "1").Return(&models.Product{ID: "1", Stock: 5}, nil).Once()
		f.addresses.On("ListAddresses", mock.Anything, "tok").Return(homeAddress, nil)
		_, err := f.service.Proceed(ctx, session)
		require.NoError(t, err)

		// Act
		_, err = f.service.PlaceOrder(ctx, session, nil)

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Equal(t, []string{"phone"}, appErr.Details)
	})

	t.Run("Failure - No Address On File", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)
		session.Checkout.Contact = models.Contact{Name: "Ana", Email: "ana@discool.com.br", Phone: "11999990000"}
		f.products.On("GetProduct", mock.Anything, "1").Return(&models.Product{ID: "1", Stock: 5}, nil).Once()
		f.addresses.On("ListAddresses", mock.Anything, "tok").Return([]models.Address{}, nil)
		_, err := f.service.Proceed(ctx, session)
		require.NoError(t, err)

		// Act
		_, err = f.service.PlaceOrder(ctx, session, nil)

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
		assert.Contains(t, err.Error(), "endereço")
	})

	t.Run("Failure - Still In Cart Step", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)

		// Act
		_, err := f.service.PlaceOrder(ctx, session, nil)

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeCheckoutStep))
	})
}

func TestCheckoutService_Navigation(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Back Keeps Contact", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)
		session.Checkout.Step = models.StepContactAndAddress
		session.Checkout.Contact = models.Contact{Name: "Ana", Email: "ana@discool.com.br", Phone: "11999990000"}

		// Act
		view, err := f.service.Back(ctx, session)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.StepCart, view.Step)
		assert.Equal(t, "11999990000", view.Contact.Phone)
	})

	t.Run("Failure - Handoff Is Terminal", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)
		session.Checkout.Step = models.StepPaymentHandoff
		session.Checkout.Order = &models.PlacedOrder{OrderID: "42"}

		// Act
		_, err := f.service.Back(ctx, session)

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeCheckoutStep))
		assert.Equal(t, models.StepPaymentHandoff, session.Checkout.Step)
	})

	t.Run("Success - Logging Out Re-derives Cart Step", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)
		session.Checkout.Step = models.StepContactAndAddress
		session.Auth = nil

		// Act
		view, err := f.service.View(ctx, session)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.StepCart, view.Step)
		f.addresses.AssertNotCalled(t, "ListAddresses", mock.Anything, mock.Anything)
	})

	t.Run("Success - Selecting Another Address Requotes", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)
		f.products.On("GetProduct", mock.Anything, "1").Return(&models.Product{ID: "1", Stock: 5}, nil).Once()
		f.addresses.On("ListAddresses", mock.Anything, "tok").Return(homeAddress, nil)
		_, err := f.service.Proceed(ctx, session)
		require.NoError(t, err)
		_, err = f.service.SelectShipping(ctx, session, "expresso")
		require.NoError(t, err)

		// Act
		view, err := f.service.SelectAddress(ctx, session, "a0")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "a0", view.SelectedAddressID)
		assert.Equal(t, "01305000", view.Shipping.Zip)
		assert.Equal(t, "expresso", view.Shipping.SelectedID, "choice survives a requote")
		assert.True(t, decimal.NewFromInt(240).Equal(view.Summary.Total))
	})

	t.Run("Failure - Unknown Shipping Option", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)
		f.products.On("GetProduct", mock.Anything, "1").Return(&models.Product{ID: "1", Stock: 5}, nil).Once()
		f.addresses.On("ListAddresses", mock.Anything, "tok").Return(homeAddress, nil)
		_, err := f.service.Proceed(ctx, session)
		require.NoError(t, err)

		// Act
		_, err = f.service.SelectShipping(ctx, session, "drone")

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
	})
}

func TestCheckoutService_Coupons(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Percentage Applied To Summary", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)

		// Act
		view, err := f.service.ApplyCoupon(ctx, session, "discool10")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "DISCOOL10", view.Summary.CouponCode)
		assert.True(t, decimal.NewFromInt(20).Equal(view.Summary.Discount))
		assert.True(t, decimal.NewFromInt(180).Equal(view.Summary.Total))
	})

	t.Run("Failure - Below Minimum Resets Discount", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)
		session.Checkout.CouponCode = "DISCOOL10"
		session.Cart = cartWith(t, line("2", "Compacto", 40, 1))

		// Act
		_, err := f.service.ApplyCoupon(ctx, session, "VINIL20")

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeBelowMinimum))
		assert.Empty(t, session.Checkout.CouponCode)
	})

	t.Run("Success - Coupon Dropped When Subtotal Falls", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)
		_, err := f.service.ApplyCoupon(ctx, session, "DISCOOL10")
		require.NoError(t, err)
		session.Cart = cartWith(t, line("2", "Compacto", 40, 1))

		// Act
		view, err := f.service.View(ctx, session)

		// Assert
		require.NoError(t, err)
		assert.Contains(t, view.Notice, "Cupom removido")
		assert.True(t, view.Summary.Discount.IsZero())
		assert.Empty(t, session.Checkout.CouponCode)
	})

	t.Run("Success - Free Shipping Zeroes Shipping", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture(t)
		session := loggedInSession(t)
		f.products.On("GetProduct", mock.Anything, "1").Return(&models.Product{ID: "1", Stock: 5}, nil).Once()
		f.addresses.On("ListAddresses", mock.Anything, "tok").Return(homeAddress, nil)
		_, err := f.service.Proceed(ctx, session)
		require.NoError(t, err)

		// Act
		view, err := f.service.ApplyCoupon(ctx, session, "FRETEGRATIS")

		// Assert
		require.NoError(t, err)
		assert.True(t, view.Summary.FreeShipping)
		assert.True(t, decimal.NewFromInt(200).Equal(view.Summary.Total))
	})
}
