package service_test

import (
	"context"
	"testing"
	"time"

	appErrors "github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/models"
	"github.com/discool/storefront/internal/repositories/mocks"
	service "github.com/discool/storefront/internal/services"
	servicemocks "github.com/discool/storefront/internal/services/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService(t *testing.T) {
	ctx := context.Background()
	session := loggedInSession(t)

	t.Run("Success - Newest First", func(t *testing.T) {
		// Arrange
		repo := new(mocks.OrderRepository)
		now := time.Now()
		repo.On("ListOrdersByCustomer", ctx, "tok", "c1").Return([]models.Order{
			{ID: "1", CreatedAt: now.Add(-48 * time.Hour)},
			{ID: "2", CreatedAt: now},
		}, nil).Once()

		// Act
		orders, err := service.NewOrderService(repo).ListOrders(ctx, session)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "2", orders[0].ID)
		repo.AssertExpectations(t)
	})

	t.Run("Failure - Someone Else's Order Reads As Missing", func(t *testing.T) {
		// Arrange
		repo := new(mocks.OrderRepository)
		repo.On("GetOrder", ctx, "tok", "77").Return(&models.Order{ID: "77", CustomerID: "c2"}, nil).Once()

		// Act
		order, err := service.NewOrderService(repo).GetOrder(ctx, session, "77")

		// Assert
		assert.Nil(t, order)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
	})

	t.Run("Success - Cancel Pending", func(t *testing.T) {
		// Arrange
		repo := new(mocks.OrderRepository)
		repo.On("GetOrder", ctx, "tok", "5").Return(&models.Order{ID: "5", CustomerID: "c1", Status: models.OrderStatusPending}, nil).Once()
		repo.On("UpdateOrderStatus", ctx, "tok", "5", models.OrderStatusCancelled).
			Return(&models.Order{ID: "5", CustomerID: "c1", Status: models.OrderStatusCancelled}, nil).Once()

		// Act
		order, err := service.NewOrderService(repo).CancelOrder(ctx, session, "5")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCancelled, order.Status)
		repo.AssertExpectations(t)
	})

	t.Run("Failure - Cancel Shipped", func(t *testing.T) {
		// Arrange
		repo := new(mocks.OrderRepository)
		repo.On("GetOrder", ctx, "tok", "6").Return(&models.Order{ID: "6", CustomerID: "c1", Status: models.OrderStatusShipped}, nil).Once()

		// Act
		_, err := service.NewOrderService(repo).CancelOrder(ctx, session, "6")

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
		repo.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestOrderAssembler_Assemble(t *testing.T) {
	ctx := context.Background()
	input := service.OrderInput{
		AddressID: "a1",
		Shipping:  models.ShippingOption{ID: "padrao", Name: "Padrão", Price: decimal.NewFromInt(20)},
		Summary:   models.CheckoutSummary{Shipping: decimal.NewFromInt(20), Total: decimal.NewFromInt(220)},
	}
	available := []models.StockVerdict{{ProductID: "1", IsAvailable: true, AvailableStock: 5, RequestedQuantity: 2}}

	t.Run("Success - Falls Back To Local Total And Sends Confirmation", func(t *testing.T) {
		// Arrange
		stock := new(servicemocks.StockVerifier)
		notifications := new(servicemocks.NotificationService)
		carts := new(mocks.BackendCartRepository)
		orders := new(mocks.OrderRepository)
		session := loggedInSession(t)
		session.Checkout.Contact = models.Contact{Name: "Ana", Email: "ana@discool.com.br", Phone: "11999990000"}

		stock.On("Verify", ctx, mock.Anything).Return(available).Once()
		carts.On("FindCartByCustomer", ctx, "tok", "c1").Return(nil, nil).Once()
		carts.On("CreateCart", ctx, "tok", "c1", mock.Anything).Return(&models.BackendCart{ID: "bc"}, nil).Once()
		orders.On("CreateOrder", ctx, "tok", mock.Anything).Return(&models.Order{ID: "43"}, nil).Once()
		notifications.On("SendOrderConfirmation", mock.Anything, session.Checkout.Contact, mock.AnythingOfType("*models.PlacedOrder")).
			Return(assert.AnError).Once()

		assembler := service.NewOrderAssembler(stock, carts, orders, notifications)

		// Act
		placed, err := assembler.Assemble(ctx, session, input)

		// Assert
		require.NoError(t, err, "a failed e-mail does not fail the order")
		assert.Equal(t, "43", placed.OrderID)
		assert.True(t, decimal.NewFromInt(220).Equal(placed.Total))
		assert.Equal(t, models.StepPaymentHandoff, session.Checkout.Step)
		notifications.AssertExpectations(t)
	})

	t.Run("Success - Zero Total From Backend Is Kept", func(t *testing.T) {
		// Arrange
		stock := new(servicemocks.StockVerifier)
		carts := new(mocks.BackendCartRepository)
		orders := new(mocks.OrderRepository)
		session := loggedInSession(t)

		stock.On("Verify", ctx, mock.Anything).Return(available).Once()
		carts.On("FindCartByCustomer", ctx, "tok", "c1").Return(&models.BackendCart{ID: "bc"}, nil).Once()
		carts.On("ReplaceCartItems", ctx, "tok", "bc", mock.Anything).Return(&models.BackendCart{ID: "bc"}, nil).Once()
		orders.On("CreateOrder", ctx, "tok", mock.Anything).
			Return(&models.Order{ID: "44", Total: decimal.NewNullDecimal(decimal.Zero)}, nil).Once()

		assembler := service.NewOrderAssembler(stock, carts, orders, nil)

		// Act
		placed, err := assembler.Assemble(ctx, session, input)

		// Assert
		require.NoError(t, err)
		assert.True(t, placed.Total.IsZero(), "the backend total is authoritative even when it is zero")
		orders.AssertExpectations(t)
	})

	t.Run("Failure - Backend Cart Sync Keeps Cart", func(t *testing.T) {
		// Arrange
		stock := new(servicemocks.StockVerifier)
		carts := new(mocks.BackendCartRepository)
		orders := new(mocks.OrderRepository)
		session := loggedInSession(t)

		stock.On("Verify", ctx, mock.Anything).Return(available).Once()
		carts.On("FindCartByCustomer", ctx, "tok", "c1").Return(nil, appErrors.NetworkError(context.DeadlineExceeded)).Once()

		assembler := service.NewOrderAssembler(stock, carts, orders, nil)

		// Act
		_, err := assembler.Assemble(ctx, session, input)

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNetwork))
		assert.Equal(t, 2, session.Cart.Totals().TotalItems)
		orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Not Logged In", func(t *testing.T) {
		// Arrange
		session := loggedInSession(t)
		session.Auth = nil
		assembler := service.NewOrderAssembler(new(servicemocks.StockVerifier), new(mocks.BackendCartRepository), new(mocks.OrderRepository), nil)

		// Act
		_, err := assembler.Assemble(ctx, session, input)

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeUnauthorized))
	})
}
