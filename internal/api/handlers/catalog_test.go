package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/discool/storefront/internal/api/handlers"
	appErrors "github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/models"
	"github.com/discool/storefront/internal/services/mocks"
	"github.com/discool/storefront/internal/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFilterProducts(t *testing.T) {
	t.Run("Success - Query Mapped To Filter", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mocks.CatalogService)
		catalogHandler := handlers.NewCatalogHandler(mockCatalog)

		mockCatalog.On("FilterProducts", mock.Anything, mock.MatchedBy(func(f models.ProductFilter) bool {
			return f.Name == "abbey" && f.CategoryID == "3" && f.MinPrice.Equal(decimal.NewFromInt(50)) && f.MaxPrice == nil
		})).Return([]models.Product{{ID: "7", Name: "Abbey Road"}}, nil).Once()

		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/products/filter?name=abbey&category=3&min_price=50", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		catalogHandler.FilterProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockCatalog.AssertExpectations(t)
	})

	t.Run("Failure - Price Not A Number", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mocks.CatalogService)
		catalogHandler := handlers.NewCatalogHandler(mockCatalog)

		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/products/filter?max_price=barato", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		catalogHandler.FilterProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, appErrors.ErrCodeValidation, decodeResponse(t, recorder).Error.Code)
		mockCatalog.AssertNotCalled(t, "FilterProducts", mock.Anything, mock.Anything)
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mocks.CatalogService)
		catalogHandler := handlers.NewCatalogHandler(mockCatalog)

		mockCatalog.On("GetProduct", mock.Anything, "404").Return(nil, appErrors.NotFoundError("Produto não encontrado.")).Once()

		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/products/404", nil, map[string]string{"id": "404"})
		recorder := httptest.NewRecorder()

		// Act
		catalogHandler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		mockCatalog.AssertExpectations(t)
	})
}

func TestCancelOrder(t *testing.T) {
	t.Run("Success - Cancelled", func(t *testing.T) {
		// Arrange
		mockOrders := new(mocks.OrderService)
		orderHandler := handlers.NewOrderHandler(mockOrders)
		session := testutils.LoggedInSession("s-1", "c1")

		mockOrders.On("CancelOrder", mock.Anything, session, "5").
			Return(&models.Order{ID: "5", Status: models.OrderStatusCancelled}, nil).Once()

		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/orders/5/cancel", nil, session, map[string]string{"id": "5"})
		recorder := httptest.NewRecorder()

		// Act
		orderHandler.CancelOrder()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), string(models.OrderStatusCancelled))
		mockOrders.AssertExpectations(t)
	})
}
