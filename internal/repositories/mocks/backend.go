package mocks

import (
	"context"

	"github.com/discool/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *ProductRepository) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *ProductRepository) FilterProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	args := m.Called(ctx, filter)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *ProductRepository) CreateProduct(ctx context.Context, token string, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, token, req)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *ProductRepository) UpdateProduct(ctx context.Context, token string, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, token, id, req)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *ProductRepository) DeleteProduct(ctx context.Context, token string, id string) error {
	return m.Called(ctx, token, id).Error(0)
}

type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) ListPublicCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]models.Category)
	return categories, args.Error(1)
}

func (m *CategoryRepository) ListCategories(ctx context.Context, token string) ([]models.Category, error) {
	args := m.Called(ctx, token)
	categories, _ := args.Get(0).([]models.Category)
	return categories, args.Error(1)
}

func (m *CategoryRepository) CreateCategory(ctx context.Context, token string, req *models.CategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, token, req)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

func (m *CategoryRepository) UpdateCategory(ctx context.Context, token string, id string, req *models.CategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, token, id, req)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

func (m *CategoryRepository) DeleteCategory(ctx context.Context, token string, id string) error {
	return m.Called(ctx, token, id).Error(0)
}

type AddressRepository struct {
	mock.Mock
}

func (m *AddressRepository) ListAddresses(ctx context.Context, token string) ([]models.Address, error) {
	args := m.Called(ctx, token)
	addresses, _ := args.Get(0).([]models.Address)
	return addresses, args.Error(1)
}

func (m *AddressRepository) GetAddress(ctx context.Context, token string, id string) (*models.Address, error) {
	args := m.Called(ctx, token, id)
	address, _ := args.Get(0).(*models.Address)
	return address, args.Error(1)
}

func (m *AddressRepository) CreateAddress(ctx context.Context, token string, customerID string, req *models.AddressRequest) (*models.Address, error) {
	args := m.Called(ctx, token, customerID, req)
	address, _ := args.Get(0).(*models.Address)
	return address, args.Error(1)
}

func (m *AddressRepository) UpdateAddress(ctx context.Context, token string, id string, req *models.UpdateAddressRequest) (*models.Address, error) {
	args := m.Called(ctx, token, id, req)
	address, _ := args.Get(0).(*models.Address)
	return address, args.Error(1)
}

func (m *AddressRepository) DeleteAddress(ctx context.Context, token string, id string) error {
	return m.Called(ctx, token, id).Error(0)
}

func (m *AddressRepository) SetDefaultAddress(ctx context.Context, token string, id string) error {
	return m.Called(ctx, token, id).Error(0)
}

type BackendCartRepository struct {
	mock.Mock
}

func (m *BackendCartRepository) FindCartByCustomer(ctx context.Context, token string, customerID string) (*models.BackendCart, error) {
	args := m.Called(ctx, token, customerID)
	cart, _ := args.Get(0).(*models.BackendCart)
	return cart, args.Error(1)
}

func (m *BackendCartRepository) CreateCart(ctx context.Context, token string, customerID string, items []models.OrderItem) (*models.BackendCart, error) {
	args := m.Called(ctx, token, customerID, items)
	cart, _ := args.Get(0).(*models.BackendCart)
	return cart, args.Error(1)
}

func (m *BackendCartRepository) ReplaceCartItems(ctx context.Context, token string, cartID string, items []models.OrderItem) (*models.BackendCart, error) {
	args := m.Called(ctx, token, cartID, items)
	cart, _ := args.Get(0).(*models.BackendCart)
	return cart, args.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(ctx context.Context, token string, draft *models.OrderDraft) (*models.Order, error) {
	args := m.Called(ctx, token, draft)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func (m *OrderRepository) GetOrder(ctx context.Context, token string, id string) (*models.Order, error) {
	args := m.Called(ctx, token, id)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func (m *OrderRepository) ListOrdersByCustomer(ctx context.Context, token string, customerID string) ([]models.Order, error) {
	args := m.Called(ctx, token, customerID)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(ctx context.Context, token string, id string, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(ctx, token, id, status)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

type PaymentRepository struct {
	mock.Mock
}

func (m *PaymentRepository) CreatePayment(ctx context.Context, token string, payment *models.Payment) (*models.Payment, error) {
	args := m.Called(ctx, token, payment)
	created, _ := args.Get(0).(*models.Payment)
	return created, args.Error(1)
}

func (m *PaymentRepository) UpdatePaymentStatus(ctx context.Context, token string, id string, status models.PaymentStatus, providerRef string) error {
	return m.Called(ctx, token, id, status, providerRef).Error(0)
}

type AuthRepository struct {
	mock.Mock
}

func (m *AuthRepository) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	args := m.Called(ctx, email, password)
	result, _ := args.Get(0).(*models.AuthResult)
	return result, args.Error(1)
}

func (m *AuthRepository) Register(ctx context.Context, req *models.RegisterRequest) (*models.Customer, error) {
	args := m.Called(ctx, req)
	customer, _ := args.Get(0).(*models.Customer)
	return customer, args.Error(1)
}

func (m *AuthRepository) RequestPasswordReset(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *AuthRepository) ValidateResetCode(ctx context.Context, email, code string) error {
	return m.Called(ctx, email, code).Error(0)
}

func (m *AuthRepository) ConfirmPasswordReset(ctx context.Context, req *models.PasswordResetConfirmRequest) error {
	return m.Called(ctx, req).Error(0)
}
