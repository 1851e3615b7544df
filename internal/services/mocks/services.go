package mocks

import (
	"context"

	"github.com/discool/storefront/internal/models"
	service "github.com/discool/storefront/internal/services"
	"github.com/discool/storefront/pkg/stripe"
	"github.com/sendgrid/sendgrid-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type StockVerifier struct {
	mock.Mock
}

func (m *StockVerifier) Verify(ctx context.Context, requests []models.StockRequest) []models.StockVerdict {
	args := m.Called(ctx, requests)
	verdicts, _ := args.Get(0).([]models.StockVerdict)
	return verdicts
}

type CouponValidator struct {
	mock.Mock
}

func (m *CouponValidator) Validate(ctx context.Context, code string, subtotal decimal.Decimal) (*models.Coupon, error) {
	args := m.Called(ctx, code, subtotal)
	coupon, _ := args.Get(0).(*models.Coupon)
	return coupon, args.Error(1)
}

type OrderAssembler struct {
	mock.Mock
}

func (m *OrderAssembler) Assemble(ctx context.Context, session *models.Session, input service.OrderInput) (*models.PlacedOrder, error) {
	args := m.Called(ctx, session, input)
	order, _ := args.Get(0).(*models.PlacedOrder)
	return order, args.Error(1)
}

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) SendOrderConfirmation(ctx context.Context, contact models.Contact, order *models.PlacedOrder) error {
	return m.Called(ctx, contact, order).Error(0)
}

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, session *models.Session) *models.CartResponse {
	cart, _ := m.Called(ctx, session).Get(0).(*models.CartResponse)
	return cart
}

func (m *CartService) AddItem(ctx context.Context, session *models.Session, req *models.AddItemRequest) (*models.CartResponse, error) {
	args := m.Called(ctx, session, req)
	cart, _ := args.Get(0).(*models.CartResponse)
	return cart, args.Error(1)
}

func (m *CartService) UpdateQuantity(ctx context.Context, session *models.Session, productID string, quantity int) (*models.CartResponse, error) {
	args := m.Called(ctx, session, productID, quantity)
	cart, _ := args.Get(0).(*models.CartResponse)
	return cart, args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, session *models.Session, productID string) *models.CartResponse {
	cart, _ := m.Called(ctx, session, productID).Get(0).(*models.CartResponse)
	return cart
}

func (m *CartService) ClearCart(ctx context.Context, session *models.Session) *models.CartResponse {
	cart, _ := m.Called(ctx, session).Get(0).(*models.CartResponse)
	return cart
}

type CheckoutService struct {
	mock.Mock
}

func (m *CheckoutService) view(args mock.Arguments) (*models.CheckoutView, error) {
	view, _ := args.Get(0).(*models.CheckoutView)
	return view, args.Error(1)
}

func (m *CheckoutService) View(ctx context.Context, session *models.Session) (*models.CheckoutView, error) {
	return m.view(m.Called(ctx, session))
}

func (m *CheckoutService) Proceed(ctx context.Context, session *models.Session) (*models.CheckoutView, error) {
	return m.view(m.Called(ctx, session))
}

func (m *CheckoutService) Back(ctx context.Context, session *models.Session) (*models.CheckoutView, error) {
	return m.view(m.Called(ctx, session))
}

func (m *CheckoutService) UpdateContact(ctx context.Context, session *models.Session, contact *models.Contact) (*models.CheckoutView, error) {
	return m.view(m.Called(ctx, session, contact))
}

func (m *CheckoutService) VerifyStock(ctx context.Context, session *models.Session) (*models.StockReport, error) {
	args := m.Called(ctx, session)
	report, _ := args.Get(0).(*models.StockReport)
	return report, args.Error(1)
}

func (m *CheckoutService) SelectAddress(ctx context.Context, session *models.Session, addressID string) (*models.CheckoutView, error) {
	return m.view(m.Called(ctx, session, addressID))
}

func (m *CheckoutService) QuoteShipping(ctx context.Context, session *models.Session, zip string) (*models.ShippingQuote, error) {
	args := m.Called(ctx, session, zip)
	quote, _ := args.Get(0).(*models.ShippingQuote)
	return quote, args.Error(1)
}

func (m *CheckoutService) SelectShipping(ctx context.Context, session *models.Session, optionID string) (*models.CheckoutView, error) {
	return m.view(m.Called(ctx, session, optionID))
}

func (m *CheckoutService) ApplyCoupon(ctx context.Context, session *models.Session, code string) (*models.CheckoutView, error) {
	return m.view(m.Called(ctx, session, code))
}

func (m *CheckoutService) RemoveCoupon(ctx context.Context, session *models.Session) (*models.CheckoutView, error) {
	return m.view(m.Called(ctx, session))
}

func (m *CheckoutService) PlaceOrder(ctx context.Context, session *models.Session, req *models.PlaceOrderRequest) (*models.CheckoutView, error) {
	return m.view(m.Called(ctx, session, req))
}

type PaymentService struct {
	mock.Mock
}

func (m *PaymentService) StartPayment(ctx context.Context, session *models.Session, req *models.CreatePaymentRequest) (*models.PaymentResponse, error) {
	args := m.Called(ctx, session, req)
	resp, _ := args.Get(0).(*models.PaymentResponse)
	return resp, args.Error(1)
}

func (m *PaymentService) ProcessWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error) {
	args := m.Called(ctx, payload, signature)
	event, _ := args.Get(0).(stripe.Event)
	return event, args.Error(1)
}

type StripeClient struct {
	mock.Mock
}

func (m *StripeClient) CreatePaymentIntent(amount int64, currency string, description string, metadata map[string]string) (*stripe.PaymentIntent, error) {
	args := m.Called(amount, currency, description, metadata)
	intent, _ := args.Get(0).(*stripe.PaymentIntent)
	return intent, args.Error(1)
}

func (m *StripeClient) VerifyWebhookSignature(payload []byte, signature string) (stripe.Event, error) {
	args := m.Called(payload, signature)
	event, _ := args.Get(0).(stripe.Event)
	return event, args.Error(1)
}

type EmailService struct {
	mock.Mock
}

func (m *EmailService) Send(ctx context.Context, msg *models.EmailMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *EmailService) GetSendGridClient() *sendgrid.Client {
	return nil
}

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *CatalogService) FilterProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	args := m.Called(ctx, filter)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]models.Category)
	return categories, args.Error(1)
}

func (m *CatalogService) CreateProduct(ctx context.Context, session *models.Session, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, session, req)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *CatalogService) UpdateProduct(ctx context.Context, session *models.Session, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, session, id, req)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *CatalogService) DeleteProduct(ctx context.Context, session *models.Session, id string) error {
	return m.Called(ctx, session, id).Error(0)
}

func (m *CatalogService) CreateCategory(ctx context.Context, session *models.Session, req *models.CategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, session, req)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

func (m *CatalogService) UpdateCategory(ctx context.Context, session *models.Session, id string, req *models.CategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, session, id, req)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

func (m *CatalogService) DeleteCategory(ctx context.Context, session *models.Session, id string) error {
	return m.Called(ctx, session, id).Error(0)
}

type AddressService struct {
	mock.Mock
}

func (m *AddressService) ListAddresses(ctx context.Context, session *models.Session) ([]models.Address, error) {
	args := m.Called(ctx, session)
	addresses, _ := args.Get(0).([]models.Address)
	return addresses, args.Error(1)
}

func (m *AddressService) GetAddress(ctx context.Context, session *models.Session, id string) (*models.Address, error) {
	args := m.Called(ctx, session, id)
	address, _ := args.Get(0).(*models.Address)
	return address, args.Error(1)
}

func (m *AddressService) CreateAddress(ctx context.Context, session *models.Session, req *models.AddressRequest) (*models.Address, error) {
	args := m.Called(ctx, session, req)
	address, _ := args.Get(0).(*models.Address)
	return address, args.Error(1)
}

func (m *AddressService) UpdateAddress(ctx context.Context, session *models.Session, id string, req *models.UpdateAddressRequest) (*models.Address, error) {
	args := m.Called(ctx, session, id, req)
	address, _ := args.Get(0).(*models.Address)
	return address, args.Error(1)
}

func (m *AddressService) DeleteAddress(ctx context.Context, session *models.Session, id string) error {
	return m.Called(ctx, session, id).Error(0)
}

func (m *AddressService) SetDefaultAddress(ctx context.Context, session *models.Session, id string) error {
	return m.Called(ctx, session, id).Error(0)
}

type OrderService struct {
	mock.Mock
}

func (m *OrderService) ListOrders(ctx context.Context, session *models.Session) ([]models.Order, error) {
	args := m.Called(ctx, session)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

func (m *OrderService) GetOrder(ctx context.Context, session *models.Session, id string) (*models.Order, error) {
	args := m.Called(ctx, session, id)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func (m *OrderService) CancelOrder(ctx context.Context, session *models.Session, id string) (*models.Order, error) {
	args := m.Called(ctx, session, id)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

type AuthService struct {
	mock.Mock
}

func (m *AuthService) Login(ctx context.Context, session *models.Session, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, session, req)
	resp, _ := args.Get(0).(*models.LoginResponse)
	return resp, args.Error(1)
}

func (m *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.Customer, error) {
	args := m.Called(ctx, req)
	customer, _ := args.Get(0).(*models.Customer)
	return customer, args.Error(1)
}

func (m *AuthService) Logout(ctx context.Context, session *models.Session) {
	m.Called(ctx, session)
}

func (m *AuthService) RequestPasswordReset(ctx context.Context, req *models.PasswordResetRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *AuthService) ValidateResetCode(ctx context.Context, req *models.PasswordResetValidateRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *AuthService) ConfirmPasswordReset(ctx context.Context, req *models.PasswordResetConfirmRequest) error {
	return m.Called(ctx, req).Error(0)
}
