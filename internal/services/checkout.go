package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/metrics"
	"github.com/discool/storefront/internal/models"
	repository "github.com/discool/storefront/internal/repositories"
	"github.com/discool/storefront/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// CheckoutService drives the cart → contact_and_address → payment_handoff wizard kept in the session.
type CheckoutService interface {
	View(ctx context.Context, session *models.Session) (*models.CheckoutView, error)
	Proceed(ctx context.Context, session *models.Session) (*models.CheckoutView, error)
	Back(ctx context.Context, session *models.Session) (*models.CheckoutView, error)
	UpdateContact(ctx context.Context, session *models.Session, contact *models.Contact) (*models.CheckoutView, error)
	VerifyStock(ctx context.Context, session *models.Session) (*models.StockReport, error)
	SelectAddress(ctx context.Context, session *models.Session, addressID string) (*models.CheckoutView, error)
	QuoteShipping(ctx context.Context, session *models.Session, zip string) (*models.ShippingQuote, error)
	SelectShipping(ctx context.Context, session *models.Session, optionID string) (*models.CheckoutView, error)
	ApplyCoupon(ctx context.Context, session *models.Session, code string) (*models.CheckoutView, error)
	RemoveCoupon(ctx context.Context, session *models.Session) (*models.CheckoutView, error)
	PlaceOrder(ctx context.Context, session *models.Session, req *models.PlaceOrderRequest) (*models.CheckoutView, error)
}

type checkoutService struct {
	stock     StockVerifier
	shipping  ShippingQuoter
	coupons   CouponValidator
	addresses repository.AddressRepository
	assembler OrderAssembler
}

func NewCheckoutService(stock StockVerifier, shipping ShippingQuoter, coupons CouponValidator,
	addresses repository.AddressRepository, assembler OrderAssembler) CheckoutService {

	return &checkoutService{
		stock:     stock,
		shipping:  shipping,
		coupons:   coupons,
		addresses: addresses,
		assembler: assembler,
	}
}

func (s *checkoutService) View(ctx context.Context, session *models.Session) (*models.CheckoutView, error) {
	reconcile(session)
	return s.buildView(ctx, session, nil, nil)
}

// Proceed moves an authenticated shopper with a non-empty cart to contact_and_address. Stock is checked
// while the addresses load and the shipping quote is computed.
func (s *checkoutService) Proceed(ctx context.Context, session *models.Session) (*models.CheckoutView, error) {

	logger := middleware.LoggerFromContext(ctx)
	reconcile(session)

	checkout := &session.Checkout

	if checkout.Step == models.StepPaymentHandoff {
		return nil, errors.CheckoutStepError("Este pedido já foi criado. Prossiga para o pagamento.")
	}

	if session.Cart.IsEmpty() {
		metrics.CheckoutTransition("proceed", "empty_cart")
		return nil, errors.ValidationError("Seu carrinho está vazio. Adicione itens antes de continuar.")
	}

	if !session.Authenticated() {
		metrics.CheckoutTransition("proceed", "unauthenticated")
		return nil, errors.UnauthorizedError("Faça login para continuar a compra.")
	}

	var (
		verdicts  []models.StockVerdict
		addresses []models.Address
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		verdicts = s.stock.Verify(gctx, session.Cart.StockRequests())
		return nil
	})

	g.Go(func() error {
		var err error
		addresses, err = s.addresses.ListAddresses(gctx, session.Token())
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Error("Failed to load addresses for checkout", slog.String("error", err.Error()))
		return nil, err
	}

	checkout.Step = models.StepContactAndAddress
	if checkout.AttemptID == "" {
		checkout.AttemptID = uuid.NewString()
	}

	if checkout.Contact.Name == "" {
		checkout.Contact.Name = session.Auth.Name
	}
	if checkout.Contact.Email == "" {
		checkout.Contact.Email = session.Auth.Email
	}

	s.syncAddress(session, addresses)

	metrics.CheckoutTransition("proceed", "ok")
	logger.Info("Checkout advanced", slog.String("step", string(checkout.Step)), slog.Int("addresses", len(addresses)))

	return s.buildView(ctx, session, addresses, models.NewStockReport(verdicts))
}

// Back returns to the cart step. The contact fields survive.
func (s *checkoutService) Back(ctx context.Context, session *models.Session) (*models.CheckoutView, error) {

	reconcile(session)

	if session.Checkout.Step == models.StepPaymentHandoff {
		return nil, errors.CheckoutStepError("O pedido já foi criado e não pode ser alterado.")
	}

	session.Checkout.Step = models.StepCart
	metrics.CheckoutTransition("back", "ok")

	return s.buildView(ctx, session, nil, nil)
}

func (s *checkoutService) UpdateContact(ctx context.Context, session *models.Session, contact *models.Contact) (*models.CheckoutView, error) {

	reconcile(session)

	if session.Checkout.Step == models.StepPaymentHandoff {
		return nil, errors.CheckoutStepError("O pedido já foi criado e não pode ser alterado.")
	}

	session.Checkout.Contact = models.Contact{
		Name:  utils.SanitizeText(contact.Name),
		Email: strings.ToLower(strings.TrimSpace(contact.Email)),
		Phone: strings.TrimSpace(contact.Phone),
	}

	return s.buildView(ctx, session, nil, nil)
}

func (s *checkoutService) VerifyStock(ctx context.Context, session *models.Session) (*models.StockReport, error) {

	if session.Cart.IsEmpty() {
		return nil, errors.ValidationError("Seu carrinho está vazio.")
	}

	return models.NewStockReport(s.stock.Verify(ctx, session.Cart.StockRequests())), nil
}

func (s *checkoutService) SelectAddress(ctx context.Context, session *models.Session, addressID string) (*models.CheckoutView, error) {

	reconcile(session)

	if session.Checkout.Step != models.StepContactAndAddress {
		return nil, errors.CheckoutStepError("Avance para a etapa de entrega para escolher o endereço.")
	}

	addresses, err := s.addresses.ListAddresses(ctx, session.Token())
	if err != nil {
		return nil, err
	}

	address, ok := models.FindAddress(addresses, addressID)
	if !ok {
		return nil, errors.NotFoundError("Endereço não encontrado.")
	}

	s.selectAddress(session, address)

	return s.buildView(ctx, session, addresses, nil)
}

// QuoteShipping prices a zip for the current cart. A quote for the selected address's zip is kept in
// the session; any other zip is an estimate only.
func (s *checkoutService) QuoteShipping(ctx context.Context, session *models.Session, zip string) (*models.ShippingQuote, error) {

	reconcile(session)

	if strings.TrimSpace(zip) == "" {
		zip = session.Checkout.AddressZip
	}

	if zip == "" {
		return nil, errors.ValidationError("Informe o CEP para calcular o frete.")
	}

	quote, err := s.shipping.Quote(zip, &session.Cart)
	if err != nil {
		return nil, err
	}

	if session.Checkout.Step == models.StepContactAndAddress && quote.Zip == session.Checkout.AddressZip {
		s.refreshShipping(session)
		return session.Checkout.Shipping, nil
	}

	return quote, nil
}

func (s *checkoutService) SelectShipping(ctx context.Context, session *models.Session, optionID string) (*models.CheckoutView, error) {

	reconcile(session)

	if session.Checkout.Step != models.StepContactAndAddress {
		return nil, errors.CheckoutStepError("Avance para a etapa de entrega para escolher o frete.")
	}

	s.refreshShipping(session)

	quote := session.Checkout.Shipping
	if quote == nil {
		return nil, errors.ValidationError("Selecione um endereço para calcular o frete.")
	}

	if !hasOption(quote, optionID) {
		return nil, errors.ValidationError("Opção de frete inválida.")
	}

	quote.SelectedID = optionID

	return s.buildView(ctx, session, nil, nil)
}

// ApplyCoupon replaces any previous coupon. A rejected code removes the discount.
func (s *checkoutService) ApplyCoupon(ctx context.Context, session *models.Session, code string) (*models.CheckoutView, error) {

	reconcile(session)

	if session.Checkout.Step == models.StepPaymentHandoff {
		return nil, errors.CheckoutStepError("O pedido já foi criado e não pode ser alterado.")
	}

	coupon, err := s.coupons.Validate(ctx, code, session.Cart.Totals().Subtotal)
	if err != nil {
		if isCouponRejection(err) {
			session.Checkout.CouponCode = ""
		}
		return nil, err
	}

	session.Checkout.CouponCode = coupon.Code

	return s.buildView(ctx, session, nil, nil)
}

func (s *checkoutService) RemoveCoupon(ctx context.Context, session *models.Session) (*models.CheckoutView, error) {

	reconcile(session)

	if session.Checkout.Step == models.StepPaymentHandoff {
		return nil, errors.CheckoutStepError("O pedido já foi criado e não pode ser alterado.")
	}

	session.Checkout.CouponCode = ""

	return s.buildView(ctx, session, nil, nil)
}

// PlaceOrder checks everything that can be checked locally, then hands over to the order assembler.
// Confirming an order that was already placed returns the existing handoff.
func (s *checkoutService) PlaceOrder(ctx context.Context, session *models.Session, req *models.PlaceOrderRequest) (*models.CheckoutView, error) {

	reconcile(session)

	checkout := &session.Checkout

	if checkout.Step == models.StepPaymentHandoff {
		return s.buildView(ctx, session, nil, nil)
	}

	if !session.Authenticated() {
		return nil, errors.UnauthorizedError("Faça login para finalizar o pedido.")
	}

	if session.Cart.IsEmpty() {
		return nil, errors.ValidationError("Seu carrinho está vazio.")
	}

	if checkout.Step != models.StepContactAndAddress {
		return nil, errors.CheckoutStepError("Continue para a etapa de entrega antes de finalizar.")
	}

	if missing := missingContactFields(checkout.Contact); len(missing) > 0 {
		metrics.CheckoutTransition("place_order", "invalid")
		return nil, errors.ValidationError("Preencha nome, e-mail e telefone para continuar.").WithDetails(missing...)
	}

	if checkout.SelectedAddressID == "" {
		metrics.CheckoutTransition("place_order", "invalid")
		return nil, errors.ValidationError("Cadastre ou selecione um endereço de entrega.")
	}

	s.refreshShipping(session)

	option, ok := checkout.Shipping.Selected()
	if !ok {
		metrics.CheckoutTransition("place_order", "invalid")
		return nil, errors.ValidationError("Selecione uma opção de frete.")
	}

	var coupon *models.Coupon

	if checkout.CouponCode != "" {
		var err error

		coupon, err = s.coupons.Validate(ctx, checkout.CouponCode, session.Cart.Totals().Subtotal)
		if err != nil {
			if isCouponRejection(err) {
				checkout.CouponCode = ""
			}
			return nil, err
		}
	}

	description := ""
	if req != nil {
		description = utils.SanitizeText(req.Description)
	}

	_, err := s.assembler.Assemble(ctx, session, OrderInput{
		AddressID:   checkout.SelectedAddressID,
		Shipping:    option,
		Summary:     models.ComputeSummary(&session.Cart, &option, coupon),
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	return s.buildView(ctx, session, nil, nil)
}

// buildView renders the current step. addresses and stock may be passed in when the caller already has them.
func (s *checkoutService) buildView(ctx context.Context, session *models.Session, addresses []models.Address,
	stock *models.StockReport) (*models.CheckoutView, error) {

	logger := middleware.LoggerFromContext(ctx)
	checkout := &session.Checkout

	view := &models.CheckoutView{
		Step:    checkout.Step,
		Cart:    models.NewCartResponse(session.Cart),
		Contact: checkout.Contact,
		Stock:   stock,
		Order:   checkout.Order,
		Payment: checkout.Payment,
	}

	if checkout.Step == models.StepPaymentHandoff {
		return view, nil
	}

	if checkout.Step == models.StepContactAndAddress {
		if addresses == nil {
			var err error

			addresses, err = s.addresses.ListAddresses(ctx, session.Token())
			if err != nil {
				return nil, err
			}
		}

		s.syncAddress(session, addresses)

		view.Addresses = addresses
		view.SelectedAddressID = checkout.SelectedAddressID
		view.Shipping = checkout.Shipping
	}

	var coupon *models.Coupon

	if checkout.CouponCode != "" {
		validated, err := s.coupons.Validate(ctx, checkout.CouponCode, session.Cart.Totals().Subtotal)
		switch {
		case err == nil:
			coupon = validated
		case isCouponRejection(err):
			checkout.CouponCode = ""
			view.Notice = "Cupom removido: " + err.Error()
		default:
			logger.Warn("Coupon could not be revalidated", slog.String("error", err.Error()))
			view.Notice = "Não foi possível validar o cupom agora."
		}
	}

	var selected *models.ShippingOption
	if option, ok := view.Shipping.Selected(); ok {
		selected = &option
	}

	view.Summary = models.ComputeSummary(&session.Cart, selected, coupon)

	if stock != nil && !stock.AllAvailable && view.Notice == "" {
		view.Notice = "Alguns itens não têm estoque suficiente. Ajuste o carrinho antes de finalizar."
	}

	return view, nil
}

// syncAddress keeps the selection pointing at an address the customer still has.
func (s *checkoutService) syncAddress(session *models.Session, addresses []models.Address) {

	if address, ok := models.FindAddress(addresses, session.Checkout.SelectedAddressID); ok {
		s.selectAddress(session, address)
		return
	}

	if address, ok := models.FindAddress(addresses, models.PickDefaultAddress(addresses)); ok {
		s.selectAddress(session, address)
		return
	}

	session.Checkout.SelectedAddressID = ""
	session.Checkout.AddressZip = ""
	session.Checkout.Shipping = nil
}

func (s *checkoutService) selectAddress(session *models.Session, address models.Address) {

	zip, err := NormalizeZip(address.Zip)
	if err != nil {
		zip = ""
	}

	session.Checkout.SelectedAddressID = address.ID
	session.Checkout.AddressZip = zip

	s.refreshShipping(session)
}

// refreshShipping re-quotes whenever the zip or the cart changed since the stored quote was made,
// keeping the shopper's choice when it is still offered.
func (s *checkoutService) refreshShipping(session *models.Session) {

	checkout := &session.Checkout

	if checkout.AddressZip == "" || session.Cart.IsEmpty() {
		checkout.Shipping = nil
		return
	}

	if checkout.Shipping != nil && checkout.Shipping.Key == models.QuoteKey(checkout.AddressZip, &session.Cart) {
		return
	}

	quote, err := s.shipping.Quote(checkout.AddressZip, &session.Cart)
	if err != nil {
		checkout.Shipping = nil
		return
	}

	if checkout.Shipping != nil && hasOption(quote, checkout.Shipping.SelectedID) {
		quote.SelectedID = checkout.Shipping.SelectedID
	}

	checkout.Shipping = quote
}

// reconcile re-derives the step from what the session holds now.
func reconcile(session *models.Session) {

	checkout := &session.Checkout

	if checkout.Step == models.StepPaymentHandoff {
		if checkout.Order == nil {
			checkout.Reset()
		}
		return
	}

	if !session.Authenticated() || session.Cart.IsEmpty() {
		checkout.Step = models.StepCart
	}

	if checkout.Step == "" {
		checkout.Step = models.StepCart
	}
}

func hasOption(quote *models.ShippingQuote, id string) bool {
	for _, o := range quote.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

func missingContactFields(c models.Contact) []string {

	var missing []string

	if strings.TrimSpace(c.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(c.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(c.Phone) == "" {
		missing = append(missing, "phone")
	}

	return missing
}

func isCouponRejection(err error) bool {
	return errors.HasCode(err, errors.ErrCodeInvalidCoupon) ||
		errors.HasCode(err, errors.ErrCodeBelowMinimum) ||
		errors.HasCode(err, errors.ErrCodeValidation)
}
