package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/models"
	repository "github.com/discool/storefront/internal/repositories"
	"github.com/discool/storefront/internal/utils"
)

type AddressService interface {
	ListAddresses(ctx context.Context, session *models.Session) ([]models.Address, error)
	GetAddress(ctx context.Context, session *models.Session, id string) (*models.Address, error)
	CreateAddress(ctx context.Context, session *models.Session, req *models.AddressRequest) (*models.Address, error)
	UpdateAddress(ctx context.Context, session *models.Session, id string, req *models.UpdateAddressRequest) (*models.Address, error)
	DeleteAddress(ctx context.Context, session *models.Session, id string) error
	SetDefaultAddress(ctx context.Context, session *models.Session, id string) error
}

type addressService struct {
	repo repository.AddressRepository
}

func NewAddressService(repo repository.AddressRepository) AddressService {
	return &addressService{repo: repo}
}

func (s *addressService) ListAddresses(ctx context.Context, session *models.Session) ([]models.Address, error) {
	return s.repo.ListAddresses(ctx, session.Token())
}

func (s *addressService) GetAddress(ctx context.Context, session *models.Session, id string) (*models.Address, error) {
	return s.repo.GetAddress(ctx, session.Token(), id)
}

func (s *addressService) CreateAddress(ctx context.Context, session *models.Session, req *models.AddressRequest) (*models.Address, error) {

	zip, err := NormalizeZip(req.Zip)
	if err != nil {
		return nil, err
	}

	clean := *req
	clean.Zip = zip
	clean.Street = utils.SanitizeText(req.Street)
	clean.Number = utils.SanitizeText(req.Number)
	clean.Neighborhood = utils.SanitizeText(req.Neighborhood)
	clean.City = utils.SanitizeText(req.City)
	clean.State = strings.ToUpper(utils.SanitizeText(req.State))
	clean.Complement = utils.SanitizeText(req.Complement)

	address, err := s.repo.CreateAddress(ctx, session.Token(), session.CustomerID(), &clean)
	if err != nil {
		return nil, err
	}

	middleware.LoggerFromContext(ctx).Info("Address created", slog.String("address_id", address.ID))

	return address, nil
}

func (s *addressService) UpdateAddress(ctx context.Context, session *models.Session, id string, req *models.UpdateAddressRequest) (*models.Address, error) {

	clean := *req

	if req.Zip != nil {
		zip, err := NormalizeZip(*req.Zip)
		if err != nil {
			return nil, err
		}
		clean.Zip = &zip
	}

	utils.SanitizeTextPtr(clean.Street)
	utils.SanitizeTextPtr(clean.Number)
	utils.SanitizeTextPtr(clean.Neighborhood)
	utils.SanitizeTextPtr(clean.City)
	utils.SanitizeTextPtr(clean.Complement)

	if req.State != nil {
		state := strings.ToUpper(utils.SanitizeText(*req.State))
		clean.State = &state
	}

	address, err := s.repo.UpdateAddress(ctx, session.Token(), id, &clean)
	if err != nil {
		return nil, err
	}

	forgetShippingFor(session, id)

	return address, nil
}

func (s *addressService) DeleteAddress(ctx context.Context, session *models.Session, id string) error {

	if err := s.repo.DeleteAddress(ctx, session.Token(), id); err != nil {
		return err
	}

	if session.Checkout.SelectedAddressID == id {
		session.Checkout.SelectedAddressID = ""
		session.Checkout.Shipping = nil
	}

	return nil
}

func (s *addressService) SetDefaultAddress(ctx context.Context, session *models.Session, id string) error {
	return s.repo.SetDefaultAddress(ctx, session.Token(), id)
}

// forgetShippingFor drops a quote computed for an address that has since changed.
func forgetShippingFor(session *models.Session, addressID string) {
	if session.Checkout.SelectedAddressID == addressID {
		session.Checkout.Shipping = nil
	}
}
