package service

import (
	"context"
	"log/slog"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/metrics"
	"github.com/discool/storefront/internal/models"
	repository "github.com/discool/storefront/internal/repositories"
	"github.com/shopspring/decimal"
)

type CouponValidator interface {
	Validate(ctx context.Context, code string, subtotal decimal.Decimal) (*models.Coupon, error)
}

type couponValidator struct {
	repo repository.CouponRepository
}

func NewCouponValidator(repo repository.CouponRepository) CouponValidator {
	return &couponValidator{repo: repo}
}

// Validate checks the code against the current subtotal. Callers re-run it whenever the subtotal changes.
func (s *couponValidator) Validate(ctx context.Context, code string, subtotal decimal.Decimal) (*models.Coupon, error) {

	logger := middleware.LoggerFromContext(ctx)

	normalized := models.NormalizeCouponCode(code)
	if normalized == "" {
		return nil, errors.ValidationError("Informe o código do cupom.")
	}

	coupon, err := s.repo.GetCoupon(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			metrics.CouponOutcome("invalid")
			return nil, errors.InvalidCouponError(normalized)
		}

		logger.Error("Coupon lookup failed", slog.String("code", normalized), slog.String("error", err.Error()))
		return nil, errors.DatabaseError("Não foi possível validar o cupom agora.").WithError(err)
	}

	if subtotal.LessThan(coupon.MinSubtotal) {
		metrics.CouponOutcome("below_minimum")
		return nil, errors.BelowMinimumError(coupon.MinSubtotal.StringFixed(2))
	}

	metrics.CouponOutcome("applied")

	return coupon, nil
}
