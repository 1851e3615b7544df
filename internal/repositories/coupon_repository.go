package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/discool/storefront/internal/config"
	"github.com/discool/storefront/internal/models"
	"github.com/discool/storefront/internal/utils"
	"github.com/shopspring/decimal"
)

var ErrCouponNotFound = errors.New("coupon not found")

type CouponRepository interface {
	// GetCoupon expects a normalized code and returns ErrCouponNotFound for unknown or inactive codes.
	GetCoupon(ctx context.Context, code string) (*models.Coupon, error)
}

type postgresCouponRepository struct {
	DB *sql.DB
}

func NewCouponRepo(db *sql.DB) CouponRepository {
	return &postgresCouponRepository{DB: db}
}

func (r *postgresCouponRepository) GetCoupon(ctx context.Context, code string) (*models.Coupon, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT code, kind, value, min_subtotal
		FROM coupons
		WHERE UPPER(code) = $1 AND active = TRUE
	`

	var (
		coupon      models.Coupon
		kind        string
		value       string
		minSubtotal string
	)

	err := r.DB.QueryRowContext(dbCtx, query, code).Scan(&coupon.Code, &kind, &value, &minSubtotal)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCouponNotFound
		}
		return nil, fmt.Errorf("querying coupon %s: %w", code, err)
	}

	coupon.Kind = models.CouponKind(kind)
	if !coupon.Kind.Valid() {
		return nil, fmt.Errorf("coupon %s has unknown kind %q", code, kind)
	}

	if coupon.Value, err = decimal.NewFromString(value); err != nil {
		return nil, fmt.Errorf("coupon %s value: %w", code, err)
	}

	if coupon.MinSubtotal, err = decimal.NewFromString(minSubtotal); err != nil {
		return nil, fmt.Errorf("coupon %s min_subtotal: %w", code, err)
	}

	coupon.Code = models.NormalizeCouponCode(coupon.Code)

	return &coupon, nil
}

type staticCouponRepository struct {
	coupons map[string]models.Coupon
}

// NewStaticCouponRepo serves the coupon table from configuration.
func NewStaticCouponRepo(entries []config.CouponEntry) (CouponRepository, error) {
	coupons := make(map[string]models.Coupon, len(entries))

	for _, entry := range entries {
		coupon := models.Coupon{
			Code:        models.NormalizeCouponCode(entry.Code),
			Kind:        models.CouponKind(entry.Kind),
			Value:       decimal.NewFromFloat(entry.Value),
			MinSubtotal: decimal.NewFromFloat(entry.MinSubtotal),
		}

		if coupon.Code == "" {
			return nil, errors.New("coupon entry with empty code")
		}

		if !coupon.Kind.Valid() {
			return nil, fmt.Errorf("coupon %s has unknown kind %q", coupon.Code, entry.Kind)
		}

		coupons[coupon.Code] = coupon
	}

	return &staticCouponRepository{coupons: coupons}, nil
}

func (r *staticCouponRepository) GetCoupon(_ context.Context, code string) (*models.Coupon, error) {
	coupon, ok := r.coupons[code]
	if !ok {
		return nil, ErrCouponNotFound
	}

	return &coupon, nil
}
