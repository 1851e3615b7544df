package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/discool/storefront/internal/config"
	appErrors "github.com/discool/storefront/internal/errors"
	repository "github.com/discool/storefront/internal/repositories"
	"github.com/discool/storefront/internal/repositories/mocks"
	service "github.com/discool/storefront/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCouponValidator_Validate(t *testing.T) {
	ctx := context.Background()

	static, err := repository.NewStaticCouponRepo(config.DefaultCoupons())
	require.NoError(t, err)

	validator := service.NewCouponValidator(static)

	t.Run("Success - Percentage Discount", func(t *testing.T) {
		// Act
		coupon, err := validator.Validate(ctx, "discool10", decimal.NewFromInt(200))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "DISCOOL10", coupon.Code)
		assert.True(t, decimal.NewFromInt(20).Equal(coupon.DiscountFor(decimal.NewFromInt(200))))
	})

	t.Run("Success - Fixed Discount Capped At Subtotal", func(t *testing.T) {
		// Act
		coupon, err := validator.Validate(ctx, " VINIL20 ", decimal.NewFromInt(100))

		// Assert
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(20).Equal(coupon.DiscountFor(decimal.NewFromInt(100))))
	})

	t.Run("Failure - Below Minimum Carries Threshold", func(t *testing.T) {
		// Act
		coupon, err := validator.Validate(ctx, "DISCOOL10", decimal.NewFromInt(40))

		// Assert
		assert.Nil(t, coupon)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBelowMinimum, appErr.Code)
		assert.Equal(t, "50.00", appErr.Meta["threshold"])
	})

	t.Run("Failure - Unknown Code", func(t *testing.T) {
		// Act
		_, err := validator.Validate(ctx, "NATAL99", decimal.NewFromInt(500))

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeInvalidCoupon))
	})

	t.Run("Failure - Blank Code", func(t *testing.T) {
		// Act
		_, err := validator.Validate(ctx, "   ", decimal.NewFromInt(500))

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
	})

	t.Run("Failure - Coupon Table Unavailable", func(t *testing.T) {
		// Arrange
		repo := new(mocks.CouponRepository)
		dbErr := errors.New("connection refused")
		repo.On("GetCoupon", mock.Anything, "DISCOOL10").Return(nil, dbErr).Once()

		// Act
		_, err := service.NewCouponValidator(repo).Validate(ctx, "discool10", decimal.NewFromInt(200))

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeDatabaseError))
		assert.ErrorIs(t, err, dbErr)
		repo.AssertExpectations(t)
	})
}
