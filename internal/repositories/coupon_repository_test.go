package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/discool/storefront/internal/config"
	"github.com/discool/storefront/internal/models"
	repository "github.com/discool/storefront/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var couponQuery = regexp.QuoteMeta(`SELECT code, kind, value, min_subtotal FROM coupons WHERE UPPER(code) = $1 AND active = TRUE`)

func TestPostgresCouponRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewCouponRepo(db)
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(couponQuery).
			WithArgs("DISCOOL10").
			WillReturnRows(sqlmock.NewRows([]string{"code", "kind", "value", "min_subtotal"}).
				AddRow("discool10", "percentage", "10", "50.00"))

		// Act
		coupon, err := repo.GetCoupon(ctx, "DISCOOL10")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "DISCOOL10", coupon.Code)
		assert.Equal(t, models.CouponPercentage, coupon.Kind)
		assert.True(t, decimal.NewFromInt(10).Equal(coupon.Value))
		assert.True(t, decimal.NewFromInt(50).Equal(coupon.MinSubtotal))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unknown Code", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(couponQuery).WithArgs("NOPE").WillReturnError(sql.ErrNoRows)

		// Act
		coupon, err := repo.GetCoupon(ctx, "NOPE")

		// Assert
		assert.Nil(t, coupon)
		assert.ErrorIs(t, err, repository.ErrCouponNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unknown Kind In Table", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(couponQuery).
			WithArgs("BOGO").
			WillReturnRows(sqlmock.NewRows([]string{"code", "kind", "value", "min_subtotal"}).
				AddRow("BOGO", "buy_one_get_one", "0", "0"))

		// Act
		_, err := repo.GetCoupon(ctx, "BOGO")

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown kind")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		dbErr := errors.New("connection reset")
		mock.ExpectQuery(couponQuery).WithArgs("VINIL20").WillReturnError(dbErr)

		// Act
		_, err := repo.GetCoupon(ctx, "VINIL20")

		// Assert
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, repository.ErrCouponNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStaticCouponRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Defaults Are Normalized", func(t *testing.T) {
		// Arrange
		repo, err := repository.NewStaticCouponRepo(config.DefaultCoupons())
		require.NoError(t, err)

		// Act
		coupon, err := repo.GetCoupon(ctx, "VINIL20")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.CouponFixed, coupon.Kind)
		assert.True(t, decimal.NewFromInt(20).Equal(coupon.Value))
	})

	t.Run("Failure - Lowercase Entry Does Not Match Raw Lookup", func(t *testing.T) {
		// Arrange
		repo, err := repository.NewStaticCouponRepo([]config.CouponEntry{{Code: " frete ", Kind: "free_shipping"}})
		require.NoError(t, err)

		// Act
		_, errRaw := repo.GetCoupon(ctx, "frete")
		coupon, errNorm := repo.GetCoupon(ctx, "FRETE")

		// Assert
		assert.ErrorIs(t, errRaw, repository.ErrCouponNotFound)
		require.NoError(t, errNorm)
		assert.True(t, coupon.FreeShipping())
	})

	t.Run("Failure - Invalid Kind Rejected At Startup", func(t *testing.T) {
		// Act
		_, err := repository.NewStaticCouponRepo([]config.CouponEntry{{Code: "X", Kind: "mystery"}})

		// Assert
		require.Error(t, err)
	})
}
