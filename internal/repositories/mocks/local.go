package mocks

import (
	"context"

	"github.com/discool/storefront/internal/models"
	repository "github.com/discool/storefront/internal/repositories"
	"github.com/stretchr/testify/mock"
)

type CouponRepository struct {
	mock.Mock
}

func (m *CouponRepository) GetCoupon(ctx context.Context, code string) (*models.Coupon, error) {
	args := m.Called(ctx, code)
	coupon, _ := args.Get(0).(*models.Coupon)
	return coupon, args.Error(1)
}

type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) GetSession(ctx context.Context, id string) (*models.Session, bool, error) {
	args := m.Called(ctx, id)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Bool(1), args.Error(2)
}

func (m *SessionRepository) SaveSession(ctx context.Context, session *models.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *SessionRepository) DeleteSession(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type RateLimitRepository struct {
	mock.Mock
}

func (m *RateLimitRepository) CheckLoginRateLimit(ctx context.Context, email string) (repository.RateLimitResult, error) {
	args := m.Called(ctx, email)
	result, _ := args.Get(0).(repository.RateLimitResult)
	return result, args.Error(1)
}

func (m *RateLimitRepository) ResetLoginAttempts(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
