package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/discool/storefront/internal/cache"
	"github.com/discool/storefront/internal/models"
)

type SessionRepository interface {
	GetSession(ctx context.Context, id string) (*models.Session, bool, error)
	SaveSession(ctx context.Context, session *models.Session) error
	DeleteSession(ctx context.Context, id string) error
}

type sessionRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewSessionRepo keeps sessions as JSON documents; every save slides the expiry forward by ttl.
func NewSessionRepo(c cache.Cache, ttl time.Duration) SessionRepository {
	return &sessionRepository{cache: c, ttl: ttl}
}

func (r *sessionRepository) GetSession(ctx context.Context, id string) (*models.Session, bool, error) {

	var session models.Session

	found, err := r.cache.Get(ctx, cache.Key(cache.SessionKeyPrefix, id), &session)
	if err != nil {
		return nil, false, fmt.Errorf("loading session: %w", err)
	}

	if !found {
		return nil, false, nil
	}

	session.ID = id

	return &session, true, nil
}

func (r *sessionRepository) SaveSession(ctx context.Context, session *models.Session) error {

	session.UpdatedAt = time.Now()

	if err := r.cache.Set(ctx, cache.Key(cache.SessionKeyPrefix, session.ID), session, r.ttl); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	return nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, cache.Key(cache.SessionKeyPrefix, id)); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}

	return nil
}
