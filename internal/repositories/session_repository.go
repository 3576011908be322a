package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps session snapshots for the lifetime of a visit.
// Entries expire ttl after their last use; nothing is stored durably.
type SessionRepository interface {
	GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error)
	SaveSession(ctx context.Context, session *models.Session) error
	DeleteSession(ctx context.Context, id uuid.UUID) error
}

type sessionRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewSessionRepo(c cache.Cache, ttl time.Duration) SessionRepository {
	return &sessionRepository{cache: c, ttl: ttl}
}

func (r *sessionRepository) GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	key := cache.Key(cache.SessionKeyPrefix, id.String())

	session := &models.Session{}

	found, err := r.cache.Get(ctx, key, session)
	if err != nil {
		return nil, fmt.Errorf("loading session %s: %w", id, err)
	}

	if !found {
		return nil, ErrSessionNotFound
	}

	if err := r.cache.Touch(ctx, key, r.ttl); err != nil {
		return nil, fmt.Errorf("refreshing session %s: %w", id, err)
	}

	return session, nil
}

func (r *sessionRepository) SaveSession(ctx context.Context, session *models.Session) error {
	key := cache.Key(cache.SessionKeyPrefix, session.ID.String())

	if err := r.cache.Set(ctx, key, session, r.ttl); err != nil {
		return fmt.Errorf("saving session %s: %w", session.ID, err)
	}

	return nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if err := r.cache.Delete(ctx, cache.Key(cache.SessionKeyPrefix, id.String())); err != nil {
		return fmt.Errorf("deleting session %s: %w", id, err)
	}

	return nil
}
