package service

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/cart"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type SessionService interface {
	StartSession(ctx context.Context) (*models.Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*models.SessionView, error)
	EndSession(ctx context.Context, id uuid.UUID) error
	SetCategory(ctx context.Context, id uuid.UUID, category string) (*models.SessionView, error)
	SetCurrency(ctx context.Context, id uuid.UUID, currency string) (*models.SessionView, error)
	SetOverlays(ctx context.Context, id uuid.UUID, req *models.SetOverlaysRequest) (*models.SessionView, error)
	DismissOverlays(ctx context.Context, id uuid.UUID) (*models.SessionView, error)
	// Update runs fn against the stored session under the session's write
	// lock and saves the result when fn succeeds.
	Update(ctx context.Context, id uuid.UUID, fn func(*models.Session) error) (*models.Session, error)
}

type sessionService struct {
	repo      repository.SessionRepository
	catalog   config.Catalog
	locks     *sessionLocks
	sanitizer *bluemonday.Policy
}

func NewSessionService(repo repository.SessionRepository, catalog config.Catalog) SessionService {
	return &sessionService{
		repo:      repo,
		catalog:   catalog,
		locks:     newSessionLocks(),
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *sessionService) StartSession(ctx context.Context) (*models.Session, error) {

	now := time.Now()
	session := &models.Session{
		ID:        uuid.New(),
		Currency:  s.catalog.DefaultCurrency,
		Items:     []models.LineItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, errors.CacheError("Failed to create session").WithError(err)
	}

	metrics.RecordSessionStarted()

	return session, nil
}

func (s *sessionService) GetSession(ctx context.Context, id uuid.UUID) (*models.SessionView, error) {

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return sessionView(session), nil
}

func (s *sessionService) EndSession(ctx context.Context, id uuid.UUID) error {

	unlock := s.locks.lock(id)
	defer unlock()

	if err := s.repo.DeleteSession(ctx, id); err != nil {
		return errors.CacheError("Failed to end session").WithError(err)
	}

	return nil
}

func (s *sessionService) SetCategory(ctx context.Context, id uuid.UUID, category string) (*models.SessionView, error) {

	category = plainText(s.sanitizer, category)

	return s.updateView(ctx, id, func(session *models.Session) error {
		session.Category = category
		return nil
	})
}

func (s *sessionService) SetCurrency(ctx context.Context, id uuid.UUID, currency string) (*models.SessionView, error) {

	if !s.catalog.IsSupported(currency) {
		return nil, errors.AddValidationError("currency", "unsupported currency "+currency)
	}

	return s.updateView(ctx, id, func(session *models.Session) error {
		session.Currency = currency
		return nil
	})
}

func (s *sessionService) SetOverlays(ctx context.Context, id uuid.UUID, req *models.SetOverlaysRequest) (*models.SessionView, error) {

	return s.updateView(ctx, id, func(session *models.Session) error {
		if req.CurrencyActive != nil {
			session.CurrencyActive = *req.CurrencyActive
		}
		if req.MinicartActive != nil {
			session.MinicartActive = *req.MinicartActive
		}
		return nil
	})
}

func (s *sessionService) DismissOverlays(ctx context.Context, id uuid.UUID) (*models.SessionView, error) {

	return s.updateView(ctx, id, func(session *models.Session) error {
		session.CurrencyActive = false
		session.MinicartActive = false
		return nil
	})
}

func (s *sessionService) Update(ctx context.Context, id uuid.UUID, fn func(*models.Session) error) (*models.Session, error) {

	unlock := s.locks.lock(id)
	defer unlock()

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	session.UpdatedAt = time.Now()

	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, errors.CacheError("Failed to save session").WithError(err)
	}

	return session, nil
}

func (s *sessionService) updateView(ctx context.Context, id uuid.UUID, fn func(*models.Session) error) (*models.SessionView, error) {

	session, err := s.Update(ctx, id, fn)
	if err != nil {
		return nil, err
	}

	return sessionView(session), nil
}

func (s *sessionService) load(ctx context.Context, id uuid.UUID) (*models.Session, error) {

	session, err := s.repo.GetSession(ctx, id)
	if err != nil {
		if stdErrors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.NotFoundError("Session not found").WithError(err)
		}
		return nil, errors.CacheError("Failed to load session").WithError(err)
	}

	return session, nil
}

func sessionView(session *models.Session) *models.SessionView {
	return &models.SessionView{
		ID:             session.ID,
		Category:       session.Category,
		Currency:       session.Currency,
		CurrencyActive: session.CurrencyActive,
		MinicartActive: session.MinicartActive,
		Overlay:        session.Overlay(),
		Cart:           cart.NewStore(session.Items).View(session.Currency),
	}
}
