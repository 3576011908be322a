package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type SessionService struct {
	mock.Mock
}

func (m *SessionService) StartSession(ctx context.Context) (*models.Session, error) {
	args := m.Called(ctx)

	session, _ := args.Get(0).(*models.Session)

	return session, args.Error(1)
}

func (m *SessionService) GetSession(ctx context.Context, id uuid.UUID) (*models.SessionView, error) {
	args := m.Called(ctx, id)

	view, _ := args.Get(0).(*models.SessionView)

	return view, args.Error(1)
}

func (m *SessionService) EndSession(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *SessionService) SetCategory(ctx context.Context, id uuid.UUID, category string) (*models.SessionView, error) {
	args := m.Called(ctx, id, category)

	view, _ := args.Get(0).(*models.SessionView)

	return view, args.Error(1)
}

func (m *SessionService) SetCurrency(ctx context.Context, id uuid.UUID, currency string) (*models.SessionView, error) {
	args := m.Called(ctx, id, currency)

	view, _ := args.Get(0).(*models.SessionView)

	return view, args.Error(1)
}

func (m *SessionService) SetOverlays(ctx context.Context, id uuid.UUID, req *models.SetOverlaysRequest) (*models.SessionView, error) {
	args := m.Called(ctx, id, req)

	view, _ := args.Get(0).(*models.SessionView)

	return view, args.Error(1)
}

func (m *SessionService) DismissOverlays(ctx context.Context, id uuid.UUID) (*models.SessionView, error) {
	args := m.Called(ctx, id)

	view, _ := args.Get(0).(*models.SessionView)

	return view, args.Error(1)
}

func (m *SessionService) Update(ctx context.Context, id uuid.UUID, fn func(*models.Session) error) (*models.Session, error) {
	args := m.Called(ctx, id, fn)

	session, _ := args.Get(0).(*models.Session)

	return session, args.Error(1)
}
