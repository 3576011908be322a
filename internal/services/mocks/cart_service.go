package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, sessionID uuid.UUID) (*models.CartView, error) {
	args := m.Called(ctx, sessionID)

	view, _ := args.Get(0).(*models.CartView)

	return view, args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, sessionID uuid.UUID, req *models.AddItemRequest) (*models.CartView, error) {
	args := m.Called(ctx, sessionID, req)

	view, _ := args.Get(0).(*models.CartView)

	return view, args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, sessionID uuid.UUID, uniqueID int) (*models.CartView, error) {
	args := m.Called(ctx, sessionID, uniqueID)

	view, _ := args.Get(0).(*models.CartView)

	return view, args.Error(1)
}

func (m *CartService) UpdateOption(ctx context.Context, sessionID uuid.UUID, uniqueID int, req *models.UpdateOptionRequest) (*models.CartView, error) {
	args := m.Called(ctx, sessionID, uniqueID, req)

	view, _ := args.Get(0).(*models.CartView)

	return view, args.Error(1)
}

func (m *CartService) ReplaceCart(ctx context.Context, sessionID uuid.UUID, req *models.ReplaceCartRequest) (*models.CartView, error) {
	args := m.Called(ctx, sessionID, req)

	view, _ := args.Get(0).(*models.CartView)

	return view, args.Error(1)
}
