package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ViewService struct {
	mock.Mock
}

func (m *ViewService) Resolve(ctx context.Context, sessionID uuid.UUID, path string) (*models.ViewResponse, error) {
	args := m.Called(ctx, sessionID, path)

	resp, _ := args.Get(0).(*models.ViewResponse)

	return resp, args.Error(1)
}
