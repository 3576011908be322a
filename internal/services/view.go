package service

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/views"
	"github.com/google/uuid"
)

// ViewService resolves a storefront path and loads what that view shows,
// priced in the session's currency.
type ViewService interface {
	Resolve(ctx context.Context, sessionID uuid.UUID, path string) (*models.ViewResponse, error)
}

type viewService struct {
	resolver *views.Resolver
	sessions SessionService
	catalog  CatalogService
}

func NewViewService(resolver *views.Resolver, sessions SessionService, catalog CatalogService) ViewService {
	return &viewService{resolver: resolver, sessions: sessions, catalog: catalog}
}

func (s *viewService) Resolve(ctx context.Context, sessionID uuid.UUID, path string) (*models.ViewResponse, error) {

	view, ok := s.resolver.Resolve(ctx, path)
	if !ok {
		return nil, errors.NotFoundError("Page not found").WithDetail("no view for path " + path)
	}

	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resp := &models.ViewResponse{View: view, Currency: session.Currency}

	switch view.Kind {
	case models.ViewListing:
		products, err := s.catalog.ListProducts(ctx, view.Category)
		if err != nil {
			return nil, err
		}
		resp.Products = products

	case models.ViewDetail:
		product, err := s.catalog.GetProduct(ctx, view.ProductID)
		if err != nil {
			return nil, err
		}
		resp.Product = product

	case models.ViewCart:
		resp.Cart = &session.Cart
	}

	return resp, nil
}
