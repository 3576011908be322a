package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cart"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/telemetry"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/aaravmahajanofficial/storefront/internal/services")

type CartService interface {
	GetCart(ctx context.Context, sessionID uuid.UUID) (*models.CartView, error)
	AddItem(ctx context.Context, sessionID uuid.UUID, req *models.AddItemRequest) (*models.CartView, error)
	RemoveItem(ctx context.Context, sessionID uuid.UUID, uniqueID int) (*models.CartView, error)
	UpdateOption(ctx context.Context, sessionID uuid.UUID, uniqueID int, req *models.UpdateOptionRequest) (*models.CartView, error)
	ReplaceCart(ctx context.Context, sessionID uuid.UUID, req *models.ReplaceCartRequest) (*models.CartView, error)
}

type cartService struct {
	sessions  SessionService
	catalog   CatalogService
	sanitizer *bluemonday.Policy
}

func NewCartService(sessions SessionService, catalog CatalogService) CartService {
	return &cartService{
		sessions:  sessions,
		catalog:   catalog,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *cartService) GetCart(ctx context.Context, sessionID uuid.UUID) (*models.CartView, error) {

	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &session.Cart, nil
}

func (s *cartService) AddItem(ctx context.Context, sessionID uuid.UUID, req *models.AddItemRequest) (*models.CartView, error) {

	product, err := s.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	options := s.sanitizeOptions(req.SelectedOptions)

	return s.mutate(ctx, cart.OpAdd, sessionID, func(store *cart.Store) error {
		_, err := store.Add(product, options)
		return err
	})
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID uuid.UUID, uniqueID int) (*models.CartView, error) {

	return s.mutate(ctx, cart.OpRemove, sessionID, func(store *cart.Store) error {
		return store.Remove(uniqueID)
	})
}

func (s *cartService) UpdateOption(ctx context.Context, sessionID uuid.UUID, uniqueID int, req *models.UpdateOptionRequest) (*models.CartView, error) {

	optionID := plainText(s.sanitizer, req.OptionID)
	value := plainText(s.sanitizer, req.Value)

	return s.mutate(ctx, cart.OpUpdateOption, sessionID, func(store *cart.Store) error {
		_, err := store.UpdateOption(uniqueID, optionID, value)
		return err
	})
}

func (s *cartService) ReplaceCart(ctx context.Context, sessionID uuid.UUID, req *models.ReplaceCartRequest) (*models.CartView, error) {

	items := make([]models.LineItem, len(req.Items))
	for i, item := range req.Items {
		item.SelectedOptions = s.sanitizeOptions(item.SelectedOptions)
		items[i] = item
	}

	return s.mutate(ctx, cart.OpReplaceAll, sessionID, func(store *cart.Store) error {
		return store.ReplaceAll(items)
	})
}

// mutate applies op to the session's cart and stores the result.
func (s *cartService) mutate(ctx context.Context, name cart.Op, sessionID uuid.UUID, op func(*cart.Store) error) (*models.CartView, error) {

	ctx, span := tracer.Start(ctx, "CartService "+string(name), trace.WithAttributes(
		attribute.String("session.id", sessionID.String()),
	))
	defer span.End()

	logger := middleware.LoggerFromContext(ctx)

	var view models.CartView

	_, err := s.sessions.Update(ctx, sessionID, func(session *models.Session) error {
		store := cart.NewStore(session.Items)

		unsubscribe := store.Subscribe(func(change cart.Change) {
			metrics.RecordCartChange(string(change.Op), len(change.After))
			logger.Info("Cart updated",
				slog.String("sessionId", sessionID.String()),
				slog.String("op", string(change.Op)),
				slog.Int("lineItemsBefore", len(change.Before)),
				slog.Int("lineItemsAfter", len(change.After)),
			)
		})
		defer unsubscribe()

		if err := op(store); err != nil {
			return err
		}

		session.Items = store.Items()
		view = store.View(session.Currency)

		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("cart.line_items", len(view.Items)))

	return &view, nil
}

func (s *cartService) sanitizeOptions(options []models.OptionPair) []models.OptionPair {
	if options == nil {
		return nil
	}

	sanitized := make([]models.OptionPair, len(options))
	for i, opt := range options {
		sanitized[i] = models.OptionPair{
			ID:    plainText(s.sanitizer, opt.ID),
			Value: plainText(s.sanitizer, opt.Value),
		}
	}

	return sanitized
}
