package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type SessionHandler struct {
	sessionService service.SessionService
	validator      *validator.Validate
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, validator: validator.New()}
}

func (h *SessionHandler) GetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := sessionID(w, r)
		if !ok {
			return
		}

		session, err := h.sessionService.GetSession(r.Context(), id)
		if err != nil {
			logger.Error("Failed to fetch session", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, session)
	}
}

func (h *SessionHandler) EndSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := sessionID(w, r)
		if !ok {
			return
		}

		if err := h.sessionService.EndSession(r.Context(), id); err != nil {
			logger.Error("Failed to end session", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		w.Header().Del(middleware.SessionTokenHeader)

		logger.Info("Session ended")
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *SessionHandler) SetCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.SetCategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		session, err := h.sessionService.SetCategory(r.Context(), id, req.Category)
		if err != nil {
			logger.Error("Failed to set category", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Category selected", slog.String("category", session.Category))
		response.Success(w, http.StatusOK, session)
	}
}

func (h *SessionHandler) SetCurrency() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.SetCurrencyRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		session, err := h.sessionService.SetCurrency(r.Context(), id, req.Currency)
		if err != nil {
			logger.Warn("Failed to set currency", slog.String("currency", req.Currency), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Currency selected", slog.String("currency", session.Currency))
		response.Success(w, http.StatusOK, session)
	}
}

func (h *SessionHandler) SetOverlays() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.SetOverlaysRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		session, err := h.sessionService.SetOverlays(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to toggle overlays", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, session)
	}
}

func (h *SessionHandler) DismissOverlays() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := sessionID(w, r)
		if !ok {
			return
		}

		session, err := h.sessionService.DismissOverlays(r.Context(), id)
		if err != nil {
			logger.Error("Failed to dismiss overlays", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, session)
	}
}
