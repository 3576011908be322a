package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

type ViewHandler struct {
	viewService service.ViewService
}

func NewViewHandler(viewService service.ViewService) *ViewHandler {
	return &ViewHandler{viewService: viewService}
}

// for eg: GET /views?path=/category/clothes
func (h *ViewHandler) ResolveView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := sessionID(w, r)
		if !ok {
			return
		}

		path := r.URL.Query().Get("path")
		if path == "" {
			response.Error(w, errors.BadRequestError("Query parameter 'path' is required"))
			return
		}

		view, err := h.viewService.Resolve(r.Context(), id, path)
		if err != nil {
			logger.Warn("Failed to resolve view", slog.String("path", path), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}
