package handlers

import (
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/google/uuid"
)

// sessionID reads the id placed in the context by the session middleware.
// It writes a 401 and returns false when there is none.
func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		middleware.LoggerFromContext(r.Context()).Warn("Request reached a session route without a session")
		response.Error(w, errors.UnauthorizedError("Session required"))
		return uuid.Nil, false
	}

	return id, true
}

func lineItemID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 0 {
		response.Error(w, errors.BadRequestError("Invalid line item id").WithDetail("id must be a non-negative integer"))
		return 0, false
	}

	return id, true
}
