package middleware

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const SessionTokenHeader = "X-Session-Token"

type sessionContextKey struct{}

var SessionContextKey = sessionContextKey{}

// SessionStarter creates the state behind a fresh session token.
type SessionStarter interface {
	StartSession(ctx context.Context) (*models.Session, error)
}

// SessionLimiter bounds how often one client may start a session.
type SessionLimiter interface {
	AllowSessionStart(ctx context.Context, client string) (bool, time.Duration, error)
}

type SessionMiddleware struct {
	secret   []byte
	ttl      time.Duration
	sessions SessionStarter
	limiter  SessionLimiter
}

func NewSessionMiddleware(secret []byte, ttl time.Duration, sessions SessionStarter, limiter SessionLimiter) *SessionMiddleware {
	return &SessionMiddleware{secret: secret, ttl: ttl, sessions: sessions, limiter: limiter}
}

// Attach resolves the session from the X-Session-Token header. A missing or
// expired token starts a new session. Any other invalid token is rejected.
// The (re)issued token is echoed in the response header.
func (m *SessionMiddleware) Attach(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		sessionID, err := m.sessionFromToken(r.Header.Get(SessionTokenHeader))

		switch {
		case err == nil:
		case stdErrors.Is(err, errMissingToken), stdErrors.Is(err, jwt.ErrTokenExpired):
			if !m.allowStart(w, r) {
				return
			}
			session, startErr := m.sessions.StartSession(r.Context())
			if startErr != nil {
				logger.Error("Failed to start session", slog.String("error", startErr.Error()))
				response.Error(w, startErr)
				return
			}
			sessionID = session.ID
			logger.Info("Session started", slog.String("sessionId", sessionID.String()))
		default:
			logger.Warn("Session token rejected", slog.String("error", err.Error()))
			response.Error(w, errors.UnauthorizedError("Invalid session token"))
			return
		}

		token, err := m.IssueToken(sessionID)
		if err != nil {
			logger.Error("Failed to sign session token", slog.String("error", err.Error()))
			response.Error(w, errors.InternalError("Failed to issue session token").WithError(err))
			return
		}
		w.Header().Set(SessionTokenHeader, token)

		ctx := context.WithValue(r.Context(), SessionContextKey, sessionID)

		requestScopedLogger := logger.With(slog.String("sessionId", sessionID.String()))
		ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// allowStart applies the limiter to a session start. Limiter failures let the
// request through.
func (m *SessionMiddleware) allowStart(w http.ResponseWriter, r *http.Request) bool {
	if m.limiter == nil {
		return true
	}

	logger := LoggerFromContext(r.Context())
	client := clientAddr(r)

	allowed, retryAfter, err := m.limiter.AllowSessionStart(r.Context(), client)
	if err != nil {
		logger.Error("Session rate limit check failed", slog.String("client", client), slog.String("error", err.Error()))
		return true
	}

	if !allowed {
		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
		response.Error(w, errors.TooManyRequestsError("Too many new sessions, try again later"))
		return false
	}

	return true
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// IssueToken signs an HS256 token for the session that expires after the
// session lifetime.
func (m *SessionMiddleware) IssueToken(sessionID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &models.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

var errMissingToken = stdErrors.New("missing session token")

func (m *SessionMiddleware) sessionFromToken(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, errMissingToken
	}

	claims := &models.SessionClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return uuid.Nil, err
	}

	if claims.SessionID == uuid.Nil {
		return uuid.Nil, stdErrors.New("session token carries no session id")
	}

	return claims.SessionID, nil
}

func SessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(SessionContextKey).(uuid.UUID)
	return id, ok
}
