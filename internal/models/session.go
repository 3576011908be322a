package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	OverlayMinicart = "overlay"
	OverlayCurrency = "hidden-overlay"
)

// Session is the per-visitor storefront state: selection flags plus the cart.
type Session struct {
	ID             uuid.UUID  `json:"id"`
	Category       string     `json:"category"`
	Currency       string     `json:"currency"`
	CurrencyActive bool       `json:"currency_active"`
	MinicartActive bool       `json:"minicart_active"`
	Items          []LineItem `json:"items"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Overlay returns the backdrop shown behind open menus. The mini-cart wins
// over the currency menu.
func (s *Session) Overlay() string {
	switch {
	case s.MinicartActive:
		return OverlayMinicart
	case s.CurrencyActive:
		return OverlayCurrency
	default:
		return ""
	}
}

type SessionView struct {
	ID             uuid.UUID `json:"id"`
	Category       string    `json:"category"`
	Currency       string    `json:"currency"`
	CurrencyActive bool      `json:"currency_active"`
	MinicartActive bool      `json:"minicart_active"`
	Overlay        string    `json:"overlay,omitempty"`
	Cart           CartView  `json:"cart"`
}

type SessionClaims struct {
	SessionID uuid.UUID `json:"sid"`
	jwt.RegisteredClaims
}

type SetCategoryRequest struct {
	Category string `json:"category" validate:"max=100"`
}

type SetCurrencyRequest struct {
	Currency string `json:"currency" validate:"required,len=3,uppercase"`
}

type SetOverlaysRequest struct {
	CurrencyActive *bool `json:"currency_active,omitempty"`
	MinicartActive *bool `json:"minicart_active,omitempty"`
}
