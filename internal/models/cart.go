package models

import "github.com/shopspring/decimal"

// LineItem is one distinct product configuration in the cart. Product fields
// are copied at insertion time and never refreshed.
type LineItem struct {
	UniqueID        int                        `json:"unique_id"        validate:"min=0"`
	ProductID       string                     `json:"product_id"       validate:"required"`
	Name            string                     `json:"name"`
	Brand           string                     `json:"brand"`
	Gallery         []string                   `json:"gallery,omitempty"`
	Attributes      []Attribute                `json:"attributes,omitempty"`
	Prices          map[string]decimal.Decimal `json:"prices,omitempty"`
	SelectedOptions []OptionPair               `json:"selected_options" validate:"dive"`
	Quantity        int                        `json:"quantity"         validate:"min=1"`
}

type CartView struct {
	Items    []LineItem      `json:"items"`
	Quantity int             `json:"quantity"`
	Currency string          `json:"currency"`
	Total    decimal.Decimal `json:"total"`
}

type AddItemRequest struct {
	ProductID       string       `json:"product_id"       validate:"required,max=100"`
	SelectedOptions []OptionPair `json:"selected_options" validate:"omitempty,dive"`
}

type UpdateOptionRequest struct {
	OptionID string `json:"option_id" validate:"required,max=100"`
	Value    string `json:"value"     validate:"required,max=200"`
}

type ReplaceCartRequest struct {
	Items []LineItem `json:"items" validate:"dive"`
}
