package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OptionPair struct {
	ID    string `json:"id"    validate:"required,max=100"`
	Value string `json:"value" validate:"required,max=200"`
}

type AttributeItem struct {
	ID           string `json:"id"`
	Value        string `json:"value"`
	DisplayValue string `json:"display_value"`
}

type Attribute struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Items []AttributeItem `json:"items"`
}

type Product struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	Brand       string                     `json:"brand"`
	Description string                     `json:"description"`
	Category    string                     `json:"category"`
	InStock     bool                       `json:"in_stock"`
	Gallery     []string                   `json:"gallery"`
	Attributes  []Attribute                `json:"attributes"`
	Prices      map[string]decimal.Decimal `json:"prices"`
	// Default configuration used when an add request carries no options.
	SelectedOptions []OptionPair `json:"selected_options,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// DefaultOptions picks the first item of every attribute.
func (p *Product) DefaultOptions() []OptionPair {
	var options []OptionPair

	for _, attr := range p.Attributes {
		if len(attr.Items) == 0 {
			continue
		}
		options = append(options, OptionPair{ID: attr.ID, Value: attr.Items[0].Value})
	}

	return options
}

func (p *Product) Price(currency string) (decimal.Decimal, bool) {
	price, ok := p.Prices[currency]
	return price, ok
}
