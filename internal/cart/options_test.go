package cart_test

import (
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/cart"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSameOptions(t *testing.T) {
	tests := []struct {
		name string
		a, b []models.OptionPair
		want bool
	}{
		{name: "both empty", a: nil, b: []models.OptionPair{}, want: true},
		{name: "same order", a: []models.OptionPair{{ID: "size", Value: "S"}}, b: []models.OptionPair{{ID: "size", Value: "S"}}, want: true},
		{
			name: "different order",
			a:    []models.OptionPair{{ID: "size", Value: "S"}, {ID: "color", Value: "red"}},
			b:    []models.OptionPair{{ID: "color", Value: "red"}, {ID: "size", Value: "S"}},
			want: true,
		},
		{name: "different value", a: []models.OptionPair{{ID: "size", Value: "S"}}, b: []models.OptionPair{{ID: "size", Value: "M"}}, want: false},
		{name: "different length", a: []models.OptionPair{{ID: "size", Value: "S"}}, b: nil, want: false},
		{
			name: "same ids swapped values",
			a:    []models.OptionPair{{ID: "a", Value: "1"}, {ID: "b", Value: "2"}},
			b:    []models.OptionPair{{ID: "a", Value: "2"}, {ID: "b", Value: "1"}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cart.SameOptions(tt.a, tt.b))
			assert.Equal(t, tt.want, cart.SameOptions(tt.b, tt.a))
		})
	}
}

func TestWithOption(t *testing.T) {
	original := []models.OptionPair{
		{ID: "color", Value: "red"},
		{ID: "size", Value: "S"},
		{ID: "color", Value: "green"},
	}

	updated := cart.WithOption(original, "color", "blue")

	assert.Equal(t, []models.OptionPair{{ID: "size", Value: "S"}, {ID: "color", Value: "blue"}}, updated)
	assert.Len(t, original, 3, "input must not be modified")
	assert.Equal(t, "red", original[0].Value)
}
