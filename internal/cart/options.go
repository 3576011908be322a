package cart

import (
	"cmp"
	"slices"

	"github.com/aaravmahajanofficial/storefront/internal/models"
)

// SameOptions reports whether a and b hold the same option pairs. Order is
// ignored: both sides are sorted by (id, value) and compared field by field.
func SameOptions(a, b []models.OptionPair) bool {
	if len(a) != len(b) {
		return false
	}

	ca, cb := canonical(a), canonical(b)
	for i := range ca {
		if ca[i] != cb[i] {
			return false
		}
	}

	return true
}

func canonical(options []models.OptionPair) []models.OptionPair {
	sorted := slices.Clone(options)
	slices.SortFunc(sorted, func(x, y models.OptionPair) int {
		if c := cmp.Compare(x.ID, y.ID); c != 0 {
			return c
		}
		return cmp.Compare(x.Value, y.Value)
	})

	return sorted
}

// WithOption drops every pair for optionID and appends the new one.
func WithOption(options []models.OptionPair, optionID, value string) []models.OptionPair {
	updated := make([]models.OptionPair, 0, len(options)+1)

	for _, opt := range options {
		if opt.ID != optionID {
			updated = append(updated, opt)
		}
	}

	return append(updated, models.OptionPair{ID: optionID, Value: value})
}
