// Package cart holds the cart state store: an ordered list of line items
// that only changes through Add, Remove, UpdateOption and ReplaceAll.
//
// Every operation computes a fresh slice and swaps it in as a whole, so a
// reader never sees a half-applied change.
package cart

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/shopspring/decimal"
)

type Op string

const (
	OpAdd          Op = "add"
	OpRemove       Op = "remove"
	OpUpdateOption Op = "update_option"
	OpReplaceAll   Op = "replace_all"
)

// Change is delivered to observers after a committed operation.
type Change struct {
	Op     Op
	Before []models.LineItem
	After  []models.LineItem
}

type Observer func(Change)

type subscription struct {
	id int
	fn Observer
}

type Store struct {
	mu        sync.RWMutex
	items     []models.LineItem
	observers []subscription
	nextID    int
}

func NewStore(items []models.LineItem) *Store {
	return &Store{items: cloneItems(items)}
}

// Items returns a copy of the current cart in insertion order.
func (s *Store) Items() []models.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneItems(s.items)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Quantity is the number of units across all line items.
func (s *Store) Quantity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}

	return total
}

// Total sums price times quantity in the given currency. Items without a
// price in that currency contribute nothing.
func (s *Store) Total(currency string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, item := range s.items {
		price, ok := item.Prices[currency]
		if !ok {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total
}

func (s *Store) View(currency string) models.CartView {
	return models.CartView{
		Items:    s.Items(),
		Quantity: s.Quantity(),
		Currency: currency,
		Total:    s.Total(currency),
	}
}

// Subscribe registers fn to be called after every committed change. The
// returned func removes it.
func (s *Store) Subscribe(fn Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.observers = slices.DeleteFunc(s.observers, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

// Add puts one unit of product into the cart. Empty options fall back to the
// product's default configuration. A line item with the same product and the
// same options is incremented instead of duplicated.
func (s *Store) Add(product *models.Product, options []models.OptionPair) (models.LineItem, error) {
	if product == nil || product.ID == "" {
		return models.LineItem{}, errors.ValidationError("Product ID is required")
	}

	if len(options) == 0 {
		options = product.SelectedOptions
	}
	if options == nil {
		options = []models.OptionPair{}
	}

	var added models.LineItem

	err := s.commit(OpAdd, func(items []models.LineItem) ([]models.LineItem, error) {
		for i, item := range items {
			if item.ProductID == product.ID && SameOptions(item.SelectedOptions, options) {
				updated := slices.Clone(items)
				updated[i].Quantity++
				added = updated[i]
				return updated, nil
			}
		}

		added = models.LineItem{
			UniqueID:        nextUniqueID(items),
			ProductID:       product.ID,
			Name:            product.Name,
			Brand:           product.Brand,
			Gallery:         slices.Clone(product.Gallery),
			Attributes:      cloneAttributes(product.Attributes),
			Prices:          maps.Clone(product.Prices),
			SelectedOptions: slices.Clone(options),
			Quantity:        1,
		}

		return append(slices.Clone(items), added), nil
	})
	if err != nil {
		return models.LineItem{}, err
	}

	return added, nil
}

// Remove takes one unit off the line item. The item disappears when its last
// unit is removed.
func (s *Store) Remove(uniqueID int) error {
	return s.commit(OpRemove, func(items []models.LineItem) ([]models.LineItem, error) {
		i := indexOf(items, uniqueID)
		if i < 0 {
			return nil, errors.LineItemNotFoundError(uniqueID)
		}

		if items[i].Quantity <= 1 {
			return slices.Delete(slices.Clone(items), i, i+1), nil
		}

		updated := slices.Clone(items)
		updated[i].Quantity--

		return updated, nil
	})
}

// UpdateOption sets optionID to value on one line item. Items that end up
// with identical configurations are not merged here; only Add merges.
func (s *Store) UpdateOption(uniqueID int, optionID, value string) (models.LineItem, error) {
	var changed models.LineItem

	err := s.commit(OpUpdateOption, func(items []models.LineItem) ([]models.LineItem, error) {
		i := indexOf(items, uniqueID)
		if i < 0 {
			return nil, errors.LineItemNotFoundError(uniqueID)
		}

		updated := slices.Clone(items)
		updated[i].SelectedOptions = WithOption(items[i].SelectedOptions, optionID, value)
		changed = updated[i]

		return updated, nil
	})

	return changed, err
}

// ReplaceAll swaps in items as the new cart. Unique ids must be distinct and
// every quantity at least one.
func (s *Store) ReplaceAll(items []models.LineItem) error {
	if err := checkItems(items); err != nil {
		return err
	}

	return s.commit(OpReplaceAll, func([]models.LineItem) ([]models.LineItem, error) {
		return cloneItems(items), nil
	})
}

func (s *Store) commit(op Op, apply func([]models.LineItem) ([]models.LineItem, error)) error {
	s.mu.Lock()

	before := s.items
	after, err := apply(before)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	s.items = after
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	change := Change{Op: op, Before: cloneItems(before), After: cloneItems(after)}
	for _, sub := range observers {
		sub.fn(change)
	}

	return nil
}

// nextUniqueID follows the last item's id. If that id is already taken,
// which only happens after ReplaceAll with out-of-order ids, it moves past
// the largest id instead.
func nextUniqueID(items []models.LineItem) int {
	if len(items) == 0 {
		return 0
	}

	next := items[len(items)-1].UniqueID + 1
	if indexOf(items, next) < 0 {
		return next
	}

	highest := items[0].UniqueID
	for _, item := range items[1:] {
		highest = max(highest, item.UniqueID)
	}

	return highest + 1
}

func indexOf(items []models.LineItem, uniqueID int) int {
	return slices.IndexFunc(items, func(item models.LineItem) bool {
		return item.UniqueID == uniqueID
	})
}

func checkItems(items []models.LineItem) error {
	seen := make(map[int]struct{}, len(items))

	for _, item := range items {
		if item.Quantity < 1 {
			return errors.AddValidationError("quantity", fmt.Sprintf("line item %d must have a quantity of at least 1", item.UniqueID))
		}
		if _, dup := seen[item.UniqueID]; dup {
			return errors.AddValidationError("unique_id", fmt.Sprintf("duplicate unique_id %d", item.UniqueID))
		}
		seen[item.UniqueID] = struct{}{}
	}

	return nil
}

func cloneItems(items []models.LineItem) []models.LineItem {
	cloned := make([]models.LineItem, len(items))

	for i, item := range items {
		cloned[i] = item
		cloned[i].SelectedOptions = slices.Clone(item.SelectedOptions)
		cloned[i].Gallery = slices.Clone(item.Gallery)
		cloned[i].Prices = maps.Clone(item.Prices)
		cloned[i].Attributes = cloneAttributes(item.Attributes)
	}

	return cloned
}

func cloneAttributes(attrs []models.Attribute) []models.Attribute {
	if attrs == nil {
		return nil
	}

	cloned := make([]models.Attribute, len(attrs))
	for i, attr := range attrs {
		cloned[i] = attr
		cloned[i].Items = slices.Clone(attr.Items)
	}

	return cloned
}
