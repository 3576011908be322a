package models

type ViewKind string

const (
	ViewListing ViewKind = "listing"
	ViewDetail  ViewKind = "detail"
	ViewCart    ViewKind = "cart"
)

type View struct {
	Kind      ViewKind `json:"kind"`
	Path      string   `json:"path"`
	Category  string   `json:"category,omitempty"`
	ProductID string   `json:"product_id,omitempty"`
}

type ViewResponse struct {
	View     View       `json:"view"`
	Currency string     `json:"currency"`
	Products []*Product `json:"products,omitempty"`
	Product  *Product   `json:"product,omitempty"`
	Cart     *CartView  `json:"cart,omitempty"`
}
