// Package views maps storefront URL paths onto the view a client should
// render.
package views

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/models"
)

type captureKey struct{}

type capture struct {
	view  models.View
	found bool
}

// Resolver matches paths with the same pattern syntax the API router uses.
type Resolver struct {
	mux *http.ServeMux
}

func NewResolver() *Resolver {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", record(func(r *http.Request) models.View {
		return models.View{Kind: models.ViewListing}
	}))
	mux.HandleFunc("GET /category/{category}", record(func(r *http.Request) models.View {
		return models.View{Kind: models.ViewListing, Category: r.PathValue("category")}
	}))
	mux.HandleFunc("GET /product/{id}", record(func(r *http.Request) models.View {
		return models.View{Kind: models.ViewDetail, ProductID: r.PathValue("id")}
	}))
	mux.HandleFunc("GET /cart", record(func(r *http.Request) models.View {
		return models.View{Kind: models.ViewCart}
	}))

	return &Resolver{mux: mux}
}

// Resolve returns the view for path. Query strings and fragments are ignored.
func (v *Resolver) Resolve(ctx context.Context, path string) (models.View, bool) {

	u, err := url.Parse(path)
	if err != nil || !strings.HasPrefix(u.Path, "/") {
		return models.View{}, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return models.View{}, false
	}
	req.URL = &url.URL{Path: u.Path, RawPath: u.RawPath}

	c := &capture{}
	req = req.WithContext(context.WithValue(ctx, captureKey{}, c))

	v.mux.ServeHTTP(discardWriter{header: http.Header{}}, req)

	if !c.found {
		return models.View{}, false
	}

	c.view.Path = u.Path

	return c.view, true
}

func record(build func(*http.Request) models.View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, ok := r.Context().Value(captureKey{}).(*capture); ok {
			c.view = build(r)
			c.found = true
		}
	}
}

// discardWriter swallows the not-found and redirect replies of the mux.
type discardWriter struct {
	header http.Header
}

func (d discardWriter) Header() http.Header         { return d.header }
func (d discardWriter) Write(b []byte) (int, error) { return len(b), nil }
func (d discardWriter) WriteHeader(int)             {}
