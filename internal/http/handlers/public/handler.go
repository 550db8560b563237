package public

import "github.com/attarah-next/internal/provider"

// Handler is the entry point for storefront and guest APIs.
type Handler struct {
	*provider.Container
}

// New creates the storefront handler
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
