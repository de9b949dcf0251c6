package categories

import (
	"net/http"

	"github.com/collabogames/collabo-go/auth"
)

// Handlers provides the HTTP handler for the category listing.
type Handlers struct {
	store *Store
}

// NewHandlers creates new category Handlers.
func NewHandlers(store *Store) *Handlers {
	return &Handlers{store: store}
}

// HandleList handles GET /categories. When the store is empty or
// unreachable the endpoint answers with the fixed default list instead of
// an error, so the response is always a usable set of names.
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := h.store.List(r.Context())
		if err != nil || len(names) == 0 {
			names = DefaultCategories()
		}

		auth.WriteJSON(w, http.StatusOK, names)
	}
}
