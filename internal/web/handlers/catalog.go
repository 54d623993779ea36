package handlers

import (
	"net/http"

	"github.com/kozaktomas/beauty-advisor/internal/advice"
)

// CatalogHandler exposes the advice tables
type CatalogHandler struct {
	catalog *advice.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *advice.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Get returns the full catalog
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog)
}
