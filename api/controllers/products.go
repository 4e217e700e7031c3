package controllers

import (
	"net/http"
	"strings"

	"github.com/benjaminbelloeil/portfolio-api/api/responses"
	"github.com/benjaminbelloeil/portfolio-api/internal/catalog"
	"github.com/benjaminbelloeil/portfolio-api/pkg/enums"
	pkgerrors "github.com/benjaminbelloeil/portfolio-api/pkg/errors"
	"github.com/benjaminbelloeil/portfolio-api/pkg/logger"
)

// Products lists the catalog, optionally filtered by ?category=.
func Products(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.URL.Query().Get("category"))
		if raw == "" {
			responses.WriteJSON(w, http.StatusOK, map[string]any{"products": catalog.Products()})
			return
		}

		category, err := enums.ParseProductCategory(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid product category"))
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{"products": catalog.ProductsByCategory(category)})
	}
}
