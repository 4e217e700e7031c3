package controllers

import (
	"net/http"

	"github.com/benjaminbelloeil/portfolio-api/api/responses"
	"github.com/benjaminbelloeil/portfolio-api/pkg/enums"
)

// Services lists the contact-form service options the storefront renders.
func Services() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, map[string]any{"services": enums.ServiceKinds()})
	}
}
