package controllers

import (
	"net/http"

	"github.com/benjaminbelloeil/portfolio-api/api/responses"
	"github.com/benjaminbelloeil/portfolio-api/api/validators"
	"github.com/benjaminbelloeil/portfolio-api/internal/submission"
	"github.com/benjaminbelloeil/portfolio-api/pkg/logger"
)

// SendOrder handles checkout order submissions.
func SendOrder(svc submission.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body submission.OrderRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := svc.SendOrder(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSent(w, "Order email sent successfully", id)
	}
}
