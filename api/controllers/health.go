package controllers

import (
	"net/http"

	"github.com/benjaminbelloeil/portfolio-api/api/responses"
	"github.com/benjaminbelloeil/portfolio-api/pkg/config"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Portfolio-Env", cfg.App.Env)
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "live"})
	}
}
