package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/benjaminbelloeil/portfolio-api/api/controllers"
	"github.com/benjaminbelloeil/portfolio-api/api/middleware"
	"github.com/benjaminbelloeil/portfolio-api/internal/submission"
	"github.com/benjaminbelloeil/portfolio-api/pkg/config"
	"github.com/benjaminbelloeil/portfolio-api/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	submissionService submission.Service,
	counterStore middleware.CounterStore,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	contactPolicy := middleware.NewSubmissionPolicy(
		"contact",
		cfg.RateLimit.ContactWindow,
		cfg.RateLimit.ContactLimit,
	)
	orderPolicy := middleware.NewSubmissionPolicy(
		"order",
		cfg.RateLimit.OrderWindow,
		cfg.RateLimit.OrderLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", controllers.Products(logg))
		r.Get("/services", controllers.Services())
		r.With(middleware.SubmissionRateLimit(contactPolicy, counterStore, logg)).
			Post("/send", controllers.SendContact(submissionService, logg))
		r.With(middleware.SubmissionRateLimit(orderPolicy, counterStore, logg)).
			Post("/send-order", controllers.SendOrder(submissionService, logg))
	})

	return r
}
