package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/ujwegh/keytoheart/docs"
	"github.com/ujwegh/keytoheart/internal/app/handlers"
	middlware "github.com/ujwegh/keytoheart/internal/app/middleware"
	"github.com/ujwegh/keytoheart/internal/app/models"
)

func NewAppRouter(ah *handlers.AuthHandler, bh *handlers.BonusHandler, adh *handlers.AdminHandler,
	oh *handlers.OrdersHandler, am middlware.AuthMiddleware) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middlware.RequestLogger)
	r.Use(middlware.ResponseLogger)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Post("/api/auth/code", ah.RequestCode)
	r.Post("/api/auth/verify", ah.VerifyCode)
	r.Post("/api/admin/login", ah.AdminLogin)

	r.Group(func(r chi.Router) {
		r.Use(am.Authenticate)

		r.Group(func(r chi.Router) {
			r.Use(middlware.RequireRole(models.RoleCustomer))
			r.Get("/api/bonuses", bh.GetBonuses)
			r.Get("/api/bonuses/history", bh.GetHistory)
			r.Post("/api/bonuses/redeem", bh.Redeem)
			r.Post("/api/orders", oh.CreateOrder)
			r.Get("/api/orders", oh.GetOrders)
		})

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(middlware.RequireRole(models.RoleAdmin))
			r.Post("/bonuses", adh.Adjust)
			r.Get("/bonuses/{phone}", adh.GetAccount)
			r.Get("/bonuses/{phone}/history", adh.GetHistory)
			r.Get("/bonuses/{phone}/reconcile", adh.Reconcile)
			r.Get("/orders/{id}", oh.GetOrder)
			r.Patch("/orders/{id}/status", oh.UpdateStatus)
			r.Delete("/orders/{id}", oh.DeleteOrder)
		})
	})
	return r
}
