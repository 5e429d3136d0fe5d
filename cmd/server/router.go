package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/demo-api/internal/api"
	"github.com/phrazzld/demo-api/internal/api/shared"
	apiMiddleware "github.com/phrazzld/demo-api/internal/api/middleware"
	"github.com/phrazzld/demo-api/internal/observability"
)

// resource is the route set of a CRUD handler.
type resource interface {
	List(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(observability.MetricsMiddleware(app.metrics))
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.Recoverer(api.HandleError))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, api.MessageRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, api.MessageMethodNotAllowed)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", app.authHandler.Register)
		r.Post("/login", app.authHandler.Login)
	})

	mountResource(r, "/courses", app.courseHandler)
	mountResource(r, "/orders", app.orderHandler)
	mountResource(r, "/products", app.productHandler)
	mountResource(r, "/students", app.studentHandler)

	r.Get("/health", app.health.Health)
	r.Get("/ready", app.health.Ready)
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}

func mountResource(r chi.Router, path string, h resource) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
