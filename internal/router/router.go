package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"estate-ledger/internal/config"
	"estate-ledger/internal/handler"
	"estate-ledger/internal/middleware"
	"estate-ledger/internal/websocket"
)

// Handlers groups every HTTP handler the router mounts. The three item
// handlers serve the same store through different views.
type Handlers struct {
	Items        *handler.ItemHandler
	ActiveItems  *handler.ItemHandler
	DeletedItems *handler.ItemHandler
	Person       *handler.PersonHandler
	House        *handler.HouseHandler
	Ownership    *handler.OwnershipHandler
	Health       *handler.HealthHandler
}

func New(cfg *config.Config, h Handlers, hub *websocket.Hub) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.WriteRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)

	r.Get("/health", h.Health.Check)

	if hub != nil {
		r.Get("/ws", hub.ServeWS)
	}

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(rateLimitMiddleware.Handler)
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/items", func(items chi.Router) {
			items.Get("/", h.Items.List)
			items.Post("/", h.Items.Create)
			items.Get("/{id}", h.Items.Get)
			items.Put("/{id}", h.Items.Replace)
			items.Patch("/{id}", h.Items.Patch)
			items.Delete("/{id}", h.Items.Delete)
		})

		api.Route("/activated-items", func(active chi.Router) {
			active.Get("/", h.ActiveItems.List)
			active.Post("/", h.ActiveItems.Create)
			active.Delete("/", h.ActiveItems.DeleteAll)
			active.Get("/{id}", h.ActiveItems.Get)
			active.Put("/{id}", h.ActiveItems.Replace)
			active.Patch("/{id}", h.ActiveItems.Patch)
			active.Delete("/{id}", h.ActiveItems.Delete)
		})

		api.Route("/deleted-items", func(deleted chi.Router) {
			deleted.Get("/", h.DeletedItems.List)
			deleted.Post("/recover", h.DeletedItems.RecoverAll)
			deleted.Get("/{id}", h.DeletedItems.Get)
			deleted.Put("/{id}", h.DeletedItems.Replace)
			deleted.Patch("/{id}", h.DeletedItems.Patch)
			deleted.Post("/{id}/recover", h.DeletedItems.Recover)
			deleted.Delete("/{id}", h.DeletedItems.Delete)
		})

		api.Route("/persons", func(persons chi.Router) {
			persons.Get("/", h.Person.List)
			persons.Post("/", h.Person.Create)
			persons.Get("/{id}", h.Person.Get)
			persons.Put("/{id}", h.Person.Update)
			persons.Delete("/{id}", h.Person.Delete)
		})

		api.Route("/houses", func(houses chi.Router) {
			houses.Get("/", h.House.List)
			houses.Post("/", h.House.Create)
			houses.Post("/expire-tenancy", h.House.ExpireTenancy)
			houses.Get("/{id}", h.House.Get)
			houses.Put("/{id}", h.House.Update)
			houses.Delete("/{id}", h.House.Delete)
			houses.Post("/{id}/expire-tenancy", h.House.ExpireHouseTenancy)
		})

		api.Route("/ownerships", func(ownerships chi.Router) {
			ownerships.Get("/", h.Ownership.List)
			ownerships.Post("/", h.Ownership.Create)
			ownerships.Get("/{id}", h.Ownership.Get)
			ownerships.Put("/{id}", h.Ownership.Update)
			ownerships.Delete("/{id}", h.Ownership.Delete)
			ownerships.Post("/{id}/extend", h.Ownership.Extend)
		})
	})

	return r
}
