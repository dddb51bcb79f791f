package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estate-ledger/internal/config"
	"estate-ledger/internal/database"
	"estate-ledger/internal/event"
	"estate-ledger/internal/handler"
	"estate-ledger/internal/model"
	"estate-ledger/internal/repository"
	"estate-ledger/internal/router"
	"estate-ledger/internal/service"
	"estate-ledger/internal/websocket"
)

type App struct {
	server       *http.Server
	db           *database.DB
	cleanupFuncs []func()
}

// Services is the domain layer built over one database pool.
type Services struct {
	Items      *service.ItemService
	Persons    *service.PersonService
	Houses     *service.HouseService
	Ownerships *service.OwnershipService
}

func NewServices(db *database.DB, bus event.Bus, pages service.Pagination) Services {
	pool := db.Pool
	return Services{
		Items:      service.NewItemService(repository.NewItemRepository(pool), bus, pages),
		Persons:    service.NewPersonService(repository.NewPersonRepository(pool), pages),
		Houses:     service.NewHouseService(repository.NewHouseRepository(pool), bus, pages),
		Ownerships: service.NewOwnershipService(repository.NewOwnershipRepository(pool), bus, pages),
	}
}

// NewHandler assembles the router over the given services.
func NewHandler(cfg *config.Config, services Services, db handler.Pinger, hub *websocket.Hub) http.Handler {
	return router.New(cfg, router.Handlers{
		Items:        handler.NewItemHandler(services.Items, model.ViewAll),
		ActiveItems:  handler.NewItemHandler(services.Items, model.ViewActive),
		DeletedItems: handler.NewItemHandler(services.Items, model.ViewDeleted),
		Person:       handler.NewPersonHandler(services.Persons),
		House:        handler.NewHouseHandler(services.Houses),
		Ownership:    handler.NewOwnershipHandler(services.Ownerships),
		Health:       handler.NewHealthHandler(db),
	}, hub)
}

func pagination(cfg *config.Config) service.Pagination {
	return service.Pagination{DefaultLimit: cfg.DefaultPageSize, MaxLimit: cfg.MaxPageSize}
}

// connect opens the pool and makes sure the schema exists.
func connect(ctx context.Context, cfg *config.Config) (*database.DB, error) {
	slog.Info("connecting to PostgreSQL")
	db, err := database.New(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	slog.Info("database ready")
	return db, nil
}

func New(cfg *config.Config) (*App, error) {
	db, err := connect(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	bus := event.NewBus()
	hub := websocket.NewHub(bus, cfg.CORSOrigins)
	hubCtx, hubCancel := context.WithCancel(context.Background())
	go hub.Run(hubCtx)

	services := NewServices(db, bus, pagination(cfg))

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           NewHandler(cfg, services, db, hub),
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{
		server: server,
		db:     db,
		cleanupFuncs: []func(){
			hubCancel,
			db.Close,
		},
	}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	shutdownErr := a.server.Shutdown(ctx)

	// The pool closes only after in-flight requests have drained.
	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	if shutdownErr != nil {
		return fmt.Errorf("graceful shutdown failed: %w", shutdownErr)
	}

	slog.Info("server stopped")
	return nil
}

// Migrate ensures the schema and returns.
func Migrate(ctx context.Context, cfg *config.Config) error {
	db, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	db.Close()
	return nil
}
