package server

import (
	"turfly/internal/bookings/events"
	bookingshandler "turfly/internal/bookings/handler"
	"turfly/internal/bookings/repository"
	bookingsservice "turfly/internal/bookings/service"
	"turfly/internal/bookings/validator"
	dashboardhandler "turfly/internal/dashboard/handler"
	dashboardservice "turfly/internal/dashboard/service"
	turfshandler "turfly/internal/turfs/handler"
	turfsrepository "turfly/internal/turfs/repository"
	turfsservice "turfly/internal/turfs/service"
	"turfly/pkg/app"
	"turfly/pkg/config"
	"turfly/pkg/contracts"
	"turfly/pkg/metrics"
	"turfly/pkg/middleware"
)

type Dependencies struct {
	Tokens    middleware.TokenParser
	Publisher events.Publisher
	Metrics   *metrics.Metrics
}

// NewBookingsApplication wires the catalog, the booking engine and the
// dashboards onto one HTTP application. The store backend follows
// cfg.StoreBackend; a Mongo backend expects cfg.SetMongo to have run.
func NewBookingsApplication(cfg *config.Config, deps Dependencies) *app.Application {
	bookingRepo, lockRepo := newStores(cfg)

	turfs := turfsservice.NewTurfService(turfsrepository.NewSeededRepository(), cfg.Log)
	bookings := bookingsservice.NewBookingService(
		bookingRepo,
		lockRepo,
		validator.NewBookingValidator(cfg.Log),
		turfs,
		deps.Publisher,
		deps.Metrics,
		cfg,
	)
	dashboard := dashboardservice.NewDashboardService(bookings, turfs, cfg.Log)

	return app.NewApplication(cfg, app.Options{
		Store:   bookingRepo,
		Tokens:  deps.Tokens,
		Metrics: deps.Metrics,
		Handlers: []contracts.Handler{
			turfshandler.NewTurfHandler(turfs, bookings, cfg.Log),
			bookingshandler.NewBookingHandler(bookings, turfs, cfg.Log),
			dashboardhandler.NewDashboardHandler(dashboard, cfg.Log),
		},
	})
}

func newStores(cfg *config.Config) (repository.BookingRepository, repository.BookingLockRepository) {
	if cfg.UsesMongo() {
		cfg.Log.Info("Using Mongo booking store", "database", cfg.MongoDatabaseName)
		return repository.NewMongoBookingRepository(cfg), repository.NewMongoBookingLockRepository(cfg)
	}
	cfg.Log.Info("Using in-memory booking store")
	return repository.NewMemoryBookingRepository(), repository.NewMemoryBookingLockRepository()
}
