package cmd

import (
	"fmt"
	"log/slog"

	"martdelivery/internal/adapters/out/geocoding"
	"martdelivery/internal/adapters/out/postgres"
	"martdelivery/internal/core/application/usecases/commands"
	"martdelivery/internal/core/application/usecases/queries"
	"martdelivery/internal/core/domain/services"
	"martdelivery/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	geocoder   ports.Geocoder
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCompositionRoot wires the use cases. publisher may be nil, in which case order
// status events are not emitted.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	geocoder ports.Geocoder,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		geocoder:   geocoder,
		publisher:  publisher,
		logger:     logger,
	}
}

// NewGeocoder builds the configured provider, wrapped in the Redis cache when a
// client is given.
func NewGeocoder(config Config, redisClient redis.Cmdable, logger *slog.Logger) (ports.Geocoder, error) {
	var provider ports.Geocoder
	switch config.GeocodeProvider {
	case GeocodeProviderGoogle:
		google, err := geocoding.NewGoogleMapsGeocoder(config.GoogleMapsAPIKey)
		if err != nil {
			return nil, err
		}
		provider = google
	case GeocodeProviderOpenCage:
		provider = geocoding.NewOpenCageGeocoder(config.OpenCageAPIKey, geocoding.DefaultOpenCageURL, nil)
	default:
		return nil, fmt.Errorf("unknown geocode provider %q", config.GeocodeProvider)
	}

	if redisClient == nil {
		return provider, nil
	}
	return geocoding.NewCachedGeocoder(provider, redisClient, config.GeocodeCacheTTL, logger), nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.geocoder)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderLocationCommandHandler() commands.UpdateOrderLocationCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMartCommandHandler() commands.CreateMartCommandHandler {
	var f commands.MartUoWFactory = FuncMartUoWFactory(func() commands.MartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMartCommandHandler(f, c.geocoder, c.logger)
}

func (c *CompositionRoot) CreateBackfillMartLocationsCommandHandler() commands.BackfillMartLocationsCommandHandler {
	var f commands.MartUoWFactory = FuncMartUoWFactory(func() commands.MartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBackfillMartLocationsCommandHandler(f, c.geocoder, c.logger)
}

func (c *CompositionRoot) CreateGetOptimizedBatchQueryHandler() queries.GetOptimizedBatchQueryHandler {
	return queries.NewGetOptimizedBatchQueryHandler(c.repositories(), services.NewRoutePlanner())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.repositories())
}

func (c *CompositionRoot) CreateGetMartQueryHandler() queries.GetMartQueryHandler {
	return queries.NewGetMartQueryHandler(c.repositories())
}

func (c *CompositionRoot) CreateGetMartsByOwnerQueryHandler() queries.GetMartsByOwnerQueryHandler {
	return queries.NewGetMartsByOwnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) repositories() queries.RepositoriesFactory {
	return FuncRepositoriesFactory(func() queries.Repositories {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMartUoWFactory func() commands.MartUoW

func (f FuncMartUoWFactory) Create() commands.MartUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncRepositoriesFactory func() queries.Repositories

func (f FuncRepositoriesFactory) Create() queries.Repositories {
	return f()
}
