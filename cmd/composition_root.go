package cmd

import (
	"context"
	"errors"
	"time"

	httpin "tailoring/internal/adapters/in/http"
	"tailoring/internal/adapters/out/addressbook"
	"tailoring/internal/adapters/out/cache"
	"tailoring/internal/adapters/out/kafka"
	"tailoring/internal/adapters/out/postgres"
	"tailoring/internal/adapters/out/postgres/tailorrepo"
	"tailoring/internal/core/application/usecases/commands"
	"tailoring/internal/core/application/usecases/queries"
	"tailoring/internal/core/domain/model/catalog"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/services"
	"tailoring/internal/core/ports"
	"tailoring/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	logger     *zap.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	calculator *services.PriceCalculator
	tailors    ports.TailorDirectory
	addresses  ports.AddressBook
	clock      services.Clock

	closers []func() error
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *zap.Logger) *CompositionRoot {
	c := &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		gormDB:     gormDB,
		calculator: services.NewPriceCalculator(catalog.Default(), time.Now),
		clock:      time.Now,
	}

	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, c.eventPublisher(), logger.With(zap.String("component", "unit_of_work")))
	c.tailors = cache.NewTailorDirectory(
		c.cacheStore(),
		tailorrepo.NewGormTailorRepository(gormDB, untracked{}),
		cfg.CacheTTL,
		logger.With(zap.String("component", "tailor_cache")),
	)
	c.addresses = c.addressBook()

	return c
}

func (c *CompositionRoot) eventPublisher() ports.EventPublisher {
	if !c.cfg.KafkaEnabled {
		return kafka.NoopPublisher{}
	}
	publisher := kafka.NewPublisher(c.cfg.KafkaBrokers, c.cfg.KafkaOrderChangedTopic, c.logger.With(zap.String("component", "kafka")))
	c.closers = append(c.closers, publisher.Close)
	return publisher
}

func (c *CompositionRoot) cacheStore() cache.Store {
	if c.cfg.CacheDriver != "redis" {
		return cache.NoopStore{}
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:     c.cfg.RedisAddr,
		Password: c.cfg.RedisPassword,
		DB:       c.cfg.RedisDB,
	})
	c.closers = append(c.closers, client.Close)
	return cache.NewRedisStore(client, c.cfg.CacheTTL)
}

func (c *CompositionRoot) addressBook() ports.AddressBook {
	if c.cfg.AddressServiceURL == "" {
		return addressbook.Noop{}
	}
	return addressbook.NewClient(c.cfg.AddressServiceURL, c.cfg.AddressServiceTimeout, c.logger.With(zap.String("component", "address_book")))
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tailorUoWFactory() commands.TailorUoWFactory {
	return FuncTailorUoWFactory(func() commands.TailorUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.calculator, c.clock, c.cfg.OrdersRequireAddresses)
}

func (c *CompositionRoot) CreateAssignTailorCommandHandler() commands.AssignTailorCommandHandler {
	return commands.NewAssignTailorCommandHandler(c.orderUoWFactory(), c.tailors, c.clock)
}

func (c *CompositionRoot) CreateChangeStatusCommandHandler() commands.ChangeStatusCommandHandler {
	return commands.NewChangeStatusCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	return commands.NewUpdateDeliveryCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRegisterTailorCommandHandler() commands.RegisterTailorCommandHandler {
	return commands.NewRegisterTailorCommandHandler(c.tailorUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.addresses)
}

func (c *CompositionRoot) CreateGetTailorsQueryHandler() queries.GetTailorsQueryHandler {
	return queries.NewGetTailorsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateQuotePriceQueryHandler() queries.QuotePriceQueryHandler {
	return queries.NewQuotePriceQueryHandler(c.calculator)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.calculator)
}

func (c *CompositionRoot) CreateGetStaleOrdersQueryHandler() queries.GetStaleOrdersQueryHandler {
	return queries.NewGetStaleOrdersQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		PlaceOrder:     c.CreatePlaceOrderCommandHandler(),
		AssignTailor:   c.CreateAssignTailorCommandHandler(),
		ChangeStatus:   c.CreateChangeStatusCommandHandler(),
		UpdateDelivery: c.CreateUpdateDeliveryCommandHandler(),
		RegisterTailor: c.CreateRegisterTailorCommandHandler(),
		ListOrders:     c.CreateListOrdersQueryHandler(),
		GetOrder:       c.CreateGetOrderQueryHandler(),
		GetTailors:     c.CreateGetTailorsQueryHandler(),
		QuotePrice:     c.CreateQuotePriceQueryHandler(),
		GetCatalog:     c.CreateGetCatalogQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(c.CreateGetStaleOrdersQueryHandler(), jobs.Schedule{
		Spec:      c.cfg.BacklogCheckSchedule,
		Threshold: c.cfg.BacklogThreshold,
	}, c.logger)
}

func (c *CompositionRoot) RouterConfig() httpin.RouterConfig {
	return httpin.RouterConfig{
		ServiceName:    c.cfg.ServiceName,
		TracingEnabled: c.cfg.TracingEnabled,
		LogLevel:       c.cfg.LogLevel,
	}
}

// Close releases the outbound connections opened for the adapters.
func (c *CompositionRoot) Close(_ context.Context) error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, c.closers[i]())
	}
	return err
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTailorUoWFactory func() commands.TailorUoW

func (f FuncTailorUoWFactory) Create() commands.TailorUoW {
	return f()
}

// untracked lets the tailor repository serve lookups outside a unit of work.
type untracked struct{}

func (untracked) TrackAggregate(kernel.UUID, any) {}
