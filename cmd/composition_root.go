package cmd

import (
	httpin "vendorflow/internal/adapters/in/http"
	"vendorflow/internal/adapters/out/postgres"
	"vendorflow/internal/core/application/eventbus"
	"vendorflow/internal/core/application/performance"
	"vendorflow/internal/core/application/usecases/commands"
	"vendorflow/internal/core/application/usecases/queries"
	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/core/domain/services"
	"vendorflow/internal/core/ports"
	"vendorflow/internal/jobs"
	"vendorflow/internal/pkg/clock"
	"vendorflow/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     zerolog.Logger
	registry   *prometheus.Registry
	clock      ports.Clock
	scale      purchaseorder.RatingScale
	bus        *eventbus.Bus
}

// NewCompositionRoot wires the event bus and subscribes the performance
// recalculation on it. config must come from LoadConfig.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger zerolog.Logger) (*CompositionRoot, error) {
	scale, err := config.RatingScale()
	if err != nil {
		return nil, err
	}
	scope, err := config.Scope()
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		registry:   registry,
		clock:      clock.Real(),
		scale:      scale,
		bus:        eventbus.New(logger, metrics.NewEventBusMetrics(registry)),
	}

	var f performance.UoWFactory = FuncPerformanceUoWFactory(func() performance.UoW {
		return c.uowFactory.Create()
	})
	performance.NewRecalculator(f, services.NewPerformanceCalculator(scale), scope, logger).Register(c.bus)

	return c, nil
}

func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreatePurchaseOrderCommandHandler() commands.CreatePurchaseOrderCommandHandler {
	return commands.NewCreatePurchaseOrderCommandHandler(c.commandUoWFactory(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateReplacePurchaseOrderItemsCommandHandler() commands.ReplacePurchaseOrderItemsCommandHandler {
	return commands.NewReplacePurchaseOrderItemsCommandHandler(c.commandUoWFactory(), c.bus, c.logger)
}

func (c *CompositionRoot) CreateCancelPurchaseOrderCommandHandler() commands.CancelPurchaseOrderCommandHandler {
	return commands.NewCancelPurchaseOrderCommandHandler(c.commandUoWFactory(), c.bus, c.logger)
}

func (c *CompositionRoot) CreateAcknowledgePurchaseOrderCommandHandler() commands.AcknowledgePurchaseOrderCommandHandler {
	return commands.NewAcknowledgePurchaseOrderCommandHandler(c.commandUoWFactory(), c.bus, c.clock, c.logger)
}

func (c *CompositionRoot) CreateDeliverPurchaseOrderCommandHandler() commands.DeliverPurchaseOrderCommandHandler {
	return commands.NewDeliverPurchaseOrderCommandHandler(c.commandUoWFactory(), c.bus, c.clock, c.logger)
}

func (c *CompositionRoot) CreateRatePurchaseOrderCommandHandler() commands.RatePurchaseOrderCommandHandler {
	return commands.NewRatePurchaseOrderCommandHandler(c.commandUoWFactory(), c.bus, c.scale, c.clock, c.logger)
}

func (c *CompositionRoot) CreateRecordPerformanceSnapshotsCommandHandler() commands.RecordPerformanceSnapshotsCommandHandler {
	return commands.NewRecordPerformanceSnapshotsCommandHandler(c.commandUoWFactory(), c.clock)
}

// Order queries read through a unit of work that is never begun, i.e. straight
// from the connection pool.
func (c *CompositionRoot) CreateGetPurchaseOrderQueryHandler() queries.GetPurchaseOrderQueryHandler {
	return queries.NewGetPurchaseOrderQueryHandler(c.uowFactory.Create().PurchaseOrderRepository())
}

func (c *CompositionRoot) CreateListPurchaseOrdersQueryHandler() queries.ListPurchaseOrdersQueryHandler {
	return queries.NewListPurchaseOrdersQueryHandler(c.uowFactory.Create().PurchaseOrderRepository())
}

func (c *CompositionRoot) CreateGetVendorPerformanceQueryHandler() queries.GetVendorPerformanceQueryHandler {
	return queries.NewGetVendorPerformanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVendorPerformanceHistoryQueryHandler() queries.GetVendorPerformanceHistoryQueryHandler {
	return queries.NewGetVendorPerformanceHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	create := c.CreateCreatePurchaseOrderCommandHandler()
	replace := c.CreateReplacePurchaseOrderItemsCommandHandler()
	cancel := c.CreateCancelPurchaseOrderCommandHandler()
	acknowledge := c.CreateAcknowledgePurchaseOrderCommandHandler()
	deliver := c.CreateDeliverPurchaseOrderCommandHandler()
	rate := c.CreateRatePurchaseOrderCommandHandler()

	return httpin.NewServer(httpin.Handlers{
		CreatePurchaseOrder:         &create,
		ReplacePurchaseOrderItems:   &replace,
		CancelPurchaseOrder:         &cancel,
		AcknowledgePurchaseOrder:    &acknowledge,
		DeliverPurchaseOrder:        &deliver,
		RatePurchaseOrder:           &rate,
		GetPurchaseOrder:            c.CreateGetPurchaseOrderQueryHandler(),
		ListPurchaseOrders:          c.CreateListPurchaseOrdersQueryHandler(),
		GetVendorPerformance:        c.CreateGetVendorPerformanceQueryHandler(),
		GetVendorPerformanceHistory: c.CreateGetVendorPerformanceHistoryQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	snapshots := c.CreateRecordPerformanceSnapshotsCommandHandler()
	return jobs.NewJobManager(
		jobs.NewPerformanceSnapshotJob(
			&snapshots,
			c.config.PerformanceSnapshotSchedule,
			metrics.NewCronJobMetrics(c.registry),
			c.logger,
		),
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncPerformanceUoWFactory func() performance.UoW

func (f FuncPerformanceUoWFactory) Create() performance.UoW {
	return f()
}
