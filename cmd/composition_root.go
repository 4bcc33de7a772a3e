package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"secureorder/internal/adapters/out/fraudapi"
	"secureorder/internal/adapters/out/paymentsim"
	"secureorder/internal/adapters/out/postgres"
	"secureorder/internal/core/application/usecases/commands"
	"secureorder/internal/core/application/usecases/queries"
	"secureorder/internal/core/ports"
	"secureorder/internal/jobs"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	fraudChecker   ports.FraudChecker
	paymentGateway ports.PaymentGateway
	logger         *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		fraudChecker:   fraudapi.NewClient(configs.FraudAPIURL),
		paymentGateway: paymentsim.NewSimulator(),
		logger:         logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderOutboxUoWFactory = FuncOrderOutboxUoWFactory(func() commands.OrderOutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	var f commands.OrderOutboxUoWFactory = FuncOrderOutboxUoWFactory(func() commands.OrderOutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessOrderCommandHandler(f, c.fraudChecker, c.paymentGateway, c.logger)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByCustomerQueryHandler() queries.GetOrdersByCustomerQueryHandler {
	return queries.NewGetOrdersByCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(configs Config) *jobs.JobManager {
	outboxRepo := c.uowFactory.Create().OutboxRepository()

	return jobs.NewJobManager(
		outboxRepo,
		c.CreateProcessOrderCommandHandler(),
		configs.OutboxDispatchBatchSize,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderOutboxUoWFactory func() commands.OrderOutboxUoW

func (f FuncOrderOutboxUoWFactory) Create() commands.OrderOutboxUoW {
	return f()
}
