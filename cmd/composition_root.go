package cmd

import (
	"log/slog"

	"canteen/internal/adapters/out/postgres"
	"canteen/internal/adapters/out/postgres/menurepo"
	"canteen/internal/adapters/out/postgres/usersrepo"
	"canteen/internal/adapters/out/rabbit"
	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/ports"
	"canteen/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    ports.MenuCatalog
	users      ports.UserDirectory
	publisher  ports.NotificationPublisher
	clock      kernel.Clock
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	var publisher ports.NotificationPublisher
	if config.AmqpURL != "" {
		notifier, err := rabbit.NewNotifier(config.AmqpURL, config.AmqpExchange)
		if err != nil {
			slog.Warn("RabbitMQ unavailable, notifications go to the log", "error", err)
			publisher = rabbit.NewLogNotifier()
		} else {
			publisher = notifier
		}
	} else {
		publisher = rabbit.NewLogNotifier()
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    menurepo.NewGormMenuCatalog(gormDB),
		users:      usersrepo.NewGormUserDirectory(gormDB),
		publisher:  publisher,
		clock:      kernel.SystemClock{},
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.catalog, c.users, c.clock, c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.clock, c.publisher)
}

func (c *CompositionRoot) CreateDisputeOrderCommandHandler() commands.DisputeOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDisputeOrderCommandHandler(f, c.clock, c.publisher)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateSettleOrderCommandHandler() commands.SettleOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSettleOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateSettleAllOrdersCommandHandler() commands.SettleAllOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSettleAllOrdersCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCreateScheduledOrderCommandHandler() commands.CreateScheduledOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateScheduledOrderCommandHandler(f, c.catalog, c.users, c.clock)
}

func (c *CompositionRoot) CreateBulkCancelScheduledOrdersCommandHandler() commands.BulkCancelScheduledOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBulkCancelScheduledOrdersCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAddHolidayCommandHandler() commands.AddHolidayCommandHandler {
	var f commands.HolidayUoWFactory = FuncHolidayUoWFactory(func() commands.HolidayUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddHolidayCommandHandler(f)
}

func (c *CompositionRoot) CreateGenerateWeekendsCommandHandler() commands.GenerateWeekendsCommandHandler {
	var f commands.HolidayUoWFactory = FuncHolidayUoWFactory(func() commands.HolidayUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateWeekendsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetScheduledOrdersQueryHandler() queries.GetScheduledOrdersQueryHandler {
	return queries.NewGetScheduledOrdersQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetBillSummaryQueryHandler() queries.GetBillSummaryQueryHandler {
	return queries.NewGetBillSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllUsersBillsQueryHandler() queries.GetAllUsersBillsQueryHandler {
	return queries.NewGetAllUsersBillsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetHolidaysQueryHandler() queries.GetHolidaysQueryHandler {
	return queries.NewGetHolidaysQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSchedulingConstraintsQueryHandler() queries.GetSchedulingConstraintsQueryHandler {
	return queries.NewGetSchedulingConstraintsQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGenerateWeekendsCommandHandler(), c.clock, logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncHolidayUoWFactory func() commands.HolidayUoW

func (f FuncHolidayUoWFactory) Create() commands.HolidayUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
