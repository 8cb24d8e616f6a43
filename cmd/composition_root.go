package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/userrepo"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot builds every handler, the HTTP server and the job manager
// from one gorm connection. Command handlers get a fresh unit of work per
// call; query handlers read outside transactions.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      kernel.Clock
	engine     services.LifecycleEngine
	logger     *slog.Logger
}

// NewCompositionRoot shares one system clock between the lifecycle engine
// and the handlers that stamp timestamps.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	clock := kernel.SystemClock()
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock,
		engine:     services.NewLifecycleEngine(clock),
		logger:     logger,
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoW() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) stockUoW() commands.StockUoWFactory {
	return FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
}

// CreateRegisterUserCommandHandler backs POST /users.
func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoW())
}

// CreateApproveUserCommandHandler backs POST /users/:id/approve.
func (c *CompositionRoot) CreateApproveUserCommandHandler() commands.ApproveUserCommandHandler {
	return commands.NewApproveUserCommandHandler(c.userUoW())
}

// CreateBootstrapAdminCommandHandler is used once, by BootstrapAdmin.
func (c *CompositionRoot) CreateBootstrapAdminCommandHandler() commands.BootstrapAdminCommandHandler {
	return commands.NewBootstrapAdminCommandHandler(c.userUoW())
}

// CreateAddStockItemCommandHandler backs POST /stock.
func (c *CompositionRoot) CreateAddStockItemCommandHandler() commands.AddStockItemCommandHandler {
	return commands.NewAddStockItemCommandHandler(c.stockUoW())
}

// CreateApproveStockItemCommandHandler backs POST /stock/:id/approve.
func (c *CompositionRoot) CreateApproveStockItemCommandHandler() commands.ApproveStockItemCommandHandler {
	return commands.NewApproveStockItemCommandHandler(c.stockUoW())
}

// CreateCreateOrderCommandHandler backs POST /orders.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow(), c.clock)
}

// CreateDeleteOrderCommandHandler backs DELETE /orders/:id.
func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.uow())
}

// CreateRequestTransitionCommandHandler backs POST /orders/:id/transitions,
// assignment included.
func (c *CompositionRoot) CreateRequestTransitionCommandHandler() commands.RequestTransitionCommandHandler {
	return commands.NewRequestTransitionCommandHandler(c.uow(), c.engine)
}

// CreateGetDashboardQueryHandler backs GET /orders.
func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(
		userrepo.NewGormUserRepository(c.gormDB),
		orderrepo.NewGormOrderRepository(c.gormDB),
	)
}

// CreateGetOrderQueryHandler backs GET /orders/:id.
func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(
		userrepo.NewGormUserRepository(c.gormDB),
		orderrepo.NewGormOrderRepository(c.gormDB),
		c.engine,
	)
}

// CreateGetEligibleDriversQueryHandler backs GET /drivers/eligible.
func (c *CompositionRoot) CreateGetEligibleDriversQueryHandler() queries.GetEligibleDriversQueryHandler {
	return queries.NewGetEligibleDriversQueryHandler(userrepo.NewGormUserRepository(c.gormDB))
}

// CreateGetStatusCountsQueryHandler feeds the status stats job.
func (c *CompositionRoot) CreateGetStatusCountsQueryHandler() queries.GetStatusCountsQueryHandler {
	return queries.NewGetStatusCountsQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

// CreateHTTPServer wires every handler into the echo adapter. Routes are
// registered by the caller.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		RegisterUser:       c.CreateRegisterUserCommandHandler(),
		ApproveUser:        c.CreateApproveUserCommandHandler(),
		AddStockItem:       c.CreateAddStockItemCommandHandler(),
		ApproveStockItem:   c.CreateApproveStockItemCommandHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		RequestTransition:  c.CreateRequestTransitionCommandHandler(),
		GetDashboard:       c.CreateGetDashboardQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetEligibleDrivers: c.CreateGetEligibleDriversQueryHandler(),
	}, c.logger)
}

// CreateJobManager schedules the status stats job with the configured schedule.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStatusCountsQueryHandler(), c.config.StatsSchedule, c.logger)
}

// BootstrapAdmin seeds the configured admin when no approved admin exists.
func (c *CompositionRoot) BootstrapAdmin(ctx context.Context) error {
	if c.config.BootstrapAdminID == "" && c.config.BootstrapAdminName == "" {
		return nil
	}

	id, err := kernel.UUIDFromString(c.config.BootstrapAdminID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewBootstrapAdminCommand(id, c.config.BootstrapAdminName)
	if err != nil {
		return err
	}

	outcome, err := c.CreateBootstrapAdminCommandHandler().Handle(ctx, cmd)
	if errors.Is(err, commands.ErrBootstrapAdminConflict) {
		return fmt.Errorf("check BOOTSTRAP_ADMIN_ID and BOOTSTRAP_ADMIN_NAME: %w", err)
	}
	if err != nil {
		return err
	}
	if outcome != commands.BootstrapSkipped {
		c.logger.InfoContext(ctx, "Bootstrap admin ready",
			"outcome", outcome.String(), "id", id.String(), "name", cmd.Name())
	}
	return nil
}

// FuncUoWFactory adapts a function to commands.UoWFactory.
type FuncUoWFactory func() commands.UoW

// Create calls f.
func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// FuncUserUoWFactory adapts a function to commands.UserUoWFactory.
type FuncUserUoWFactory func() commands.UserUoW

// Create calls f.
func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

// FuncStockUoWFactory adapts a function to commands.StockUoWFactory.
type FuncStockUoWFactory func() commands.StockUoW

// Create calls f.
func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}
