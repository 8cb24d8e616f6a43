package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/postgrestest"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var createdAt = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

// OrderRepositoryIntegrationTestSuite runs the repository against a real
// PostgreSQL to cover the compare-and-swap semantics.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *postgrestest.Database
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := postgrestest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(pg.DB.AutoMigrate(&orderrepo.OrderDTO{}))
	suite.repository = orderrepo.NewGormOrderRepository(pg.DB)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("orders"))
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(seller kernel.UUID, at time.Time) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), seller, order.Details{
		CustomerName:  "Ada Lovelace",
		CustomerPhone: "+15550100",
		Street:        "1 Main St",
		City:          "Springfield",
		LocationURL:   "https://maps.example.com/?q=1",
		Item:          "Widget",
		Quantity:      3,
		Comment:       "ring twice",
	}, at)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := suite.T().Context()
	o := suite.newOrder(kernel.NewUUID(), createdAt)

	suite.Require().NoError(suite.repository.Add(ctx, o))
	got, err := suite.repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))
	suite.Equal(order.Pending, got.Status())
	suite.Equal(o.Details(), got.Details())
	suite.True(got.IsOwnedBy(o.Seller()))
	suite.Nil(got.Driver())
	suite.True(createdAt.Equal(got.CreatedAt()))
	suite.True(createdAt.Equal(got.UpdatedAt()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID() {
	ctx := suite.T().Context()
	o := suite.newOrder(kernel.NewUUID(), createdAt)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	err := suite.repository.Add(ctx, o)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructed() {
	err := suite.repository.Add(suite.T().Context(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(suite.T().Context(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_CompareAndSwap() {
	ctx := suite.T().Context()
	o := suite.newOrder(kernel.NewUUID(), createdAt)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	driver := kernel.NewUUID()
	assignedAt := createdAt.Add(time.Minute)
	suite.Require().NoError(o.Assign(driver, assignedAt))
	suite.Require().NoError(suite.repository.Update(ctx, o, order.Pending))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, stored.Status())
	suite.True(stored.IsBoundTo(driver))
	suite.True(assignedAt.Equal(stored.UpdatedAt()))

	// A second writer that still believes the order is pending loses.
	competing := suite.clone(o.ID())
	suite.Require().NoError(competing.MoveTo(order.Canceled, assignedAt))
	err = suite.repository.Update(ctx, competing, order.Pending)
	suite.Require().ErrorIs(err, ports.ErrStaleOrder)

	stored, err = suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, stored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Missing() {
	o := suite.newOrder(kernel.NewUUID(), createdAt)
	suite.Require().NoError(o.MoveTo(order.Canceled, createdAt))

	err := suite.repository.Update(suite.T().Context(), o, order.Pending)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete() {
	ctx := suite.T().Context()

	pending := suite.newOrder(kernel.NewUUID(), createdAt)
	suite.Require().NoError(suite.repository.Add(ctx, pending))
	suite.Require().NoError(suite.repository.Delete(ctx, pending.ID()))
	_, err := suite.repository.Get(ctx, pending.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	assigned := suite.newOrder(kernel.NewUUID(), createdAt)
	suite.Require().NoError(suite.repository.Add(ctx, assigned))
	suite.Require().NoError(assigned.Assign(kernel.NewUUID(), createdAt))
	suite.Require().NoError(suite.repository.Update(ctx, assigned, order.Pending))
	suite.Require().ErrorIs(suite.repository.Delete(ctx, assigned.ID()), ports.ErrStaleOrder)

	suite.Require().ErrorIs(suite.repository.Delete(ctx, kernel.NewUUID()), errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestList_Filters() {
	ctx := suite.T().Context()
	seller := kernel.NewUUID()
	otherSeller := kernel.NewUUID()
	driver := kernel.NewUUID()

	oldest := suite.newOrder(seller, createdAt)
	middle := suite.newOrder(seller, createdAt.Add(time.Hour))
	newest := suite.newOrder(otherSeller, createdAt.Add(2*time.Hour))
	for _, o := range []*order.Order{oldest, middle, newest} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}
	suite.Require().NoError(middle.Assign(driver, createdAt.Add(3*time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, middle, order.Pending))

	all, err := suite.repository.List(ctx, ports.OrderFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.True(all[0].IsEqual(newest))
	suite.True(all[2].IsEqual(oldest))

	own, err := suite.repository.List(ctx, ports.OrderFilter{Seller: &seller})
	suite.Require().NoError(err)
	suite.Len(own, 2)

	bound, err := suite.repository.List(ctx, ports.OrderFilter{Driver: &driver})
	suite.Require().NoError(err)
	suite.Require().Len(bound, 1)
	suite.True(bound[0].IsEqual(middle))

	pending := order.Pending
	stillPending, err := suite.repository.List(ctx, ports.OrderFilter{Seller: &seller, Status: &pending})
	suite.Require().NoError(err)
	suite.Require().Len(stillPending, 1)
	suite.True(stillPending[0].IsEqual(oldest))
}

func (suite *OrderRepositoryIntegrationTestSuite) clone(id kernel.UUID) *order.Order {
	var dto orderrepo.OrderDTO
	suite.Require().NoError(suite.pg.DB.First(&dto, "id = ?", id.Bytes()).Error)
	// Rebuild the order as it looked before the first writer committed.
	o, err := order.RestoreOrder(id, kernel.NewUUID(), order.Details{
		CustomerName:  dto.CustomerName,
		CustomerPhone: dto.CustomerPhone,
		Street:        dto.Street,
		City:          dto.City,
		Item:          dto.Item,
		Quantity:      dto.Quantity,
	}, order.Pending, nil, dto.CreatedAt, dto.CreatedAt)
	suite.Require().NoError(err)
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
