package commands_test

import (
	"context"
	"testing"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/stock"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expected order.Status) error {
	return m.Called(ctx, o, expected).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, filter ports.UserFilter) ([]*user.User, error) {
	args := m.Called(ctx, filter)
	users, _ := args.Get(0).([]*user.User)
	return users, args.Error(1)
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) Add(ctx context.Context, item *stock.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockStockRepository) Update(ctx context.Context, item *stock.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockStockRepository) Get(ctx context.Context, id kernel.UUID) (*stock.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*stock.Item)
	return item, args.Error(1)
}

func (m *MockStockRepository) FindBySellerAndName(
	ctx context.Context,
	seller kernel.UUID,
	name string,
) (*stock.Item, error) {
	args := m.Called(ctx, seller, name)
	item, _ := args.Get(0).(*stock.Item)
	return item, args.Error(1)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) StockRepository() ports.StockRepository {
	return m.Called().Get(0).(ports.StockRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	return m.Called().Get(0).(commands.UserUoW)
}

type MockStockUoWFactory struct{ mock.Mock }

func (m *MockStockUoWFactory) Create() commands.StockUoW {
	return m.Called().Get(0).(commands.StockUoW)
}

// env bundles a unit of work with its repositories. Repository accessors may
// be called any number of times; the transaction calls are asserted by tests.
type env struct {
	uow    *MockUoW
	orders *MockOrderRepository
	users  *MockUserRepository
	items  *MockStockRepository
}

func newEnv() *env {
	e := &env{
		uow:    new(MockUoW),
		orders: new(MockOrderRepository),
		users:  new(MockUserRepository),
		items:  new(MockStockRepository),
	}
	e.uow.On("OrderRepository").Return(e.orders).Maybe()
	e.uow.On("UserRepository").Return(e.users).Maybe()
	e.uow.On("StockRepository").Return(e.items).Maybe()
	return e
}

func (e *env) factory() *MockUoWFactory {
	f := new(MockUoWFactory)
	f.On("Create").Return(e.uow).Once()
	return f
}

func (e *env) userFactory() *MockUserUoWFactory {
	f := new(MockUserUoWFactory)
	f.On("Create").Return(e.uow).Once()
	return f
}

func (e *env) stockFactory() *MockStockUoWFactory {
	f := new(MockStockUoWFactory)
	f.On("Create").Return(e.uow).Once()
	return f
}

// committed expects a full Begin/Commit/Rollback cycle.
func (e *env) committed(ctx context.Context) {
	mock.InOrder(
		e.uow.On("Begin", ctx).Return(nil).Once(),
		e.uow.On("Commit", ctx).Return(nil).Once(),
		e.uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

// rolledBack expects Begin followed only by the deferred Rollback.
func (e *env) rolledBack(ctx context.Context) {
	mock.InOrder(
		e.uow.On("Begin", ctx).Return(nil).Once(),
		e.uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

func (e *env) assert(t *testing.T) {
	t.Helper()
	e.uow.AssertExpectations(t)
	e.orders.AssertExpectations(t)
	e.users.AssertExpectations(t)
	e.items.AssertExpectations(t)
	e.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func (e *env) assertCommitted(t *testing.T) {
	t.Helper()
	e.uow.AssertExpectations(t)
	e.orders.AssertExpectations(t)
	e.users.AssertExpectations(t)
	e.items.AssertExpectations(t)
}

func newUser(t *testing.T, role user.Role, approved bool) *user.User {
	t.Helper()
	u, err := user.RestoreUser(kernel.NewUUID(), role.String()+"-"+kernel.NewUUID().String()[:8], role, approved)
	require.NoError(t, err)
	return u
}

func details(item string, quantity int) order.Details {
	return order.Details{
		CustomerName:  "Grace Hopper",
		CustomerPhone: "+15550101",
		Street:        "2 Harbor Rd",
		City:          "Arlington",
		Item:          item,
		Quantity:      quantity,
	}
}

func pendingOrder(t *testing.T, seller *user.User) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), seller.ID(), details("Widget", 1), now.Add(-time.Hour))
	require.NoError(t, err)
	return o
}

func assignedOrder(t *testing.T, seller, driver *user.User) *order.Order {
	t.Helper()
	id := driver.ID()
	o, err := order.RestoreOrder(kernel.NewUUID(), seller.ID(), details("Widget", 1),
		order.Assigned, &id, now.Add(-time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)
	return o
}
