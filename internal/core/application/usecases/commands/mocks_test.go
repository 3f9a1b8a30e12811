package commands_test

import (
	"context"
	"testing"
	"time"

	"vendorflow/internal/core/application/usecases/commands"
	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/core/domain/model/vendor"
	"vendorflow/internal/core/ports"
	"vendorflow/internal/pkg/clock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPurchaseOrderRepository struct{ mock.Mock }

func (m *MockPurchaseOrderRepository) Add(ctx context.Context, o *purchaseorder.PurchaseOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockPurchaseOrderRepository) Update(ctx context.Context, o *purchaseorder.PurchaseOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockPurchaseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	po, _ := args.Get(0).(*purchaseorder.PurchaseOrder)
	return po, args.Error(1)
}

func (m *MockPurchaseOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	po, _ := args.Get(0).(*purchaseorder.PurchaseOrder)
	return po, args.Error(1)
}

func (m *MockPurchaseOrderRepository) ListByVendor(_ context.Context, _ kernel.UUID) ([]*purchaseorder.PurchaseOrder, error) {
	return nil, nil
}

func (m *MockPurchaseOrderRepository) ListByPurchaser(_ context.Context, _ kernel.UUID) ([]*purchaseorder.PurchaseOrder, error) {
	return nil, nil
}

func (m *MockPurchaseOrderRepository) ListByStatus(_ context.Context, _ purchaseorder.Status) ([]*purchaseorder.PurchaseOrder, error) {
	return nil, nil
}

func (m *MockPurchaseOrderRepository) ListByVendorAndStatus(
	_ context.Context, _ kernel.UUID, _ purchaseorder.Status,
) ([]*purchaseorder.PurchaseOrder, error) {
	return nil, nil
}

func (m *MockPurchaseOrderRepository) CountByVendor(_ context.Context, _ kernel.UUID) (int64, error) {
	return 0, nil
}

func (m *MockPurchaseOrderRepository) CountByVendorAndStatus(_ context.Context, _ kernel.UUID, _ purchaseorder.Status) (int64, error) {
	return 0, nil
}

func (m *MockPurchaseOrderRepository) AverageResponseTime(
	_ context.Context, _ ports.ResponseTimeScope, _ kernel.UUID,
) (ports.ResponseTimeStats, error) {
	return ports.ResponseTimeStats{}, nil
}

type MockVendorRepository struct{ mock.Mock }

func (m *MockVendorRepository) Add(ctx context.Context, v *vendor.Vendor) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVendorRepository) Update(ctx context.Context, v *vendor.Vendor) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*vendor.Vendor)
	return v, args.Error(1)
}

func (m *MockVendorRepository) GetAll(ctx context.Context) ([]*vendor.Vendor, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*vendor.Vendor)
	return list, args.Error(1)
}

func (m *MockVendorRepository) AddPerformanceRecord(ctx context.Context, r vendor.PerformanceRecord) error {
	return m.Called(ctx, r).Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	return m.Called().Get(0).(ports.PurchaseOrderRepository)
}

func (m *MockUoW) VendorRepository() ports.VendorRepository {
	return m.Called().Get(0).(ports.VendorRepository)
}

// CommittedEvents accepts either a fixed slice or a func evaluated at call time,
// so a test can hand back whatever the aggregate recorded during the handler.
func (m *MockUoW) CommittedEvents() []purchaseorder.DomainEvent {
	args := m.Called()
	if fn, ok := args.Get(0).(func() []purchaseorder.DomainEvent); ok {
		return fn()
	}
	list, _ := args.Get(0).([]purchaseorder.DomainEvent)
	return list
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.Event) error {
	return m.Called(ctx, event).Error(0)
}

var issuedAt = time.Date(2024, time.May, 6, 8, 0, 0, 0, time.UTC)

// fixture wires one pending order owned by purchaser and issued to v.
type fixture struct {
	orders    *MockPurchaseOrderRepository
	vendors   *MockVendorRepository
	uow       *MockUoW
	factory   *MockUoWFactory
	publisher *MockEventPublisher
	clock     *clock.FakeClock

	purchaser kernel.Actor
	supplier  kernel.Actor
	v         *vendor.Vendor
	order     *purchaseorder.PurchaseOrder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := vendor.NewVendor(kernel.NewUUID(), "Acme Supplies", "orders@acme.test", "1 Dock Rd")
	require.NoError(t, err)
	purchaser, err := kernel.NewActor(kernel.RolePurchaser, kernel.NewUUID())
	require.NoError(t, err)
	supplier, err := kernel.NewActor(kernel.RoleVendor, v.ID())
	require.NoError(t, err)

	items := []purchaseorder.Item{mustItem(t, "bolts", 10), mustItem(t, "nuts", 5)}
	order, err := purchaseorder.NewPurchaseOrder(kernel.NewUUID(), purchaser.ID(), v.ID(), items, issuedAt)
	require.NoError(t, err)

	return &fixture{
		orders:    new(MockPurchaseOrderRepository),
		vendors:   new(MockVendorRepository),
		uow:       new(MockUoW),
		factory:   new(MockUoWFactory),
		publisher: new(MockEventPublisher),
		clock:     clock.Fake(issuedAt.Add(26 * time.Hour)),
		purchaser: purchaser,
		supplier:  supplier,
		v:         v,
		order:     order,
	}
}

// expectLoad sets up the calls every transition makes before mutating the order.
func (f *fixture) expectLoad() {
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", mock.Anything).Return(nil).Once()
	f.uow.On("PurchaseOrderRepository").Return(f.orders).Once()
	f.orders.On("GetForUpdate", mock.Anything, f.order.ID()).Return(f.order, nil).Once()
	f.uow.On("Rollback", mock.Anything).Return(nil).Once()
}

// expectSave sets up a successful save and commit. withVendor is true when the
// transition records events and the handler resolves the vendor for them.
func (f *fixture) expectSave(withVendor bool) {
	f.orders.On("Update", mock.Anything, f.order).Return(nil).Once()
	if withVendor {
		f.uow.On("VendorRepository").Return(f.vendors).Once()
		f.vendors.On("Get", mock.Anything, f.v.ID()).Return(f.v, nil).Once()
	}
	f.uow.On("Commit", mock.Anything).Return(nil).Once()
	f.uow.On("CommittedEvents").Return(func() []purchaseorder.DomainEvent {
		return f.order.DomainEvents()
	}).Once()
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()

	f.factory.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.vendors.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

// acknowledge moves the fixture order into the acknowledged state outside any handler.
func (f *fixture) acknowledge(t *testing.T) {
	t.Helper()

	require.NoError(t, f.order.Acknowledge(issuedAt.AddDate(0, 0, 5), issuedAt.Add(time.Hour)))
	f.order.ClearDomainEvents()
}

func (f *fixture) deliver(t *testing.T) {
	t.Helper()

	f.acknowledge(t)
	require.NoError(t, f.order.Deliver(issuedAt.AddDate(0, 0, 3)))
	f.order.ClearDomainEvents()
}

func publishedKind(kind purchaseorder.EventKind) any {
	return mock.MatchedBy(func(e ports.Event) bool { return e.Kind == kind })
}

func mustItem(t *testing.T, name string, quantity int) purchaseorder.Item {
	t.Helper()

	item, err := purchaseorder.NewItem(name, quantity)
	require.NoError(t, err)
	return item
}
