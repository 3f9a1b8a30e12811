package purchaseorderrepo_test

import (
	"context"
	"testing"
	"time"

	"vendorflow/internal/adapters/out/postgres/pgtest"
	"vendorflow/internal/adapters/out/postgres/purchaseorderrepo"
	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/core/ports"
	"vendorflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// PurchaseOrderRepositoryIntegrationTestSuite runs the order store against a real
// PostgreSQL container.
type PurchaseOrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *purchaseorderrepo.GormPurchaseOrderRepository
	tracker    *MockAggregateTracker

	issuedAt time.Time
	vendorID kernel.UUID
	buyerID  kernel.UUID
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, dsn, err := pgtest.Start(ctx)
	suite.Require().NoError(err)
	suite.container = container

	db, err := pgtest.Open(dsn)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&purchaseorderrepo.PurchaseOrderDTO{}))
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE purchase_orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = purchaseorderrepo.NewGormPurchaseOrderRepository(suite.db, suite.tracker)

	suite.issuedAt = time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)
	suite.vendorID = kernel.NewUUID()
	suite.buyerID = kernel.NewUUID()
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) newOrder(vendorID kernel.UUID, issuedAt time.Time) *purchaseorder.PurchaseOrder {
	bolts, err := purchaseorder.NewItem("bolts", 12)
	suite.Require().NoError(err)
	nuts, err := purchaseorder.NewItem("nuts", 30)
	suite.Require().NoError(err)

	po, err := purchaseorder.NewPurchaseOrder(kernel.NewUUID(), suite.buyerID, vendorID, []purchaseorder.Item{bolts, nuts}, issuedAt)
	suite.Require().NoError(err)
	return po
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) add(po *purchaseorder.PurchaseOrder) {
	suite.Require().NoError(suite.repository.Add(context.Background(), po))
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := context.Background()
	po := suite.newOrder(suite.vendorID, suite.issuedAt)

	suite.Require().NoError(suite.repository.Add(ctx, po))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", po.ID(), po)

	loaded, err := suite.repository.Get(ctx, po.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(po.ID()))
	suite.True(loaded.VendorID().IsEqual(suite.vendorID))
	suite.True(loaded.PurchaserID().IsEqual(suite.buyerID))
	suite.Equal(purchaseorder.Pending, loaded.Status())
	suite.Equal(42, loaded.Quantity())
	suite.Require().Len(loaded.Items(), 2)
	suite.Equal("bolts", loaded.Items()[0].Name())
	suite.Equal(30, loaded.Items()[1].Quantity())
	suite.True(loaded.IssuedDate().Equal(suite.issuedAt))
	suite.Nil(loaded.AcknowledgedDate())
	suite.Equal(1, loaded.Version())
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestItemsAreStoredAsJSON() {
	po := suite.newOrder(suite.vendorID, suite.issuedAt)
	suite.add(po)

	var raw string
	suite.Require().NoError(suite.db.Raw("SELECT items::text FROM purchase_orders WHERE id = ?", po.ID().Bytes()).Scan(&raw).Error)
	suite.JSONEq(`[{"item":"bolts","quantity":12},{"item":"nuts","quantity":30}]`, raw)

	var status string
	suite.Require().NoError(suite.db.Raw("SELECT status FROM purchase_orders WHERE id = ?", po.ID().Bytes()).Scan(&status).Error)
	suite.Equal("P", status)
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestUpdate_AdvancesVersion() {
	ctx := context.Background()
	po := suite.newOrder(suite.vendorID, suite.issuedAt)
	suite.add(po)

	expected := suite.issuedAt.AddDate(0, 0, 4)
	suite.Require().NoError(po.Acknowledge(expected, suite.issuedAt.Add(3*time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, po))
	suite.Equal(2, po.Version())

	loaded, err := suite.repository.Get(ctx, po.ID())
	suite.Require().NoError(err)
	suite.Equal(2, loaded.Version())
	suite.Require().NotNil(loaded.ExpectedDeliveryDate())
	suite.True(loaded.ExpectedDeliveryDate().Equal(expected))
	suite.True(loaded.IsAcknowledged())
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion() {
	ctx := context.Background()
	po := suite.newOrder(suite.vendorID, suite.issuedAt)
	suite.add(po)

	first, err := suite.repository.Get(ctx, po.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, po.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Cancel())
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Acknowledge(suite.issuedAt.AddDate(0, 0, 2), suite.issuedAt.Add(time.Hour)))
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
	suite.Equal(1, second.Version())

	loaded, err := suite.repository.Get(ctx, po.ID())
	suite.Require().NoError(err)
	suite.Equal(purchaseorder.Cancelled, loaded.Status())
	suite.False(loaded.IsAcknowledged())
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder() {
	po := suite.newOrder(suite.vendorID, suite.issuedAt)
	err := suite.repository.Update(context.Background(), po)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestGetForUpdate_BlocksSecondLocker() {
	ctx := context.Background()
	po := suite.newOrder(suite.vendorID, suite.issuedAt)
	suite.add(po)

	tx := suite.db.Begin()
	defer tx.Rollback()
	locked := purchaseorderrepo.NewGormPurchaseOrderRepository(tx, suite.tracker)
	_, err := locked.GetForUpdate(ctx, po.ID())
	suite.Require().NoError(err)

	other := suite.db.Begin()
	defer other.Rollback()
	suite.Require().NoError(other.Exec("SET LOCAL lock_timeout = '200ms'").Error)
	contender := purchaseorderrepo.NewGormPurchaseOrderRepository(other, suite.tracker)
	_, err = contender.GetForUpdate(ctx, po.ID())
	suite.Require().Error(err, "row must stay locked until the first transaction ends")
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestListAndCount() {
	ctx := context.Background()
	otherVendor := kernel.NewUUID()

	pending := suite.newOrder(suite.vendorID, suite.issuedAt)
	cancelled := suite.newOrder(suite.vendorID, suite.issuedAt.Add(time.Hour))
	suite.Require().NoError(cancelled.Cancel())
	foreign := suite.newOrder(otherVendor, suite.issuedAt.Add(2*time.Hour))
	for _, po := range []*purchaseorder.PurchaseOrder{pending, cancelled, foreign} {
		suite.add(po)
	}

	byVendor, err := suite.repository.ListByVendor(ctx, suite.vendorID)
	suite.Require().NoError(err)
	suite.Require().Len(byVendor, 2)
	suite.True(byVendor[0].ID().IsEqual(pending.ID()), "ordered by issue date")

	byPurchaser, err := suite.repository.ListByPurchaser(ctx, suite.buyerID)
	suite.Require().NoError(err)
	suite.Len(byPurchaser, 3)

	byStatus, err := suite.repository.ListByStatus(ctx, purchaseorder.Cancelled)
	suite.Require().NoError(err)
	suite.Require().Len(byStatus, 1)
	suite.True(byStatus[0].ID().IsEqual(cancelled.ID()))

	byBoth, err := suite.repository.ListByVendorAndStatus(ctx, otherVendor, purchaseorder.Pending)
	suite.Require().NoError(err)
	suite.Len(byBoth, 1)

	total, err := suite.repository.CountByVendor(ctx, suite.vendorID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)

	delivered, err := suite.repository.CountByVendorAndStatus(ctx, suite.vendorID, purchaseorder.Delivered)
	suite.Require().NoError(err)
	suite.Zero(delivered)

	_, err = suite.repository.ListByStatus(ctx, purchaseorder.Unknown)
	suite.Require().Error(err)
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestAverageResponseTime() {
	ctx := context.Background()
	otherVendor := kernel.NewUUID()

	fast := suite.newOrder(suite.vendorID, suite.issuedAt)
	suite.Require().NoError(fast.Acknowledge(suite.issuedAt.AddDate(0, 0, 5), suite.issuedAt.Add(24*time.Hour)))
	slow := suite.newOrder(otherVendor, suite.issuedAt)
	suite.Require().NoError(slow.Acknowledge(suite.issuedAt.AddDate(0, 0, 5), suite.issuedAt.Add(72*time.Hour)))
	open := suite.newOrder(suite.vendorID, suite.issuedAt)
	for _, po := range []*purchaseorder.PurchaseOrder{fast, slow, open} {
		suite.add(po)
	}

	global, err := suite.repository.AverageResponseTime(ctx, ports.ResponseTimeGlobal, kernel.UUID{})
	suite.Require().NoError(err)
	suite.Equal(int64(2), global.Samples)
	suite.InDelta(48*3600.0, global.AverageSeconds, 0.001)

	scoped, err := suite.repository.AverageResponseTime(ctx, ports.ResponseTimeVendor, suite.vendorID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), scoped.Samples)
	suite.InDelta(24*3600.0, scoped.AverageSeconds, 0.001)

	none, err := suite.repository.AverageResponseTime(ctx, ports.ResponseTimeVendor, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Zero(none.Samples)
	suite.Zero(none.AverageSeconds)
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestGet_RejectsCorruptedRow() {
	po := suite.newOrder(suite.vendorID, suite.issuedAt)
	suite.add(po)

	suite.Require().NoError(suite.db.Exec("UPDATE purchase_orders SET quantity = 1 WHERE id = ?", po.ID().Bytes()).Error)
	_, err := suite.repository.Get(context.Background(), po.ID())
	suite.Require().Error(err)

	suite.Require().NoError(suite.db.Exec(
		"UPDATE purchase_orders SET quantity = 42, status = 'D' WHERE id = ?", po.ID().Bytes(),
	).Error)
	_, err = suite.repository.Get(context.Background(), po.ID())
	suite.Require().Error(err, "delivered without acknowledgement must not load")
}

func TestPurchaseOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseOrderRepositoryIntegrationTestSuite))
}
