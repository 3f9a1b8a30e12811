package queries_test

import (
	"context"
	"testing"
	"time"

	"vendorflow/internal/adapters/out/postgres/pgtest"
	"vendorflow/internal/adapters/out/postgres/vendorrepo"
	"vendorflow/internal/core/application/usecases/queries"
	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/vendor"
	"vendorflow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type discardTracker struct{}

func (discardTracker) TrackAggregate(kernel.UUID, any) {}

type VendorPerformanceQueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	vendors   *vendorrepo.GormVendorRepository
}

func (suite *VendorPerformanceQueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, dsn, err := pgtest.Start(ctx)
	suite.Require().NoError(err)
	suite.container = container

	db, err := pgtest.Open(dsn)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&vendorrepo.VendorDTO{}, &vendorrepo.PerformanceRecordDTO{}))
}

func (suite *VendorPerformanceQueriesTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE vendors, vendor_performance_records").Error)
	suite.vendors = vendorrepo.NewGormVendorRepository(suite.db, discardTracker{})
}

func (suite *VendorPerformanceQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *VendorPerformanceQueriesTestSuite) addVendor(name string) *vendor.Vendor {
	v, err := vendor.NewVendor(kernel.NewUUID(), name, name+"@vendors.test", "4 Quay Rd")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.vendors.Add(context.Background(), v))
	return v
}

func (suite *VendorPerformanceQueriesTestSuite) TestGetVendorPerformance_NewVendorHasNoMetrics() {
	v := suite.addVendor("Acme")

	query, err := queries.NewGetVendorPerformanceQuery(v.ID())
	suite.Require().NoError(err)

	resp, err := queries.NewGetVendorPerformanceQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(v.ID().String(), resp.VendorID)
	suite.Equal("Acme", resp.Name)
	suite.Nil(resp.OnTimeDeliveryRate)
	suite.Nil(resp.QualityRatingAvg)
	suite.Nil(resp.AverageResponseTime)
	suite.Nil(resp.FulfillmentRate)
}

func (suite *VendorPerformanceQueriesTestSuite) TestGetVendorPerformance_ReturnsStoredMetrics() {
	ctx := context.Background()
	v := suite.addVendor("Globex")
	suite.Require().NoError(v.UpdateOnTimeDeliveryRate(75))
	suite.Require().NoError(v.UpdateAverageResponseTime(1.5))
	suite.Require().NoError(suite.vendors.Update(ctx, v))

	query, _ := queries.NewGetVendorPerformanceQuery(v.ID())
	resp, err := queries.NewGetVendorPerformanceQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().NotNil(resp.OnTimeDeliveryRate)
	suite.InDelta(75.0, *resp.OnTimeDeliveryRate, 1e-9)
	suite.Require().NotNil(resp.AverageResponseTime)
	suite.InDelta(1.5, *resp.AverageResponseTime, 1e-9)
	suite.Nil(resp.QualityRatingAvg)
}

func (suite *VendorPerformanceQueriesTestSuite) TestGetVendorPerformance_UnknownVendor() {
	query, _ := queries.NewGetVendorPerformanceQuery(kernel.NewUUID())

	_, err := queries.NewGetVendorPerformanceQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *VendorPerformanceQueriesTestSuite) TestGetVendorPerformanceHistory_OrderedByRecordedAt() {
	ctx := context.Background()
	v := suite.addVendor("Initech")
	other := suite.addVendor("Umbrella")
	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	later, err := vendor.NewPerformanceRecord(kernel.NewUUID(), v, base.Add(24*time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(v.UpdateFulfillmentRate(50))
	earlier, err := vendor.NewPerformanceRecord(kernel.NewUUID(), v, base)
	suite.Require().NoError(err)
	foreign, err := vendor.NewPerformanceRecord(kernel.NewUUID(), other, base)
	suite.Require().NoError(err)

	for _, r := range []vendor.PerformanceRecord{later, earlier, foreign} {
		suite.Require().NoError(suite.vendors.AddPerformanceRecord(ctx, r))
	}

	query, _ := queries.NewGetVendorPerformanceHistoryQuery(v.ID())
	history, err := queries.NewGetVendorPerformanceHistoryQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.True(history[0].RecordedAt.Equal(base))
	suite.Require().NotNil(history[0].FulfillmentRate)
	suite.InDelta(50.0, *history[0].FulfillmentRate, 1e-9)
	suite.True(history[1].RecordedAt.Equal(base.Add(24 * time.Hour)))
	suite.Nil(history[1].FulfillmentRate)
}

func (suite *VendorPerformanceQueriesTestSuite) TestGetVendorPerformanceHistory_KnownVendorWithoutSnapshots() {
	v := suite.addVendor("Hooli")

	query, _ := queries.NewGetVendorPerformanceHistoryQuery(v.ID())
	history, err := queries.NewGetVendorPerformanceHistoryQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(history)
	suite.Empty(history)
}

func (suite *VendorPerformanceQueriesTestSuite) TestGetVendorPerformanceHistory_UnknownVendor() {
	query, _ := queries.NewGetVendorPerformanceHistoryQuery(kernel.NewUUID())

	_, err := queries.NewGetVendorPerformanceHistoryQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestVendorPerformanceQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(VendorPerformanceQueriesTestSuite))
}
