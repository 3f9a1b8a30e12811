package commands_test

import (
	"errors"
	"testing"

	"vendorflow/internal/core/application/usecases/commands"
	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/vendor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordPerformanceSnapshotsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)
	require.NoError(t, f.v.UpdateFulfillmentRate(4))
	other, err := vendor.NewVendor(kernel.NewUUID(), "Globex", "", "")
	require.NoError(t, err)

	var records []vendor.PerformanceRecord
	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("VendorRepository").Return(f.vendors).Once(),
		f.vendors.On("GetAll", ctx).Return([]*vendor.Vendor{f.v, other}, nil).Once(),
		f.vendors.On("AddPerformanceRecord", ctx, mock.AnythingOfType("vendor.PerformanceRecord")).
			Run(func(args mock.Arguments) {
				records = append(records, args.Get(1).(vendor.PerformanceRecord))
			}).Return(nil).Twice(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRecordPerformanceSnapshotsCommandHandler(f.factory, f.clock)
	recorded, err := h.Handle(ctx, commands.NewRecordPerformanceSnapshotsCommand())
	require.NoError(t, err)
	assert.Equal(t, 2, recorded)

	require.Len(t, records, 2)
	assert.True(t, records[0].VendorID().IsEqual(f.v.ID()))
	require.NotNil(t, records[0].Performance().FulfillmentRate)
	assert.InDelta(t, 4.0, *records[0].Performance().FulfillmentRate, 1e-9)
	assert.Nil(t, records[1].Performance().FulfillmentRate)
	assert.Equal(t, records[0].RecordedAt(), records[1].RecordedAt())
	assert.Equal(t, f.clock.Now(), records[0].RecordedAt())
	f.assertExpectations(t)
}

func TestRecordPerformanceSnapshotsCommandHandler_Handle_GetAllError(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("VendorRepository").Return(f.vendors).Once(),
		f.vendors.On("GetAll", ctx).Return(nil, errors.New("db down")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRecordPerformanceSnapshotsCommandHandler(f.factory, f.clock)
	recorded, err := h.Handle(ctx, commands.NewRecordPerformanceSnapshotsCommand())
	require.Error(t, err)
	assert.Zero(t, recorded)
	f.assertExpectations(t)
}

func TestRecordPerformanceSnapshotsCommandHandler_Handle_NoVendors(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("VendorRepository").Return(f.vendors).Once()
	f.vendors.On("GetAll", ctx).Return([]*vendor.Vendor{}, nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewRecordPerformanceSnapshotsCommandHandler(f.factory, f.clock)
	recorded, err := h.Handle(ctx, commands.NewRecordPerformanceSnapshotsCommand())
	require.NoError(t, err)
	assert.Zero(t, recorded)
	f.assertExpectations(t)
}
