package commands

import (
	"context"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/vendor"
	"vendorflow/internal/core/ports"
)

// RecordPerformanceSnapshotsCommandHandler appends the current metrics of every
// vendor to the performance history. All records of one run share the same
// timestamp and are written in a single transaction.
//
// Example:
//
//	handler := NewRecordPerformanceSnapshotsCommandHandler(uowFactory, clock.Real())
//	recorded, err := handler.Handle(ctx, NewRecordPerformanceSnapshotsCommand())
//	if err != nil {
//	    return fmt.Errorf("performance snapshot failed: %w", err)
//	}
type RecordPerformanceSnapshotsCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewRecordPerformanceSnapshotsCommandHandler(
	uowFactory UoWFactory,
	clock ports.Clock,
) RecordPerformanceSnapshotsCommandHandler {
	return RecordPerformanceSnapshotsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the number of records written.
func (h *RecordPerformanceSnapshotsCommandHandler) Handle(
	ctx context.Context,
	cmd RecordPerformanceSnapshotsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vendorRepo := uow.VendorRepository()
	vendors, err := vendorRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	recordedAt := h.clock.Now()
	for _, v := range vendors {
		record, recordErr := vendor.NewPerformanceRecord(kernel.NewUUID(), v, recordedAt)
		if recordErr != nil {
			return 0, recordErr
		}

		if err = vendorRepo.AddPerformanceRecord(ctx, record); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(vendors), nil
}
