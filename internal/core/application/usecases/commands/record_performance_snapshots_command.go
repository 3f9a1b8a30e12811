package commands

import (
	"errors"

	"vendorflow/internal/pkg/guard"
)

var ErrRecordPerformanceSnapshotsCommandIsNotConstructed = errors.New(
	"RecordPerformanceSnapshotsCommand must be created via NewRecordPerformanceSnapshotsCommand constructor",
)

// RecordPerformanceSnapshotsCommand asks for one history record per vendor.
// It carries no parameters and is issued by the snapshot job.
type RecordPerformanceSnapshotsCommand struct {
	guard guard.ConstructorGuard
}

func NewRecordPerformanceSnapshotsCommand() RecordPerformanceSnapshotsCommand {
	return RecordPerformanceSnapshotsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c RecordPerformanceSnapshotsCommand) Validate() error {
	return c.guard.Validate(ErrRecordPerformanceSnapshotsCommandIsNotConstructed)
}
