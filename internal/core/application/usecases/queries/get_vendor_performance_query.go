package queries

import (
	"errors"
	"time"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/pkg/guard"
)

var (
	ErrGetVendorPerformanceQueryIsNotConstructed = errors.New(
		"GetVendorPerformanceQuery must be created via NewGetVendorPerformanceQuery constructor",
	)
	ErrGetVendorPerformanceHistoryQueryIsNotConstructed = errors.New(
		"GetVendorPerformanceHistoryQuery must be created via NewGetVendorPerformanceHistoryQuery constructor",
	)
)

// GetVendorPerformanceQuery retrieves the current metrics of one vendor.
type GetVendorPerformanceQuery struct {
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetVendorPerformanceQuery(vendorID kernel.UUID) (GetVendorPerformanceQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetVendorPerformanceQuery{}, err
	}
	return GetVendorPerformanceQuery{vendorID: vendorID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetVendorPerformanceQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorPerformanceQueryIsNotConstructed)
}

func (q GetVendorPerformanceQuery) VendorID() kernel.UUID {
	return q.vendorID
}

// GetVendorPerformanceHistoryQuery retrieves the recorded snapshots of one vendor,
// oldest first.
type GetVendorPerformanceHistoryQuery struct {
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetVendorPerformanceHistoryQuery(vendorID kernel.UUID) (GetVendorPerformanceHistoryQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetVendorPerformanceHistoryQuery{}, err
	}
	return GetVendorPerformanceHistoryQuery{vendorID: vendorID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetVendorPerformanceHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorPerformanceHistoryQueryIsNotConstructed)
}

func (q GetVendorPerformanceHistoryQuery) VendorID() kernel.UUID {
	return q.vendorID
}

// PerformanceMetrics holds the four rolling metrics. Nil means not computed yet.
type PerformanceMetrics struct {
	OnTimeDeliveryRate  *float64
	QualityRatingAvg    *float64
	AverageResponseTime *float64
	FulfillmentRate     *float64
}

type GetVendorPerformanceQueryResponse struct {
	VendorID string
	Name     string
	PerformanceMetrics
}

type GetVendorPerformanceHistoryQueryResponse struct {
	RecordedAt time.Time
	PerformanceMetrics
}
