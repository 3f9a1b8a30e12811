package queries

import (
	"context"
	"database/sql"
	"errors"

	"vendorflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetVendorPerformanceQueryHandler reads vendor metrics straight from the vendors
// table.
type GetVendorPerformanceQueryHandler struct {
	db *gorm.DB
}

func NewGetVendorPerformanceQueryHandler(db *gorm.DB) GetVendorPerformanceQueryHandler {
	return GetVendorPerformanceQueryHandler{db: db}
}

func (h GetVendorPerformanceQueryHandler) Handle(
	ctx context.Context,
	query GetVendorPerformanceQuery,
) (GetVendorPerformanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetVendorPerformanceQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			on_time_delivery_rate,
			quality_rating_avg,
			average_response_time,
			fulfillment_rate
		FROM vendors
		WHERE id = ?
	`, query.VendorID().Bytes()).Row()

	resp := GetVendorPerformanceQueryResponse{VendorID: query.VendorID().String()}
	err := row.Scan(
		&resp.Name,
		&resp.OnTimeDeliveryRate,
		&resp.QualityRatingAvg,
		&resp.AverageResponseTime,
		&resp.FulfillmentRate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetVendorPerformanceQueryResponse{}, errs.NewObjectNotFoundError("vendorID", query.VendorID().String())
	}
	if err != nil {
		return GetVendorPerformanceQueryResponse{}, err
	}

	return resp, nil
}

// GetVendorPerformanceHistoryQueryHandler reads the recorded snapshots of a vendor.
// An unknown vendor is an error; a known vendor without snapshots yields an empty slice.
type GetVendorPerformanceHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetVendorPerformanceHistoryQueryHandler(db *gorm.DB) GetVendorPerformanceHistoryQueryHandler {
	return GetVendorPerformanceHistoryQueryHandler{db: db}
}

func (h GetVendorPerformanceHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetVendorPerformanceHistoryQuery,
) ([]GetVendorPerformanceHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var vendors int64
	if err := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM vendors WHERE id = ?`, query.VendorID().Bytes(),
	).Scan(&vendors).Error; err != nil {
		return nil, err
	}
	if vendors == 0 {
		return nil, errs.NewObjectNotFoundError("vendorID", query.VendorID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			recorded_at,
			on_time_delivery_rate,
			quality_rating_avg,
			average_response_time,
			fulfillment_rate
		FROM vendor_performance_records
		WHERE vendor_id = ?
		ORDER BY recorded_at, id
	`, query.VendorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]GetVendorPerformanceHistoryQueryResponse, 0)
	for rows.Next() {
		var record GetVendorPerformanceHistoryQueryResponse
		if err = rows.Scan(
			&record.RecordedAt,
			&record.OnTimeDeliveryRate,
			&record.QualityRatingAvg,
			&record.AverageResponseTime,
			&record.FulfillmentRate,
		); err != nil {
			return nil, err
		}
		history = append(history, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
