// Package vendorrepo persists vendors and their performance history with GORM.
package vendorrepo

import (
	"time"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/vendor"

	"github.com/google/uuid"
)

// VendorDTO is the row of the vendors table. Metrics stay NULL until first computed.
type VendorDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                string    `gorm:"not null"`
	ContactDetails      string
	Address             string
	OnTimeDeliveryRate  *float64
	QualityRatingAvg    *float64
	AverageResponseTime *float64
	FulfillmentRate     *float64
}

func (VendorDTO) TableName() string {
	return "vendors"
}

// PerformanceRecordDTO is one row of the vendor_performance_records history.
type PerformanceRecordDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID            uuid.UUID `gorm:"type:uuid;not null;index:idx_performance_vendor_recorded,priority:1"`
	RecordedAt          time.Time `gorm:"not null;index:idx_performance_vendor_recorded,priority:2"`
	OnTimeDeliveryRate  *float64
	QualityRatingAvg    *float64
	AverageResponseTime *float64
	FulfillmentRate     *float64
}

func (PerformanceRecordDTO) TableName() string {
	return "vendor_performance_records"
}

func fromDomain(v *vendor.Vendor) VendorDTO {
	p := v.Performance()
	return VendorDTO{
		ID:                  v.ID().Bytes(),
		Name:                v.Name(),
		ContactDetails:      v.ContactDetails(),
		Address:             v.Address(),
		OnTimeDeliveryRate:  p.OnTimeDeliveryRate,
		QualityRatingAvg:    p.QualityRatingAvg,
		AverageResponseTime: p.AverageResponseTime,
		FulfillmentRate:     p.FulfillmentRate,
	}
}

func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return vendor.RestoreVendor(id, dto.Name, dto.ContactDetails, dto.Address, vendor.Performance{
		OnTimeDeliveryRate:  dto.OnTimeDeliveryRate,
		QualityRatingAvg:    dto.QualityRatingAvg,
		AverageResponseTime: dto.AverageResponseTime,
		FulfillmentRate:     dto.FulfillmentRate,
	})
}

func recordFromDomain(r vendor.PerformanceRecord) PerformanceRecordDTO {
	p := r.Performance()
	return PerformanceRecordDTO{
		ID:                  r.ID().Bytes(),
		VendorID:            r.VendorID().Bytes(),
		RecordedAt:          r.RecordedAt(),
		OnTimeDeliveryRate:  p.OnTimeDeliveryRate,
		QualityRatingAvg:    p.QualityRatingAvg,
		AverageResponseTime: p.AverageResponseTime,
		FulfillmentRate:     p.FulfillmentRate,
	}
}
