package services

import (
	"time"

	"vendorflow/internal/core/domain/model/purchaseorder"

	"github.com/shopspring/decimal"
)

// ResponseTimePrecision is the number of decimal places kept for the average response
// time, expressed in days.
const ResponseTimePrecision = 1

var secondsPerDay = decimal.NewFromInt(int64(24 * time.Hour / time.Second))

// PerformanceCalculator computes the four rolling vendor metrics. Every method returns
// ok = false when no order qualifies; callers then leave the metric unchanged.
//
// Rates are scaled by the rating scale so that a perfect vendor scores scale.Base():
//
//	calc := services.NewPerformanceCalculator(scale)
//	rate, ok := calc.FulfillmentRate(3, 4) // 3.75 with a base of 5
type PerformanceCalculator struct {
	scale purchaseorder.RatingScale
}

func NewPerformanceCalculator(scale purchaseorder.RatingScale) PerformanceCalculator {
	return PerformanceCalculator{scale: scale}
}

// OnTimeDeliveryRate is on_time / delivered × base over the given orders. Orders that
// are not Delivered are ignored.
func (c PerformanceCalculator) OnTimeDeliveryRate(orders []*purchaseorder.PurchaseOrder) (float64, bool) {
	var delivered, onTime int64
	for _, o := range orders {
		if o == nil || o.Status() != purchaseorder.Delivered {
			continue
		}
		delivered++
		if o.IsDeliveredOnTime() {
			onTime++
		}
	}
	return c.scaledRatio(onTime, delivered)
}

// FulfillmentRate is delivered / total × base.
func (c PerformanceCalculator) FulfillmentRate(delivered, total int64) (float64, bool) {
	return c.scaledRatio(delivered, total)
}

// QualityRatingAverage is the mean rating over the Delivered, rated orders.
func (c PerformanceCalculator) QualityRatingAverage(orders []*purchaseorder.PurchaseOrder) (float64, bool) {
	sum := decimal.Zero
	var count int64
	for _, o := range orders {
		if o == nil || o.Status() != purchaseorder.Delivered {
			continue
		}
		rating := o.QualityRating()
		if rating == nil {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(*rating))
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum.Div(decimal.NewFromInt(count)).InexactFloat64(), true
}

// AverageResponseTimeDays converts a mean acknowledgement delay, in seconds, to days
// rounded to ResponseTimePrecision places. samples is the number of acknowledged
// orders behind the mean.
func (c PerformanceCalculator) AverageResponseTimeDays(avgSeconds float64, samples int64) (float64, bool) {
	if samples == 0 {
		return 0, false
	}
	days := decimal.NewFromFloat(avgSeconds).Div(secondsPerDay).Round(ResponseTimePrecision)
	return days.InexactFloat64(), true
}

func (c PerformanceCalculator) scaledRatio(numerator, denominator int64) (float64, bool) {
	if denominator == 0 {
		return 0, false
	}
	ratio := decimal.NewFromInt(numerator).
		Div(decimal.NewFromInt(denominator)).
		Mul(decimal.NewFromFloat(c.scale.Base()))
	return ratio.InexactFloat64(), true
}
