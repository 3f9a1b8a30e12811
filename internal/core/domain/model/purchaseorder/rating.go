package purchaseorder

import (
	"fmt"
	"math"

	"vendorflow/internal/pkg/errs"
)

// DefaultRatingBase is the rating ceiling used when none is configured.
const DefaultRatingBase = 5.0

// RatingScale is the configured ceiling of quality ratings. The same value scales
// the on-time delivery and fulfillment rates of a vendor.
type RatingScale struct {
	base float64
}

// NewRatingScale requires a strictly positive ceiling.
func NewRatingScale(base float64) (RatingScale, error) {
	if base <= 0 {
		return RatingScale{}, errs.NewValueIsInvalidErrorWithCause("rating base value", fmt.Errorf("%v is not greater than 0", base))
	}
	return RatingScale{base: base}, nil
}

// Base returns the ceiling, DefaultRatingBase for the zero value.
func (s RatingScale) Base() float64 {
	if s.base <= 0 {
		return DefaultRatingBase
	}
	return s.base
}

// ValidateRating returns an *errs.ValueIsOutOfRangeError when value is outside [0, Base].
func (s RatingScale) ValidateRating(value float64) error {
	if math.IsNaN(value) || value < 0 || value > s.Base() {
		return errs.NewValueIsOutOfRangeError("quality rating", value, 0, s.Base())
	}
	return nil
}
