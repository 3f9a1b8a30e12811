package http

import (
	"time"

	"vendorflow/internal/core/application/usecases/commands"
	"vendorflow/internal/core/application/usecases/queries"
	"vendorflow/internal/core/domain/model/purchaseorder"
)

type itemRequest struct {
	Item     string `json:"item" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type createPurchaseOrderRequest struct {
	VendorID string        `json:"vendor" validate:"required,uuid"`
	Items    []itemRequest `json:"items" validate:"required,min=1,dive"`
}

type replaceItemsRequest struct {
	Items []itemRequest `json:"items" validate:"required,min=1,dive"`
}

type acknowledgeRequest struct {
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date" validate:"required"`
}

type rateRequest struct {
	QualityRating *float64 `json:"quality_rating" validate:"required"`
}

func toItems(reqs []itemRequest) ([]purchaseorder.Item, error) {
	items := make([]purchaseorder.Item, 0, len(reqs))
	for _, r := range reqs {
		item, err := purchaseorder.NewItem(r.Item, r.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

type itemResponse struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

type purchaseOrderResponse struct {
	ID                   string         `json:"id"`
	VendorID             string         `json:"vendor"`
	PurchaserID          string         `json:"purchaser"`
	Items                []itemResponse `json:"items"`
	Quantity             int            `json:"quantity"`
	Status               string         `json:"status"`
	QualityRating        *float64       `json:"quality_rating"`
	OrderedDate          time.Time      `json:"ordered_date"`
	IssuedDate           time.Time      `json:"issued_date"`
	AcknowledgedDate     *time.Time     `json:"acknowledged_date"`
	ExpectedDeliveryDate *time.Time     `json:"expected_delivery_date"`
	ActualDeliveredDate  *time.Time     `json:"actual_delivered_date"`
	Version              int            `json:"version"`
	Warnings             []string       `json:"warnings,omitempty"`
}

func newPurchaseOrderResponse(view queries.PurchaseOrderView) purchaseOrderResponse {
	items := make([]itemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, itemResponse{Item: item.Name, Quantity: item.Quantity})
	}
	return purchaseOrderResponse{
		ID:                   view.ID,
		VendorID:             view.VendorID,
		PurchaserID:          view.PurchaserID,
		Items:                items,
		Quantity:             view.Quantity,
		Status:               view.Status,
		QualityRating:        view.QualityRating,
		OrderedDate:          view.OrderedDate,
		IssuedDate:           view.IssuedDate,
		AcknowledgedDate:     view.AcknowledgedDate,
		ExpectedDeliveryDate: view.ExpectedDeliveryDate,
		ActualDeliveredDate:  view.ActualDeliveredDate,
		Version:              view.Version,
	}
}

// newTransitionResponse renders the committed order and, if the metrics update
// failed afterwards, the warning.
func newTransitionResponse(result commands.TransitionResult) purchaseOrderResponse {
	resp := newPurchaseOrderResponse(queries.NewPurchaseOrderView(result.Order))
	if result.HasWarning() {
		resp.Warnings = []string{result.Warning.Error()}
	}
	return resp
}

type performanceResponse struct {
	OnTimeDeliveryRate  *float64 `json:"on_time_delivery_rate"`
	QualityRatingAvg    *float64 `json:"quality_rating_avg"`
	AverageResponseTime *float64 `json:"average_response_time"`
	FulfillmentRate     *float64 `json:"fulfillment_rate"`
}

func newPerformanceResponse(m queries.PerformanceMetrics) performanceResponse {
	return performanceResponse{
		OnTimeDeliveryRate:  m.OnTimeDeliveryRate,
		QualityRatingAvg:    m.QualityRatingAvg,
		AverageResponseTime: m.AverageResponseTime,
		FulfillmentRate:     m.FulfillmentRate,
	}
}

type vendorPerformanceResponse struct {
	VendorID string `json:"vendor"`
	Name     string `json:"name"`
	performanceResponse
}

type performanceRecordResponse struct {
	RecordedAt time.Time `json:"recorded_at"`
	performanceResponse
}

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}
