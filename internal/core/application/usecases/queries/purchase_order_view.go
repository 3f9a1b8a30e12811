// Package queries contains the read side of vendorflow. Order queries go through
// the order store and apply the same visibility rules as the commands; vendor
// performance queries read the tables directly.
package queries

import (
	"time"

	"vendorflow/internal/core/domain/model/purchaseorder"
)

// PurchaseOrderView is the read model of a purchase order.
type PurchaseOrderView struct {
	ID                   string
	VendorID             string
	PurchaserID          string
	Items                []ItemView
	Quantity             int
	Status               string
	QualityRating        *float64
	OrderedDate          time.Time
	IssuedDate           time.Time
	AcknowledgedDate     *time.Time
	ExpectedDeliveryDate *time.Time
	ActualDeliveredDate  *time.Time
	Version              int
}

type ItemView struct {
	Name     string
	Quantity int
}

// NewPurchaseOrderView copies order into its read model.
func NewPurchaseOrderView(order *purchaseorder.PurchaseOrder) PurchaseOrderView {
	items := order.Items()
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ItemView{Name: item.Name(), Quantity: item.Quantity()})
	}

	return PurchaseOrderView{
		ID:                   order.ID().String(),
		VendorID:             order.VendorID().String(),
		PurchaserID:          order.PurchaserID().String(),
		Items:                views,
		Quantity:             order.Quantity(),
		Status:               order.Status().String(),
		QualityRating:        order.QualityRating(),
		OrderedDate:          order.OrderedDate(),
		IssuedDate:           order.IssuedDate(),
		AcknowledgedDate:     order.AcknowledgedDate(),
		ExpectedDeliveryDate: order.ExpectedDeliveryDate(),
		ActualDeliveredDate:  order.ActualDeliveredDate(),
		Version:              order.Version(),
	}
}

func newPurchaseOrderViews(orders []*purchaseorder.PurchaseOrder) []PurchaseOrderView {
	views := make([]PurchaseOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewPurchaseOrderView(o))
	}
	return views
}
