// Package purchaseorderrepo persists purchase orders with GORM. Items are stored as a
// jsonb array of {"item", "quantity"} objects and the status as a one-letter code.
package purchaseorderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"

	"github.com/google/uuid"
)

// PurchaseOrderDTO is the row of the purchase_orders table.
type PurchaseOrderDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID             uuid.UUID `gorm:"type:uuid;not null;index"`
	PurchaserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Items                ItemsDTO  `gorm:"type:jsonb;not null"`
	Quantity             int       `gorm:"not null"`
	Status               string    `gorm:"type:char(1);not null;index"`
	QualityRating        *float64
	OrderedDate          time.Time `gorm:"not null"`
	IssuedDate           time.Time `gorm:"not null"`
	AcknowledgedDate     *time.Time
	ExpectedDeliveryDate *time.Time
	ActualDeliveredDate  *time.Time
	Version              int `gorm:"not null;default:1"`
}

func (PurchaseOrderDTO) TableName() string {
	return "purchase_orders"
}

// ItemDTO is one element of the items column.
type ItemDTO struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// ItemsDTO maps the jsonb items column.
type ItemsDTO []ItemDTO

// Value implements driver.Valuer.
func (i ItemsDTO) Value() (driver.Value, error) {
	if i == nil {
		return "[]", nil
	}
	raw, err := json.Marshal([]ItemDTO(i))
	if err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}
	return string(raw), nil
}

// Scan implements sql.Scanner.
func (i *ItemsDTO) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*i = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("items: unsupported scan type %T", value)
	}

	var items []ItemDTO
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("items: %w", err)
	}
	*i = items
	return nil
}

func fromDomain(order *purchaseorder.PurchaseOrder) PurchaseOrderDTO {
	items := order.Items()
	itemDTOs := make(ItemsDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{Item: item.Name(), Quantity: item.Quantity()})
	}

	return PurchaseOrderDTO{
		ID:                   order.ID().Bytes(),
		VendorID:             order.VendorID().Bytes(),
		PurchaserID:          order.PurchaserID().Bytes(),
		Items:                itemDTOs,
		Quantity:             order.Quantity(),
		Status:               order.Status().Code(),
		QualityRating:        order.QualityRating(),
		OrderedDate:          order.OrderedDate(),
		IssuedDate:           order.IssuedDate(),
		AcknowledgedDate:     order.AcknowledgedDate(),
		ExpectedDeliveryDate: order.ExpectedDeliveryDate(),
		ActualDeliveredDate:  order.ActualDeliveredDate(),
		Version:              order.Version(),
	}
}

// toDomain restores the aggregate and with it every lifecycle invariant. A stored
// quantity that disagrees with the items is reported as corrupted.
func toDomain(dto PurchaseOrderDTO) (*purchaseorder.PurchaseOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}
	purchaserID, err := kernel.UUIDFromBytes(dto.PurchaserID[:])
	if err != nil {
		return nil, err
	}
	status, err := purchaseorder.StatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]purchaseorder.Item, 0, len(dto.Items))
	for _, raw := range dto.Items {
		item, itemErr := purchaseorder.NewItem(raw.Item, raw.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}
	if total := purchaseorder.TotalQuantity(items); total != dto.Quantity {
		return nil, fmt.Errorf("purchase order %s: stored quantity %d, items sum to %d", id, dto.Quantity, total)
	}

	return purchaseorder.RestorePurchaseOrder(purchaseorder.Snapshot{
		ID:                   id,
		VendorID:             vendorID,
		PurchaserID:          purchaserID,
		Items:                items,
		Status:               status,
		QualityRating:        dto.QualityRating,
		OrderedDate:          dto.OrderedDate,
		IssuedDate:           dto.IssuedDate,
		AcknowledgedDate:     dto.AcknowledgedDate,
		ExpectedDeliveryDate: dto.ExpectedDeliveryDate,
		ActualDeliveredDate:  dto.ActualDeliveredDate,
		Version:              dto.Version,
	})
}

func toDomainList(dtos []PurchaseOrderDTO) ([]*purchaseorder.PurchaseOrder, error) {
	orders := make([]*purchaseorder.PurchaseOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
