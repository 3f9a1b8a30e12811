package purchaseorder

import (
	"errors"
	"fmt"
	"time"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/pkg/errs"
)

// PurchaseOrder is the aggregate root of the purchase-order lifecycle. It links one
// purchaser to one vendor for a list of items and enforces which transitions are
// legal for its current state.
//
// PurchaseOrder follows these invariants:
//   - id, vendor and purchaser references are valid and never change
//   - items are non-empty and Quantity() always equals TotalQuantity(items)
//   - acknowledged implies an expected delivery date
//   - Delivered implies both acknowledged and actually delivered dates
//   - a quality rating implies Delivered
//   - acknowledged, expected and actually delivered dates are write-once
//
// Transitions never partially apply: on error the aggregate is unchanged and no event
// is recorded.
type PurchaseOrder struct {
	id          kernel.UUID
	vendorID    kernel.UUID
	purchaserID kernel.UUID

	items  []Item
	status Status

	qualityRating *float64

	orderedDate          time.Time
	issuedDate           time.Time
	acknowledgedDate     *time.Time
	expectedDeliveryDate *time.Time
	actualDeliveredDate  *time.Time

	// version is the optimistic concurrency counter maintained by the order store
	version int

	events []DomainEvent

	isConstructed bool
}

// NewPurchaseOrder creates a Pending order issued to the vendor at now.
//
// Parameters:
//   - id: identifier of the new order
//   - purchaserID: the purchaser placing the order
//   - vendorID: the vendor the order is issued to
//   - items: non-empty, each quantity at least 1
//   - now: creation time, used for both ordered and issued dates
//
// Returns:
//   - *PurchaseOrder with version 1 and no recorded events
//   - error joining every invalid argument; item failures wrap ErrInvalidItems
//
// Example:
//
//	bolts, _ := purchaseorder.NewItem("bolts", 40)
//	po, err := purchaseorder.NewPurchaseOrder(kernel.NewUUID(), purchaserID, vendorID, []purchaseorder.Item{bolts}, clock.Now())
func NewPurchaseOrder(id, purchaserID, vendorID kernel.UUID, items []Item, now time.Time) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		status:        Pending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		po.setID(id),
		po.setPurchaserID(purchaserID),
		po.setVendorID(vendorID),
		po.setItems(items),
		po.setCreatedAt(now),
	); err != nil {
		return nil, err
	}

	return po, nil
}

// Snapshot carries the persisted state of a purchase order back into the domain.
type Snapshot struct {
	ID                   kernel.UUID
	VendorID             kernel.UUID
	PurchaserID          kernel.UUID
	Items                []Item
	Status               Status
	QualityRating        *float64
	OrderedDate          time.Time
	IssuedDate           time.Time
	AcknowledgedDate     *time.Time
	ExpectedDeliveryDate *time.Time
	ActualDeliveredDate  *time.Time
	Version              int
}

// RestorePurchaseOrder rebuilds an order loaded from storage and re-checks every
// invariant, so a corrupted row never reaches the lifecycle rules.
func RestorePurchaseOrder(s Snapshot) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		qualityRating:        s.QualityRating,
		orderedDate:          s.OrderedDate,
		issuedDate:           s.IssuedDate,
		acknowledgedDate:     s.AcknowledgedDate,
		expectedDeliveryDate: s.ExpectedDeliveryDate,
		actualDeliveredDate:  s.ActualDeliveredDate,
		isConstructed:        true,
	}

	if err := errors.Join(
		po.setID(s.ID),
		po.setPurchaserID(s.PurchaserID),
		po.setVendorID(s.VendorID),
		po.setItems(s.Items),
		po.setStatus(s.Status),
		po.setVersion(s.Version),
	); err != nil {
		return nil, err
	}

	if err := po.checkInvariants(); err != nil {
		return nil, err
	}

	return po, nil
}

// Validate ensures the order was created through a constructor.
func (o *PurchaseOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrPurchaseOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *PurchaseOrder) IsEqual(other *PurchaseOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *PurchaseOrder) ID() kernel.UUID {
	return o.id
}

func (o *PurchaseOrder) VendorID() kernel.UUID {
	return o.vendorID
}

func (o *PurchaseOrder) PurchaserID() kernel.UUID {
	return o.purchaserID
}

// Items returns a copy of the order lines.
func (o *PurchaseOrder) Items() []Item {
	return cloneItems(o.items)
}

// Quantity is derived from the items on every call.
func (o *PurchaseOrder) Quantity() int {
	return TotalQuantity(o.items)
}

func (o *PurchaseOrder) Status() Status {
	return o.status
}

// QualityRating returns nil until the order is rated.
func (o *PurchaseOrder) QualityRating() *float64 {
	return copyFloat(o.qualityRating)
}

func (o *PurchaseOrder) OrderedDate() time.Time {
	return o.orderedDate
}

func (o *PurchaseOrder) IssuedDate() time.Time {
	return o.issuedDate
}

func (o *PurchaseOrder) AcknowledgedDate() *time.Time {
	return copyTime(o.acknowledgedDate)
}

func (o *PurchaseOrder) ExpectedDeliveryDate() *time.Time {
	return copyTime(o.expectedDeliveryDate)
}

func (o *PurchaseOrder) ActualDeliveredDate() *time.Time {
	return copyTime(o.actualDeliveredDate)
}

func (o *PurchaseOrder) Version() int {
	return o.version
}

func (o *PurchaseOrder) IsAcknowledged() bool {
	return o.acknowledgedDate != nil
}

func (o *PurchaseOrder) IsRated() bool {
	return o.qualityRating != nil
}

// IsDeliveredOnTime reports whether a delivered order arrived no later than the
// calendar day (UTC) the vendor committed to. Orders that are not delivered are
// never on time.
func (o *PurchaseOrder) IsDeliveredOnTime() bool {
	if o.status != Delivered || o.actualDeliveredDate == nil || o.expectedDeliveryDate == nil {
		return false
	}
	return !calendarDate(*o.actualDeliveredDate).After(calendarDate(*o.expectedDeliveryDate))
}

// ResponseTime is the delay between issuing and acknowledging the order, zero when
// the order is not acknowledged.
func (o *PurchaseOrder) ResponseTime() time.Duration {
	if o.acknowledgedDate == nil {
		return 0
	}
	return o.acknowledgedDate.Sub(o.issuedDate)
}

// IsPurchasedBy reports whether id is the purchaser of the order.
func (o *PurchaseOrder) IsPurchasedBy(id kernel.UUID) bool {
	return o.purchaserID.IsEqual(id)
}

// IsIssuedTo reports whether id is the vendor of the order.
func (o *PurchaseOrder) IsIssuedTo(id kernel.UUID) bool {
	return o.vendorID.IsEqual(id)
}

// IsVisibleTo reports whether actor may see and act on the order: vendors see the
// orders issued to them, purchasers the orders they placed, admins every order.
func (o *PurchaseOrder) IsVisibleTo(actor kernel.Actor) bool {
	switch actor.Role() {
	case kernel.RoleVendor:
		return o.IsIssuedTo(actor.ID())
	case kernel.RolePurchaser:
		return o.IsPurchasedBy(actor.ID())
	case kernel.RoleAdmin:
		return true
	}
	return false
}

// ReplaceItems swaps the order lines while the order is still open for editing.
//
// Errors, checked in order:
//   - ErrOrderLocked if the vendor already acknowledged the order
//   - ErrNotPending if the status is not Pending
//   - an error wrapping ErrInvalidItems if items are empty or malformed
//
// Replacing twice with the same items is idempotent on Quantity.
func (o *PurchaseOrder) ReplaceItems(items []Item) error {
	if o.IsAcknowledged() {
		return ErrOrderLocked
	}
	if o.status != Pending {
		return ErrNotPending
	}
	return o.setItems(items)
}

// Cancel moves a Pending, unacknowledged order to Cancelled.
//
// Errors, checked in order:
//   - ErrOrderLocked if the order was acknowledged, delivered or not
//   - ErrAlreadyFinal if the order is already Cancelled
//
// Cancel records no event.
func (o *PurchaseOrder) Cancel() error {
	if o.IsAcknowledged() {
		return ErrOrderLocked
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Acknowledge records the vendor's commitment to deliver by expectedDelivery.
//
// Errors, checked in order:
//   - ErrAlreadyAcknowledged if acknowledged before
//   - ErrNotPending if the status is not Pending
//   - a validation error if expectedDelivery is the zero time
//
// On success it records an EventAcknowledged.
func (o *PurchaseOrder) Acknowledge(expectedDelivery, now time.Time) error {
	if o.IsAcknowledged() {
		return ErrAlreadyAcknowledged
	}
	if o.status != Pending {
		return ErrNotPending
	}
	if expectedDelivery.IsZero() {
		return errs.NewValueIsRequiredError("expected delivery date")
	}

	o.acknowledgedDate = &now
	o.expectedDeliveryDate = &expectedDelivery
	o.recordEvent(EventAcknowledged, now)
	return nil
}

// Deliver marks an acknowledged order as Delivered at now.
//
// Errors, checked in order:
//   - ErrAlreadyFinal if the order is Cancelled or Delivered
//   - ErrNotAcknowledged if the vendor never acknowledged it
//
// On success it records EventDelivered followed by EventStatusChanged.
func (o *PurchaseOrder) Deliver(now time.Time) error {
	if o.status.IsFinal() {
		return ErrAlreadyFinal
	}
	if !o.IsAcknowledged() {
		return ErrNotAcknowledged
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.actualDeliveredDate = &now
	o.recordEvent(EventDelivered, now)
	o.recordEvent(EventStatusChanged, now)
	return nil
}

// Rate sets the quality rating of a delivered order. Rating again overwrites the
// previous value.
//
// Errors, checked in order:
//   - ErrNotDelivered if the status is not Delivered
//   - *errs.ValueIsOutOfRangeError if value is outside [0, scale.Base()]
//
// On success it records an EventRatingProvided.
func (o *PurchaseOrder) Rate(value float64, scale RatingScale, now time.Time) error {
	if o.status != Delivered {
		return ErrNotDelivered
	}
	if err := scale.ValidateRating(value); err != nil {
		return err
	}

	o.qualityRating = &value
	o.recordEvent(EventRatingProvided, now)
	return nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents, oldest first.
func (o *PurchaseOrder) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(o.events))
	copy(out, o.events)
	return out
}

func (o *PurchaseOrder) ClearDomainEvents() {
	o.events = nil
}

// AdvanceVersion is called by the order store after the row was written with the
// current version, so the in-memory aggregate matches the stored counter.
func (o *PurchaseOrder) AdvanceVersion() {
	o.version++
}

func (o *PurchaseOrder) recordEvent(kind EventKind, now time.Time) {
	o.events = append(o.events, DomainEvent{
		kind:       kind,
		orderID:    o.id,
		vendorID:   o.vendorID,
		occurredAt: now,
	})
}

func (o *PurchaseOrder) checkInvariants() error {
	var problems []error

	if o.orderedDate.IsZero() || o.issuedDate.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("ordered and issued dates"))
	}
	if o.acknowledgedDate != nil && o.expectedDeliveryDate == nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("expected delivery date",
			errors.New("acknowledged order has no expected delivery date")))
	}
	if o.status == Delivered && (o.actualDeliveredDate == nil || o.acknowledgedDate == nil) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("delivered order lacks acknowledged or delivered date")))
	}
	if o.status != Delivered && o.actualDeliveredDate != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("actual delivered date",
			fmt.Errorf("%s order has a delivered date", o.status)))
	}
	if o.qualityRating != nil {
		if o.status != Delivered {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("quality rating",
				fmt.Errorf("%s order is rated", o.status)))
		}
		if *o.qualityRating < 0 {
			problems = append(problems, errs.NewValueIsOutOfRangeError("quality rating", *o.qualityRating, 0, nil))
		}
	}

	return errors.Join(problems...)
}

func (o *PurchaseOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *PurchaseOrder) setPurchaserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("purchaserID", err)
	}
	o.purchaserID = id
	return nil
}

func (o *PurchaseOrder) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorID", err)
	}
	o.vendorID = id
	return nil
}

func (o *PurchaseOrder) setItems(items []Item) error {
	if err := validateItems(items); err != nil {
		return err
	}
	o.items = cloneItems(items)
	return nil
}

func (o *PurchaseOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *PurchaseOrder) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause("version", fmt.Errorf("%d is less than 1", version))
	}
	o.version = version
	return nil
}

func (o *PurchaseOrder) setCreatedAt(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("creation time")
	}
	o.orderedDate = now
	o.issuedDate = now
	return nil
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}
