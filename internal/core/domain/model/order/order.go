package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"tailoring/internal/core/domain/model/actor"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/pricing"
	"tailoring/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or
	// RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrIncompleteAssignment is returned when an assignment lacks the tailor or a positive amount.
	ErrIncompleteAssignment = errors.New("assignment requires both a tailor and a positive amount")

	// ErrPrematureDelivery is returned when delivery is touched before the order is Completed.
	ErrPrematureDelivery = errors.New("delivery cannot change before the order is completed")

	ErrCustomerContactIsRequired = errs.NewValueIsRequiredError("customer_contact")
	ErrDeliveryDateIsRequired    = errs.NewValueIsRequiredError("delivery_date")
	ErrMeasurementIsRequired     = errs.NewValueIsRequiredError("measurement_data")
)

// Order is the aggregate root of a single garment order, from placement by a customer to the
// physical handoff.
//
// Invariants:
//   - assignedTailorID and assignmentAmount are both set (Assigned and later) or both nil
//   - status only moves one step forward along the Status chain
//   - price is fixed at placement
//   - deliveryStatus leaves pending only once status is Completed
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	customerContact string
	garment         Garment
	deliveryDate    time.Time
	measurement     MeasurementData
	addresses       Addresses
	price           pricing.Breakdown

	status           Status
	assignedTailorID *kernel.UUID
	assignmentAmount *kernel.Money

	deliveryStatus   DeliveryStatus
	deliveryNotes    string
	outForDeliveryAt *time.Time
	deliveredAt      *time.Time

	createdAt time.Time
	updatedAt time.Time

	events        []Event
	isConstructed bool
}

// Placement holds what a customer chose when placing an order. Price is computed by the caller
// from the catalog and stored as-is.
type Placement struct {
	CustomerContact string
	Garment         Garment
	DeliveryDate    time.Time
	Measurement     MeasurementData
	Addresses       Addresses
	Price           pricing.Breakdown
}

// NewOrder places an order on behalf of a customer. The order starts in PendingAssignment with
// delivery pending and records an EventPlaced.
func NewOrder(id kernel.UUID, by actor.Actor, p Placement, now time.Time) (*Order, error) {
	if err := CanPlace(by); err != nil {
		return nil, err
	}

	o := &Order{
		customerID:     by.ID(),
		status:         PendingAssignment,
		deliveryStatus: DeliveryPending,
		price:          p.Price,
		createdAt:      now.UTC(),
		updatedAt:      now.UTC(),
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerContact(p.CustomerContact),
		o.setGarment(p.Garment),
		o.setDeliveryDate(p.DeliveryDate),
		o.setMeasurement(p.Measurement),
		o.setPrice(p.Price),
	); err != nil {
		return nil, err
	}
	o.addresses = p.Addresses

	o.record(EventPlaced, by, now)
	return o, nil
}

// CanPlace reports whether the actor may place orders at all. Only customers place orders.
func CanPlace(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if !by.Is(actor.Customer) {
		return errs.NewActionIsForbiddenError("place order")
	}
	return nil
}

// Snapshot is the full persisted state of an order, used to rebuild it from storage.
type Snapshot struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	CustomerContact  string
	Garment          Garment
	DeliveryDate     time.Time
	Measurement      MeasurementData
	Addresses        Addresses
	Price            pricing.Breakdown
	Status           Status
	AssignedTailorID *kernel.UUID
	AssignmentAmount *kernel.Money
	DeliveryStatus   DeliveryStatus
	DeliveryNotes    string
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RestoreOrder rebuilds an order from storage. It checks the same invariants the transitions
// keep, so a corrupted row never turns into a live aggregate.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		customerID:       s.CustomerID,
		addresses:        s.Addresses,
		status:           s.Status,
		assignedTailorID: s.AssignedTailorID,
		assignmentAmount: s.AssignmentAmount,
		deliveryStatus:   s.DeliveryStatus,
		deliveryNotes:    s.DeliveryNotes,
		outForDeliveryAt: s.OutForDeliveryAt,
		deliveredAt:      s.DeliveredAt,
		createdAt:        s.CreatedAt,
		updatedAt:        s.UpdatedAt,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		s.CustomerID.Validate(),
		o.setCustomerContact(s.CustomerContact),
		o.setGarment(s.Garment),
		o.setDeliveryDate(s.DeliveryDate),
		o.setMeasurement(s.Measurement),
		o.setPrice(s.Price),
		s.Status.Validate(),
		s.DeliveryStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if err := errors.Join(o.validateAssignment(), o.validateDelivery()); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                { return o.id }
func (o *Order) CustomerID() kernel.UUID        { return o.customerID }
func (o *Order) CustomerContact() string        { return o.customerContact }
func (o *Order) Garment() Garment               { return o.garment }
func (o *Order) DeliveryDate() time.Time        { return o.deliveryDate }
func (o *Order) Measurement() MeasurementData   { return o.measurement }
func (o *Order) Addresses() Addresses           { return o.addresses }
func (o *Order) Price() pricing.Breakdown       { return o.price }
func (o *Order) Status() Status                 { return o.status }
func (o *Order) DeliveryStatus() DeliveryStatus { return o.deliveryStatus }
func (o *Order) DeliveryNotes() string          { return o.deliveryNotes }
func (o *Order) CreatedAt() time.Time           { return o.createdAt }
func (o *Order) UpdatedAt() time.Time           { return o.updatedAt }
func (o *Order) OutForDeliveryAt() *time.Time   { return copyTime(o.outForDeliveryAt) }
func (o *Order) DeliveredAt() *time.Time        { return copyTime(o.deliveredAt) }

// AssignedTailorID returns nil while the order is PendingAssignment.
func (o *Order) AssignedTailorID() *kernel.UUID {
	if o.assignedTailorID == nil {
		return nil
	}
	id := *o.assignedTailorID
	return &id
}

// AssignmentAmount is what the tailor gets paid; nil while the order is PendingAssignment.
func (o *Order) AssignmentAmount() *kernel.Money {
	if o.assignmentAmount == nil {
		return nil
	}
	amount := *o.assignmentAmount
	return &amount
}

// CanBeViewedBy reports whether the actor may see this order: its customer, its assigned
// tailor or any admin.
func (o *Order) CanBeViewedBy(by actor.Actor) bool {
	switch by.Role() {
	case actor.Admin:
		return true
	case actor.Customer:
		return by.ID().IsEqual(o.customerID)
	case actor.Tailor:
		return o.assignedTailorID != nil && by.IsTailor(*o.assignedTailorID)
	case actor.UnknownRole:
		return false
	default:
		return false
	}
}

// AssignTailor moves PendingAssignment to Assigned. Only admins assign, and both the tailor and
// a positive amount are required; a zero tailor id or zero amount means "not supplied".
// Whether the tailor exists is checked by the caller against the roster.
func (o *Order) AssignTailor(by actor.Actor, tailorID kernel.UUID, amount kernel.Money, now time.Time) error {
	if !by.Is(actor.Admin) {
		return errs.NewActionIsForbiddenError("assign tailor")
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	if tailorID.Validate() != nil || !amount.IsPositive() {
		return ErrIncompleteAssignment
	}

	o.status = newStatus
	o.assignedTailorID = &tailorID
	o.assignmentAmount = &amount
	o.touch(now)
	o.record(EventTailorAssigned, by, now)
	return nil
}

// StartWork moves Assigned to InProgress. Only the assigned tailor may start.
func (o *Order) StartWork(by actor.Actor, now time.Time) error {
	if !o.isAssignedTo(by) {
		return errs.NewActionIsForbiddenError("start work")
	}

	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch(now)
	o.record(EventWorkStarted, by, now)
	return nil
}

// CompleteWork moves InProgress to CompletedByTailor. Only the assigned tailor may complete.
func (o *Order) CompleteWork(by actor.Actor, now time.Time) error {
	if !o.isAssignedTo(by) {
		return errs.NewActionIsForbiddenError("complete work")
	}

	newStatus, err := o.status.CompleteByTailor()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch(now)
	o.record(EventWorkCompleted, by, now)
	return nil
}

// Approve moves CompletedByTailor to Completed after an admin reviewed the work.
func (o *Order) Approve(by actor.Actor, now time.Time) error {
	if !by.Is(actor.Admin) {
		return errs.NewActionIsForbiddenError("approve order")
	}

	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch(now)
	o.record(EventApproved, by, now)
	return nil
}

// ChangeStatus routes a requested target status to the matching transition. Assigned goes
// through AssignTailor with nothing supplied and therefore never succeeds here.
func (o *Order) ChangeStatus(by actor.Actor, target Status, now time.Time) error {
	switch target {
	case Assigned:
		return o.AssignTailor(by, kernel.UUID{}, kernel.Zero(), now)
	case InProgress:
		return o.StartWork(by, now)
	case CompletedByTailor:
		return o.CompleteWork(by, now)
	case Completed:
		return o.Approve(by, now)
	case Unknown, PendingAssignment:
		return errs.NewTransitionIsInvalidError("order", o.status.String(), target.String())
	default:
		return errs.NewTransitionIsInvalidError("order", o.status.String(), target.String())
	}
}

// DispatchForDelivery hands a Completed order to delivery. Non-blank notes replace the
// stored ones.
func (o *Order) DispatchForDelivery(by actor.Actor, notes string, now time.Time) error {
	if err := o.checkDeliveryGate(by, "dispatch for delivery"); err != nil {
		return err
	}

	newStatus, err := o.deliveryStatus.Dispatch()
	if err != nil {
		return err
	}

	at := now.UTC()
	o.deliveryStatus = newStatus
	o.outForDeliveryAt = &at
	o.setDeliveryNotes(notes)
	o.touch(now)
	o.record(EventOutForDelivery, by, now)
	return nil
}

// MarkDelivered closes the delivery. deliveredAt never precedes the dispatch time even when the
// caller's clock lags behind.
func (o *Order) MarkDelivered(by actor.Actor, notes string, now time.Time) error {
	if err := o.checkDeliveryGate(by, "mark delivered"); err != nil {
		return err
	}

	newStatus, err := o.deliveryStatus.Deliver()
	if err != nil {
		return err
	}

	at := now.UTC()
	if o.outForDeliveryAt != nil && at.Before(*o.outForDeliveryAt) {
		at = *o.outForDeliveryAt
	}
	o.deliveryStatus = newStatus
	o.deliveredAt = &at
	o.setDeliveryNotes(notes)
	o.touch(now)
	o.record(EventDelivered, by, now)
	return nil
}

// ChangeDeliveryStatus routes a requested delivery status to the matching transition.
func (o *Order) ChangeDeliveryStatus(by actor.Actor, target DeliveryStatus, notes string, now time.Time) error {
	switch target {
	case OutForDelivery:
		return o.DispatchForDelivery(by, notes, now)
	case Delivered:
		return o.MarkDelivered(by, notes, now)
	case UnknownDeliveryStatus, DeliveryPending:
		if err := o.checkDeliveryGate(by, "change delivery status"); err != nil {
			return err
		}
		return errs.NewTransitionIsInvalidError("delivery", o.deliveryStatus.String(), target.String())
	default:
		return errs.NewTransitionIsInvalidError("delivery", o.deliveryStatus.String(), target.String())
	}
}

// DomainEvents returns the events recorded since the order was loaded.
func (o *Order) DomainEvents() []Event {
	return slices.Clone(o.events)
}

// ClearDomainEvents is called once the events were handed to the publisher.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) isAssignedTo(by actor.Actor) bool {
	return o.assignedTailorID != nil && by.IsTailor(*o.assignedTailorID)
}

func (o *Order) checkDeliveryGate(by actor.Actor, action string) error {
	if !by.Is(actor.Admin) {
		return errs.NewActionIsForbiddenError(action)
	}
	if o.status != Completed {
		return fmt.Errorf("%w: status is %s", ErrPrematureDelivery, o.status.DisplayName())
	}
	return nil
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now.UTC()
}

func (o *Order) record(eventType EventType, by actor.Actor, now time.Time) {
	o.events = append(o.events, Event{
		ID:             kernel.NewUUID(),
		Type:           eventType,
		OrderID:        o.id,
		Status:         o.status,
		DeliveryStatus: o.deliveryStatus,
		ActorID:        by.ID(),
		ActorRole:      by.Role(),
		OccurredAt:     now.UTC(),
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerContact(contact string) error {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return ErrCustomerContactIsRequired
	}
	o.customerContact = contact
	return nil
}

func (o *Order) setGarment(g Garment) error {
	if err := g.Validate(); err != nil {
		return err
	}
	o.garment = g
	return nil
}

func (o *Order) setDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return ErrDeliveryDateIsRequired
	}
	o.deliveryDate = pricing.CalendarDay(date)
	return nil
}

func (o *Order) setMeasurement(m MeasurementData) error {
	if m == nil {
		return ErrMeasurementIsRequired
	}
	if err := m.Validate(); err != nil {
		return err
	}
	o.measurement = m
	return nil
}

func (o *Order) setPrice(price pricing.Breakdown) error {
	if !price.Total().IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("total_price", errors.New("total must be positive"))
	}
	o.price = price
	return nil
}

func (o *Order) setDeliveryNotes(notes string) {
	if notes = strings.TrimSpace(notes); notes != "" {
		o.deliveryNotes = notes
	}
}

func (o *Order) validateAssignment() error {
	hasTailor := o.assignedTailorID != nil
	hasAmount := o.assignmentAmount != nil
	if hasTailor != hasAmount {
		return errs.NewValueIsInvalidErrorWithCause(
			"assignment",
			errors.New("assigned tailor and assignment amount must be set together"),
		)
	}
	if hasTailor {
		if err := o.assignedTailorID.Validate(); err != nil {
			return err
		}
		if !o.assignmentAmount.IsPositive() {
			return errs.NewValueIsInvalidErrorWithCause("assignment_amount", errors.New("must be positive"))
		}
	}
	return o.status.ValidateCanHaveTailor(hasTailor)
}

func (o *Order) validateDelivery() error {
	if o.deliveryStatus != DeliveryPending && o.status != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery_status",
			fmt.Errorf("%s requires a completed order, status is %s", o.deliveryStatus, o.status),
		)
	}
	dispatched := o.deliveryStatus == OutForDelivery || o.deliveryStatus == Delivered
	if dispatched != (o.outForDeliveryAt != nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"out_for_delivery_at",
			fmt.Errorf("does not match delivery status %s", o.deliveryStatus),
		)
	}
	if (o.deliveryStatus == Delivered) != (o.deliveredAt != nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivered_at",
			fmt.Errorf("does not match delivery status %s", o.deliveryStatus),
		)
	}
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
