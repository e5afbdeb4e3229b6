package queries

import (
	"time"

	"tailoring/internal/core/domain/model/actor"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/ports"
	"tailoring/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderView is the read model of one order as shown on dashboards.
type OrderView struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	CustomerContact  string
	Category         string
	Design           string
	AddOns           []AddOnView
	DeliveryDate     time.Time
	Measurement      MeasurementView
	Status           order.Status
	Price            PriceView
	AssignedTailorID *kernel.UUID
	AssignmentAmount *int64
	DeliveryStatus   order.DeliveryStatus
	DeliveryNotes    string
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	PickupAddressID   *kernel.UUID
	DeliveryAddressID *kernel.UUID

	// PickupAddress and DeliveryAddress are only resolved for admins.
	PickupAddress   *ports.Address
	DeliveryAddress *ports.Address
}

type AddOnView struct {
	ID    string
	Name  string
	Price int64
}

// MeasurementView flattens the measurement variant. ImageReference is set for sample
// measurements, Measurements and SchedulePickup for custom ones.
type MeasurementView struct {
	Method         order.MeasurementMethod
	ImageReference string
	Measurements   map[string]float64
	SchedulePickup bool
}

type PriceView struct {
	BasePrice          int64
	DesignPrice        int64
	AddOnsPrice        int64
	FastDeliveryCharge int64
	Total              int64
}

// VisibleTo reports whether the actor may read the order: its customer, its assigned tailor or
// any admin.
func (v OrderView) VisibleTo(by actor.Actor) bool {
	switch by.Role() {
	case actor.Admin:
		return true
	case actor.Customer:
		return by.ID().IsEqual(v.CustomerID)
	case actor.Tailor:
		return v.AssignedTailorID != nil && by.IsTailor(*v.AssignedTailorID)
	case actor.UnknownRole:
		return false
	default:
		return false
	}
}

// orderColumns is the projection shared by every order query.
const orderColumns = `id, customer_id, customer_contact, category, design, add_ons, delivery_date,
	measurement_data, pickup_address_id, delivery_address_id, status, base_price, design_price,
	add_ons_price, fast_delivery_charge, total_price, assigned_tailor_id, assignment_amount,
	delivery_status, delivery_notes, out_for_delivery_at, delivered_at, created_at, updated_at`

type orderRow struct {
	ID                 uuid.UUID
	CustomerID         uuid.UUID
	CustomerContact    string
	Category           string
	Design             string
	AddOns             string
	DeliveryDate       time.Time
	MeasurementData    string
	PickupAddressID    *uuid.UUID
	DeliveryAddressID  *uuid.UUID
	Status             int
	BasePrice          int64
	DesignPrice        int64
	AddOnsPrice        int64
	FastDeliveryCharge int64
	TotalPrice         int64
	AssignedTailorID   *uuid.UUID
	AssignmentAmount   *int64
	DeliveryStatus     int
	DeliveryNotes      string
	OutForDeliveryAt   *time.Time
	DeliveredAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (r orderRow) toView() (OrderView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderView{}, errs.NewStoreFailureError("decode order", err)
	}
	customerID, err := kernel.UUIDFromBytes(r.CustomerID[:])
	if err != nil {
		return OrderView{}, errs.NewStoreFailureError("decode order "+id.String(), err)
	}

	addOns, err := order.DecodeAddOns([]byte(r.AddOns))
	if err != nil {
		return OrderView{}, errs.NewStoreFailureError("decode order "+id.String(), err)
	}
	measurement, err := order.DecodeMeasurementData([]byte(r.MeasurementData))
	if err != nil {
		return OrderView{}, errs.NewStoreFailureError("decode order "+id.String(), err)
	}

	view := OrderView{
		ID:              id,
		CustomerID:      customerID,
		CustomerContact: r.CustomerContact,
		Category:        r.Category,
		Design:          r.Design,
		AddOns:          make([]AddOnView, 0, len(addOns)),
		DeliveryDate:    r.DeliveryDate.UTC(),
		Measurement:     newMeasurementView(measurement),
		Status:          order.Status(r.Status),
		Price: PriceView{
			BasePrice:          r.BasePrice,
			DesignPrice:        r.DesignPrice,
			AddOnsPrice:        r.AddOnsPrice,
			FastDeliveryCharge: r.FastDeliveryCharge,
			Total:              r.TotalPrice,
		},
		AssignmentAmount:  r.AssignmentAmount,
		DeliveryStatus:    order.DeliveryStatus(r.DeliveryStatus),
		DeliveryNotes:     r.DeliveryNotes,
		OutForDeliveryAt:  utc(r.OutForDeliveryAt),
		DeliveredAt:       utc(r.DeliveredAt),
		CreatedAt:         r.CreatedAt.UTC(),
		UpdatedAt:         r.UpdatedAt.UTC(),
		AssignedTailorID:  optionalUUID(r.AssignedTailorID),
		PickupAddressID:   optionalUUID(r.PickupAddressID),
		DeliveryAddressID: optionalUUID(r.DeliveryAddressID),
	}
	for _, a := range addOns {
		view.AddOns = append(view.AddOns, AddOnView{ID: a.ID(), Name: a.Name(), Price: a.Price().Int64()})
	}

	return view, nil
}

func toViews(rows []orderRow) ([]OrderView, error) {
	views := make([]OrderView, 0, len(rows))
	for _, r := range rows {
		v, err := r.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func newMeasurementView(m order.MeasurementData) MeasurementView {
	switch data := m.(type) {
	case order.SampleMeasurement:
		return MeasurementView{Method: order.MeasurementSample, ImageReference: data.ImageReference()}
	case order.CustomMeasurement:
		return MeasurementView{
			Method:         order.MeasurementCustom,
			Measurements:   data.Measurements(),
			SchedulePickup: data.SchedulePickup(),
		}
	default:
		return MeasurementView{}
	}
}

func optionalUUID(raw *uuid.UUID) *kernel.UUID {
	if raw == nil {
		return nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil
	}
	return &id
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
