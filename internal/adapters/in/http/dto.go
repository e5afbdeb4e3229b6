package http

import (
	"time"

	"tailoring/internal/core/application/usecases/queries"
	"tailoring/internal/core/domain/model/catalog"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/domain/model/pricing"
	"tailoring/internal/core/domain/services"
	"tailoring/internal/core/ports"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Selection struct {
	Category     string              `json:"category"`
	Design       string              `json:"design"`
	AddOns       []string            `json:"add_ons,omitempty"`
	DeliveryDate *openapi_types.Date `json:"delivery_date,omitempty"`
}

type NewOrder struct {
	Selection

	CustomerContact   string              `json:"customer_contact"`
	Measurement       Measurement         `json:"measurement"`
	PickupAddressID   *openapi_types.UUID `json:"pickup_address_id,omitempty"`
	DeliveryAddressID *openapi_types.UUID `json:"delivery_address_id,omitempty"`
}

type Measurement struct {
	Method         string             `json:"method"`
	ImageReference string             `json:"image_reference,omitempty"`
	Measurements   map[string]float64 `json:"measurements,omitempty"`
	SchedulePickup bool               `json:"schedule_pickup,omitempty"`
}

type Assignment struct {
	TailorID         *openapi_types.UUID `json:"tailor_id,omitempty"`
	AssignmentAmount *int64              `json:"assignment_amount,omitempty"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type DeliveryChange struct {
	DeliveryStatus string `json:"delivery_status"`
	Notes          string `json:"notes,omitempty"`
}

type NewTailor struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Tailor struct {
	ID    openapi_types.UUID `json:"id"`
	Name  string             `json:"name"`
	Phone string             `json:"phone"`
}

type Item struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type Price struct {
	BasePrice          int64 `json:"base_price"`
	DesignPrice        int64 `json:"design_price"`
	AddOnsPrice        int64 `json:"add_ons_price"`
	FastDeliveryCharge int64 `json:"fast_delivery_charge"`
	Total              int64 `json:"total"`
}

type Address struct {
	ID           openapi_types.UUID `json:"id"`
	FullName     string             `json:"full_name"`
	AddressLine1 string             `json:"address_line1"`
	AddressLine2 string             `json:"address_line2,omitempty"`
	City         string             `json:"city"`
	State        string             `json:"state"`
	Pincode      string             `json:"pincode"`
	PhoneNumber  string             `json:"phone_number"`
}

type Order struct {
	ID                openapi_types.UUID  `json:"id"`
	CustomerID        openapi_types.UUID  `json:"customer_id"`
	CustomerContact   string              `json:"customer_contact"`
	Category          string              `json:"category"`
	Design            string              `json:"design"`
	AddOns            []Item              `json:"add_ons"`
	DeliveryDate      openapi_types.Date  `json:"delivery_date"`
	Measurement       Measurement         `json:"measurement"`
	Status            string              `json:"status"`
	StatusLabel       string              `json:"status_label"`
	Price             Price               `json:"price"`
	AssignedTailorID  *openapi_types.UUID `json:"assigned_tailor_id,omitempty"`
	AssignmentAmount  *int64              `json:"assignment_amount,omitempty"`
	DeliveryStatus    string              `json:"delivery_status"`
	DeliveryNotes     string              `json:"delivery_notes,omitempty"`
	OutForDeliveryAt  *time.Time          `json:"out_for_delivery_at,omitempty"`
	DeliveredAt       *time.Time          `json:"delivered_at,omitempty"`
	PickupAddressID   *openapi_types.UUID `json:"pickup_address_id,omitempty"`
	DeliveryAddressID *openapi_types.UUID `json:"delivery_address_id,omitempty"`
	PickupAddress     *Address            `json:"pickup_address,omitempty"`
	DeliveryAddress   *Address            `json:"delivery_address,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

type Quote struct {
	Category              Item               `json:"category"`
	Design                Item               `json:"design"`
	AddOns                []Item             `json:"add_ons"`
	DeliveryDate          openapi_types.Date `json:"delivery_date"`
	EstimatedDeliveryDate openapi_types.Date `json:"estimated_delivery_date"`
	Price                 Price              `json:"price"`
}

type MeasurementField struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Unit  string `json:"unit"`
}

type Category struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	BasePrice         int64              `json:"base_price"`
	Designs           []Item             `json:"designs"`
	MeasurementFields []MeasurementField `json:"measurement_fields"`
}

type Catalog struct {
	Categories            []Category         `json:"categories"`
	AddOns                []Item             `json:"add_ons"`
	Today                 openapi_types.Date `json:"today"`
	StandardDeliveryDate  openapi_types.Date `json:"standard_delivery_date"`
	FastDeliveryDailyRate int64              `json:"fast_delivery_daily_rate"`
}

func (s Selection) toSelection() services.Selection {
	sel := services.Selection{
		CategoryID: s.Category,
		DesignID:   s.Design,
		AddOnIDs:   s.AddOns,
	}
	if s.DeliveryDate != nil {
		sel.DeliveryDate = s.DeliveryDate.Time
	}
	return sel
}

func (m Measurement) toDomain() (order.MeasurementData, error) {
	switch order.MeasurementMethod(m.Method) {
	case order.MeasurementSample:
		sample, err := order.NewSampleMeasurement(m.ImageReference)
		if err != nil {
			return nil, err
		}
		return sample, nil
	case order.MeasurementCustom:
		custom, err := order.NewCustomMeasurement(m.Measurements, m.SchedulePickup)
		if err != nil {
			return nil, err
		}
		return custom, nil
	default:
		return nil, order.ErrMeasurementIsRequired
	}
}

func (o NewOrder) addresses() (order.Addresses, error) {
	return order.NewAddresses(kernelUUID(o.PickupAddressID), kernelUUID(o.DeliveryAddressID))
}

func kernelUUID(id *openapi_types.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	u, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil
	}
	return &u
}

func apiUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	u := id.Bytes()
	return &u
}

func date(t time.Time) openapi_types.Date {
	return openapi_types.Date{Time: pricing.CalendarDay(t)}
}

func toOrder(v queries.OrderView) Order {
	addOns := make([]Item, 0, len(v.AddOns))
	for _, a := range v.AddOns {
		addOns = append(addOns, Item{ID: a.ID, Name: a.Name, Price: a.Price})
	}

	return Order{
		ID:              v.ID.Bytes(),
		CustomerID:      v.CustomerID.Bytes(),
		CustomerContact: v.CustomerContact,
		Category:        v.Category,
		Design:          v.Design,
		AddOns:          addOns,
		DeliveryDate:    date(v.DeliveryDate),
		Measurement: Measurement{
			Method:         string(v.Measurement.Method),
			ImageReference: v.Measurement.ImageReference,
			Measurements:   v.Measurement.Measurements,
			SchedulePickup: v.Measurement.SchedulePickup,
		},
		Status:      v.Status.String(),
		StatusLabel: v.Status.DisplayName(),
		Price: Price{
			BasePrice:          v.Price.BasePrice,
			DesignPrice:        v.Price.DesignPrice,
			AddOnsPrice:        v.Price.AddOnsPrice,
			FastDeliveryCharge: v.Price.FastDeliveryCharge,
			Total:              v.Price.Total,
		},
		AssignedTailorID:  apiUUID(v.AssignedTailorID),
		AssignmentAmount:  v.AssignmentAmount,
		DeliveryStatus:    v.DeliveryStatus.String(),
		DeliveryNotes:     v.DeliveryNotes,
		OutForDeliveryAt:  v.OutForDeliveryAt,
		DeliveredAt:       v.DeliveredAt,
		PickupAddressID:   apiUUID(v.PickupAddressID),
		DeliveryAddressID: apiUUID(v.DeliveryAddressID),
		PickupAddress:     toAddress(v.PickupAddress),
		DeliveryAddress:   toAddress(v.DeliveryAddress),
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func toOrders(views []queries.OrderView) []Order {
	response := make([]Order, len(views))
	for i, v := range views {
		response[i] = toOrder(v)
	}
	return response
}

func toAddress(a *ports.Address) *Address {
	if a == nil {
		return nil
	}
	return &Address{
		ID:           a.ID.Bytes(),
		FullName:     a.FullName,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		State:        a.State,
		Pincode:      a.Pincode,
		PhoneNumber:  a.PhoneNumber,
	}
}

func toPrice(b pricing.Breakdown) Price {
	return Price{
		BasePrice:          b.BasePrice().Int64(),
		DesignPrice:        b.DesignPrice().Int64(),
		AddOnsPrice:        b.AddOnsPrice().Int64(),
		FastDeliveryCharge: b.FastDeliveryCharge().Int64(),
		Total:              b.Total().Int64(),
	}
}

func toItems(addOns []catalog.AddOn) []Item {
	items := make([]Item, len(addOns))
	for i, a := range addOns {
		items[i] = Item{ID: a.ID, Name: a.Name, Price: a.Price.Int64()}
	}
	return items
}

func toQuote(q services.Quote) Quote {
	return Quote{
		Category:              Item{ID: q.Category.ID, Name: q.Category.Name, Price: q.Category.BasePrice.Int64()},
		Design:                Item{ID: q.Design.ID, Name: q.Design.Name, Price: q.Design.Price.Int64()},
		AddOns:                toItems(q.AddOns),
		DeliveryDate:          date(q.DeliveryDate),
		EstimatedDeliveryDate: date(q.EstimatedDeliveryDate),
		Price:                 toPrice(q.Price),
	}
}

func toCatalog(v queries.CatalogView) Catalog {
	categories := make([]Category, len(v.Categories))
	for i, c := range v.Categories {
		designs := make([]Item, len(c.Designs))
		for j, d := range c.Designs {
			designs[j] = Item{ID: d.ID, Name: d.Name, Price: d.Price.Int64()}
		}
		fields := make([]MeasurementField, len(c.MeasurementFields))
		for j, f := range c.MeasurementFields {
			fields[j] = MeasurementField{ID: f.ID, Label: f.Label, Unit: f.Unit}
		}
		categories[i] = Category{
			ID:                c.ID,
			Name:              c.Name,
			BasePrice:         c.BasePrice.Int64(),
			Designs:           designs,
			MeasurementFields: fields,
		}
	}

	return Catalog{
		Categories:            categories,
		AddOns:                toItems(v.AddOns),
		Today:                 date(v.Today),
		StandardDeliveryDate:  date(v.StandardDeliveryDate),
		FastDeliveryDailyRate: v.FastDeliveryDailyRate,
	}
}

func toTailor(v queries.TailorView) Tailor {
	return Tailor{ID: v.ID.Bytes(), Name: v.Name, Phone: v.Phone}
}
