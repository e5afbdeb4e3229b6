// Package orderrepo persists order aggregates in the orders table. Add-ons and measurement data
// are JSON documents in text columns and are decoded strictly on read.
package orderrepo

import (
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/domain/model/pricing"
	"tailoring/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderDTO is the row layout of the orders table.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	CustomerContact    string     `gorm:"not null"`
	Category           string     `gorm:"not null"`
	Design             string     `gorm:"not null"`
	AddOns             string     `gorm:"type:text;not null"`
	DeliveryDate       time.Time  `gorm:"type:date;not null"`
	MeasurementData    string     `gorm:"type:text;not null"`
	PickupAddressID    *uuid.UUID `gorm:"type:uuid"`
	DeliveryAddressID  *uuid.UUID `gorm:"type:uuid"`
	Status             int        `gorm:"not null;index"`
	BasePrice          int64      `gorm:"not null"`
	DesignPrice        int64      `gorm:"not null"`
	AddOnsPrice        int64      `gorm:"not null"`
	FastDeliveryCharge int64      `gorm:"not null"`
	TotalPrice         int64      `gorm:"not null"`
	AssignedTailorID   *uuid.UUID `gorm:"type:uuid;index"`
	AssignmentAmount   *int64
	DeliveryStatus     int    `gorm:"not null"`
	DeliveryNotes      string `gorm:"not null;default:''"`
	OutForDeliveryAt   *time.Time
	DeliveredAt        *time.Time
	CreatedAt          time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt          time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// mutableColumns are the only columns Update writes.
var mutableColumns = []string{
	"status",
	"assigned_tailor_id",
	"assignment_amount",
	"delivery_status",
	"delivery_notes",
	"out_for_delivery_at",
	"delivered_at",
	"updated_at",
}

func fromDomain(o *order.Order) (OrderDTO, error) {
	addOns, err := order.EncodeAddOns(o.Garment().AddOns())
	if err != nil {
		return OrderDTO{}, err
	}
	measurement, err := order.EncodeMeasurementData(o.Measurement())
	if err != nil {
		return OrderDTO{}, err
	}

	dto := OrderDTO{
		ID:                 o.ID().Bytes(),
		CustomerID:         o.CustomerID().Bytes(),
		CustomerContact:    o.CustomerContact(),
		Category:           o.Garment().Category(),
		Design:             o.Garment().Design(),
		AddOns:             string(addOns),
		DeliveryDate:       o.DeliveryDate(),
		MeasurementData:    string(measurement),
		PickupAddressID:    rawUUID(o.Addresses().PickupID()),
		DeliveryAddressID:  rawUUID(o.Addresses().DeliveryID()),
		Status:             int(o.Status()),
		BasePrice:          o.Price().BasePrice().Int64(),
		DesignPrice:        o.Price().DesignPrice().Int64(),
		AddOnsPrice:        o.Price().AddOnsPrice().Int64(),
		FastDeliveryCharge: o.Price().FastDeliveryCharge().Int64(),
		TotalPrice:         o.Price().Total().Int64(),
		AssignedTailorID:   rawUUID(o.AssignedTailorID()),
		DeliveryStatus:     int(o.DeliveryStatus()),
		DeliveryNotes:      o.DeliveryNotes(),
		OutForDeliveryAt:   o.OutForDeliveryAt(),
		DeliveredAt:        o.DeliveredAt(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
	if amount := o.AssignmentAmount(); amount != nil {
		v := amount.Int64()
		dto.AssignmentAmount = &v
	}

	return dto, nil
}

// toDomain rebuilds the aggregate through RestoreOrder; every decoding problem surfaces as
// ValueIsInvalid.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("customer_id", err)
	}

	addOns, err := order.DecodeAddOns([]byte(dto.AddOns))
	if err != nil {
		return nil, err
	}
	garment, err := order.NewGarment(dto.Category, dto.Design, addOns)
	if err != nil {
		return nil, err
	}

	measurement, err := order.DecodeMeasurementData([]byte(dto.MeasurementData))
	if err != nil {
		return nil, err
	}

	pickupID, err := domainUUID("pickup_address_id", dto.PickupAddressID)
	if err != nil {
		return nil, err
	}
	deliveryID, err := domainUUID("delivery_address_id", dto.DeliveryAddressID)
	if err != nil {
		return nil, err
	}
	addresses, err := order.NewAddresses(pickupID, deliveryID)
	if err != nil {
		return nil, err
	}

	price, err := restorePrice(dto)
	if err != nil {
		return nil, err
	}

	tailorID, err := domainUUID("assigned_tailor_id", dto.AssignedTailorID)
	if err != nil {
		return nil, err
	}
	var amount *kernel.Money
	if dto.AssignmentAmount != nil {
		m, moneyErr := kernel.NewMoney(*dto.AssignmentAmount)
		if moneyErr != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("assignment_amount", moneyErr)
		}
		amount = &m
	}

	return order.RestoreOrder(order.Snapshot{
		ID:               id,
		CustomerID:       customerID,
		CustomerContact:  dto.CustomerContact,
		Garment:          garment,
		DeliveryDate:     dto.DeliveryDate,
		Measurement:      measurement,
		Addresses:        addresses,
		Price:            price,
		Status:           order.Status(dto.Status),
		AssignedTailorID: tailorID,
		AssignmentAmount: amount,
		DeliveryStatus:   order.DeliveryStatus(dto.DeliveryStatus),
		DeliveryNotes:    dto.DeliveryNotes,
		OutForDeliveryAt: utcTime(dto.OutForDeliveryAt),
		DeliveredAt:      utcTime(dto.DeliveredAt),
		CreatedAt:        dto.CreatedAt.UTC(),
		UpdatedAt:        dto.UpdatedAt.UTC(),
	})
}

func restorePrice(dto OrderDTO) (pricing.Breakdown, error) {
	var parts [5]kernel.Money
	for i, v := range []int64{dto.BasePrice, dto.DesignPrice, dto.AddOnsPrice, dto.FastDeliveryCharge, dto.TotalPrice} {
		m, err := kernel.NewMoney(v)
		if err != nil {
			return pricing.Breakdown{}, errs.NewValueIsInvalidErrorWithCause("price", err)
		}
		parts[i] = m
	}
	return pricing.RestoreBreakdown(parts[0], parts[1], parts[2], parts[3], parts[4])
}

func rawUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainUUID(column string, raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // NULL column
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(column, err)
	}
	return &id, nil
}

func utcTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
