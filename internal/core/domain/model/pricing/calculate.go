package pricing

import (
	"time"

	"tailoring/internal/core/domain/model/catalog"
	"tailoring/internal/core/domain/model/kernel"
)

const (
	// StandardLeadDays is the number of days a regular order takes.
	StandardLeadDays = 7

	// FastDeliveryRate is charged per day the requested date is ahead of the standard date.
	FastDeliveryRate int64 = 100

	// BookingWindowDays is how far ahead of today a delivery date may be requested.
	BookingWindowDays = 30
)

// Calculate prices a selection. A nil design costs nothing; callers make sure a design was
// chosen before an order can be placed.
func Calculate(
	category catalog.Category,
	design *catalog.Design,
	addOns []catalog.AddOn,
	deliveryDate time.Time,
	today time.Time,
) Breakdown {
	designPrice := kernel.Zero()
	if design != nil {
		designPrice = design.Price
	}

	addOnsPrice := kernel.Zero()
	for _, a := range addOns {
		addOnsPrice = addOnsPrice.Add(a.Price)
	}

	return NewBreakdown(
		category.BasePrice,
		designPrice,
		addOnsPrice,
		FastDeliveryCharge(deliveryDate, today),
	)
}

// FastDeliveryCharge is zero for any date on or after StandardDeliveryDate(today).
func FastDeliveryCharge(deliveryDate, today time.Time) kernel.Money {
	days := DaysBetween(CalendarDay(deliveryDate), StandardDeliveryDate(today))
	if days <= 0 {
		return kernel.Zero()
	}
	return kernel.MustMoney(FastDeliveryRate).Mul(days)
}

// StandardDeliveryDate is the estimated delivery date of an order placed today.
func StandardDeliveryDate(today time.Time) time.Time {
	return CalendarDay(today).AddDate(0, 0, StandardLeadDays)
}

// LatestDeliveryDate is the last date a customer may request for an order placed today.
func LatestDeliveryDate(today time.Time) time.Time {
	return CalendarDay(today).AddDate(0, 0, BookingWindowDays)
}

// CalendarDay drops the clock part of t, keeping the date as seen in t's own location.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from "from" to "to" (negative when to is earlier).
func DaysBetween(from, to time.Time) int64 {
	return int64(CalendarDay(to).Sub(CalendarDay(from)).Hours() / 24)
}
