// Package pricing is the pricing engine of the tailoring service.
//
// Calculate is a pure function of the selected category, design and add-ons, the requested
// delivery date and the reference date "today". The result is a Breakdown that surfaces every
// term, because both the order record and the customer facing quote display the decomposition:
//
//	subtotal           = category base price + design price + sum of add-on prices
//	standard date      = today + StandardLeadDays
//	fastDeliveryCharge = (standard date - requested date) in whole days * FastDeliveryRate,
//	                     only when the requested date is earlier than the standard date
//	total              = subtotal + fastDeliveryCharge
//
// Dates are compared as calendar days.
package pricing
