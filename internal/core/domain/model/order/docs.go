// Package order provides the Order aggregate of the tailoring service and the lifecycle state
// machine that governs it.
//
// The package includes:
//   - Order: the aggregate root, from placement by a customer to physical delivery
//   - Status: the work lifecycle PendingAssignment -> Assigned -> InProgress ->
//     CompletedByTailor -> Completed
//   - DeliveryStatus: the delivery sub-state pending -> out_for_delivery -> delivered, which only
//     moves once the order is Completed
//   - MeasurementData: the tagged sample / custom measurement variant with strict JSON encoding
//   - AddOn, Garment, Addresses: immutable creation-time values
//   - Event: the record of every transition, published after the transaction commits
//
// Key business rules:
//   - every operation takes the acting actor.Actor explicitly
//   - the status chain never skips a state and never goes backward
//   - the assigned tailor id and assignment amount are set together or not at all
//   - only the assigned tailor moves an order through InProgress and CompletedByTailor
//   - admins assign, approve and manage delivery; the price is fixed at placement
package order
