// Package tailor provides the Tailor record: a user with the tailor role that orders can be
// assigned to. The order workflow treats tailors as read-only; the record is only used to check
// that an assignment target exists and to display who is working on an order.
package tailor
