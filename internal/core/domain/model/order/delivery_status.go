package order

import (
	"fmt"
	"strings"

	"tailoring/internal/pkg/errs"
)

// DeliveryStatus tracks the physical handoff of a Completed order:
//
//	pending ──> out_for_delivery ──> delivered
type DeliveryStatus int

const (
	UnknownDeliveryStatus DeliveryStatus = iota
	DeliveryPending
	OutForDelivery
	Delivered
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	//nolint:exhaustive // UnknownDeliveryStatus is intentionally excluded as it's invalid
	return map[DeliveryStatus]string{
		DeliveryPending: "pending",
		OutForDelivery:  "out_for_delivery",
		Delivered:       "delivered",
	}
}

func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for status, name := range getDeliveryStatusStrings() {
		if name == key {
			return status, nil
		}
	}
	return UnknownDeliveryStatus, errs.NewValueIsInvalidErrorWithCause(
		"delivery_status",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

func (s DeliveryStatus) Validate() error {
	if _, ok := getDeliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery_status", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Dispatch moves pending to out_for_delivery.
func (s DeliveryStatus) Dispatch() (DeliveryStatus, error) {
	if s != DeliveryPending {
		return 0, errs.NewTransitionIsInvalidError("delivery", s.String(), OutForDelivery.String())
	}
	return OutForDelivery, nil
}

// Deliver moves out_for_delivery to delivered.
func (s DeliveryStatus) Deliver() (DeliveryStatus, error) {
	if s != OutForDelivery {
		return 0, errs.NewTransitionIsInvalidError("delivery", s.String(), Delivered.String())
	}
	return Delivered, nil
}
