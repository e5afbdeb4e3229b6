package order

import (
	"fmt"
	"strings"

	"tailoring/internal/pkg/errs"
)

// Status is the work lifecycle of an order.
//
// State transitions:
//
//	PendingAssignment ──> Assigned ──> InProgress ──> CompletedByTailor ──> Completed
//	     (admin)           (tailor)       (tailor)           (admin)
//
// Every edge moves exactly one step forward. Completed is terminal; from there only the
// DeliveryStatus sub-state changes.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota

	// PendingAssignment is the initial status of a placed order, waiting in the admin inbox.
	PendingAssignment

	// Assigned means an admin picked a tailor and fixed the tailor's assignment amount.
	Assigned

	// InProgress means the assigned tailor started working on the garment.
	InProgress

	// CompletedByTailor means the tailor finished and the order waits for admin review.
	CompletedByTailor

	// Completed means an admin approved the work. Delivery tracking starts here.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		PendingAssignment: "PendingAssignment",
		Assigned:          "Assigned",
		InProgress:        "InProgress",
		CompletedByTailor: "CompletedByTailor",
		Completed:         "Completed",
	}
}

func getStatusDisplayNames() map[Status]string {
	//nolint:exhaustive // Unknown has no display name
	return map[Status]string{
		PendingAssignment: "Pending Assignment",
		Assigned:          "Assigned",
		InProgress:        "In Progress",
		CompletedByTailor: "Completed by Tailor",
		Completed:         "Completed",
	}
}

// ParseStatus accepts the identifier ("CompletedByTailor"), the display name
// ("Completed by Tailor") or snake case ("completed_by_tailor").
func ParseStatus(s string) (Status, error) {
	key := normalizeStatusKey(s)
	for status, name := range getStatusStrings() {
		if status != Unknown && normalizeStatusKey(name) == key {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func normalizeStatusKey(s string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.TrimSpace(s)))
}

// Validate rejects Unknown and any value outside the enum.
func (s Status) Validate() error {
	if _, ok := getStatusDisplayNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// DisplayName is the label shown on dashboards, e.g. "Completed by Tailor".
func (s Status) DisplayName() string {
	if str, ok := getStatusDisplayNames()[s]; ok {
		return str
	}
	return "Unknown"
}

// HasTailor reports whether an order in this status must carry a tailor assignment.
func (s Status) HasTailor() bool {
	return s >= Assigned && s <= Completed
}

// ValidateCanHaveTailor checks that the assignment fields agree with the status:
// PendingAssignment orders have no tailor, every later status has one.
func (s Status) ValidateCanHaveTailor(hasTailor bool) error {
	if hasTailor && !s.HasTailor() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a tailor", s),
		)
	}
	if !hasTailor && s.HasTailor() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no tailor", s),
		)
	}
	return nil
}

// Assign moves PendingAssignment to Assigned.
func (s Status) Assign() (Status, error) {
	return s.step(PendingAssignment, Assigned)
}

// Start moves Assigned to InProgress.
func (s Status) Start() (Status, error) {
	return s.step(Assigned, InProgress)
}

// CompleteByTailor moves InProgress to CompletedByTailor.
func (s Status) CompleteByTailor() (Status, error) {
	return s.step(InProgress, CompletedByTailor)
}

// Approve moves CompletedByTailor to Completed.
func (s Status) Approve() (Status, error) {
	return s.step(CompletedByTailor, Completed)
}

// step returns (0, error) unless s is the only status allowed to move to target.
func (s Status) step(from, target Status) (Status, error) {
	if s != from {
		return 0, errs.NewTransitionIsInvalidError("order", s.String(), target.String())
	}
	return target, nil
}
