package services

import (
	"errors"
	"fmt"
	"slices"

	"tailoring/internal/core/domain/model/catalog"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/pkg/errs"
)

// CheckMeasurements rejects custom measurements naming fields the category does not define.
// Sample measurements always pass.
func CheckMeasurements(category catalog.Category, m order.MeasurementData) error {
	custom, ok := m.(order.CustomMeasurement)
	if !ok {
		return nil
	}

	var unknown []string
	for field := range custom.Measurements() {
		if !category.HasMeasurementField(field) {
			unknown = append(unknown, field)
		}
	}
	if len(unknown) == 0 {
		return nil
	}

	slices.Sort(unknown)
	problems := make([]error, 0, len(unknown))
	for _, field := range unknown {
		problems = append(problems, fmt.Errorf("%s is not measured for %s", field, category.Name))
	}
	return errs.NewValueIsInvalidErrorWithCause("measurements", errors.Join(problems...))
}
