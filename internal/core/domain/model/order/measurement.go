package order

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"math"
	"strings"

	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/guard"
)

// MeasurementMethod tags the MeasurementData variant.
type MeasurementMethod string

const (
	MeasurementSample MeasurementMethod = "sample"
	MeasurementCustom MeasurementMethod = "custom"
)

var (
	ErrMeasurementIsNotConstructed = errors.New("MeasurementData must be created via its constructor")
	ErrImageReferenceIsRequired    = errs.NewValueIsRequiredError("image_reference")
	ErrMeasurementsAreRequired     = errs.NewValueIsRequiredError("measurements")
)

// MeasurementData is how the customer supplied sizes: either a reference sample garment photo
// or custom body measurements. The set of variants is closed.
type MeasurementData interface {
	Method() MeasurementMethod
	Validate() error
	isMeasurementData()
}

// SampleMeasurement points at a photo of a garment that already fits.
type SampleMeasurement struct {
	imageReference string
	guard          guard.ConstructorGuard
}

func NewSampleMeasurement(imageReference string) (SampleMeasurement, error) {
	imageReference = strings.TrimSpace(imageReference)
	if imageReference == "" {
		return SampleMeasurement{}, ErrImageReferenceIsRequired
	}
	return SampleMeasurement{imageReference: imageReference, guard: guard.NewConstructorGuard()}, nil
}

func (SampleMeasurement) Method() MeasurementMethod { return MeasurementSample }

func (m SampleMeasurement) Validate() error {
	return m.guard.Validate(ErrMeasurementIsNotConstructed)
}

func (m SampleMeasurement) ImageReference() string {
	return m.imageReference
}

func (SampleMeasurement) isMeasurementData() {}

// CustomMeasurement carries body measurements keyed by catalog measurement field id.
type CustomMeasurement struct {
	measurements   map[string]float64
	schedulePickup bool
	guard          guard.ConstructorGuard
}

// NewCustomMeasurement requires at least one measurement; every value must be finite and positive.
func NewCustomMeasurement(measurements map[string]float64, schedulePickup bool) (CustomMeasurement, error) {
	if len(measurements) == 0 {
		return CustomMeasurement{}, ErrMeasurementsAreRequired
	}

	var problems []error
	for field, value := range measurements {
		if strings.TrimSpace(field) == "" {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"measurements", errors.New("field name must not be blank")))
			continue
		}
		if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"measurements", fmt.Errorf("%s must be a positive number, got %v", field, value)))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return CustomMeasurement{}, err
	}

	return CustomMeasurement{
		measurements:   maps.Clone(measurements),
		schedulePickup: schedulePickup,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (CustomMeasurement) Method() MeasurementMethod { return MeasurementCustom }

func (m CustomMeasurement) Validate() error {
	return m.guard.Validate(ErrMeasurementIsNotConstructed)
}

// Measurements returns a copy of the field -> value map.
func (m CustomMeasurement) Measurements() map[string]float64 {
	return maps.Clone(m.measurements)
}

// SchedulePickup reports whether the customer asked for a home visit to take measurements.
func (m CustomMeasurement) SchedulePickup() bool {
	return m.schedulePickup
}

func (CustomMeasurement) isMeasurementData() {}

type sampleMeasurementJSON struct {
	Method         MeasurementMethod `json:"method"`
	ImageReference string            `json:"image_reference"`
}

type customMeasurementJSON struct {
	Method         MeasurementMethod  `json:"method"`
	Measurements   map[string]float64 `json:"measurements"`
	SchedulePickup bool               `json:"schedule_pickup"`
}

// EncodeMeasurementData renders the tagged JSON form stored in the measurement_data column.
func EncodeMeasurementData(m MeasurementData) ([]byte, error) {
	switch v := m.(type) {
	case SampleMeasurement:
		return json.Marshal(sampleMeasurementJSON{Method: MeasurementSample, ImageReference: v.imageReference})
	case CustomMeasurement:
		return json.Marshal(customMeasurementJSON{
			Method:         MeasurementCustom,
			Measurements:   v.measurements,
			SchedulePickup: v.schedulePickup,
		})
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("measurement_data", fmt.Errorf("unsupported variant %T", m))
	}
}

// DecodeMeasurementData parses the tagged JSON form. Unknown fields, an unknown method or a
// missing payload are rejected.
func DecodeMeasurementData(data []byte) (MeasurementData, error) {
	var envelope struct {
		Method MeasurementMethod `json:"method"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("measurement_data", err)
	}

	switch envelope.Method {
	case MeasurementSample:
		var raw sampleMeasurementJSON
		if err := decodeStrict(data, &raw); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("measurement_data", err)
		}
		m, err := NewSampleMeasurement(raw.ImageReference)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("measurement_data", err)
		}
		return m, nil
	case MeasurementCustom:
		var raw customMeasurementJSON
		if err := decodeStrict(data, &raw); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("measurement_data", err)
		}
		m, err := NewCustomMeasurement(raw.Measurements, raw.SchedulePickup)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("measurement_data", err)
		}
		return m, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"measurement_data",
			fmt.Errorf("unknown method %q", envelope.Method),
		)
	}
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}
