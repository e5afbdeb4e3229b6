// Package services provides domain services that work across the catalog, pricing and order
// models.
//
// The package includes:
//   - PriceCalculator: resolves a catalog selection and prices it against an injected clock
//   - CheckMeasurements: matches custom measurements against the category's measurement fields
package services
