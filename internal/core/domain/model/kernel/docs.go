// Package kernel provides the shared domain primitives of the tailoring service.
//
// The package includes:
//   - UUID: identifier value object used by orders, tailors and actors
//   - Money: non-negative amount in whole currency units used by pricing and assignment
//
// Both are immutable values; their zero values are detectable so that aggregates can reject
// fields that were never set.
package kernel
