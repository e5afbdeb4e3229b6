// Package queries contains the read side of the service. Handlers read straight from the
// database into flat views and never load aggregates, so listing orders costs one SELECT.
package queries
