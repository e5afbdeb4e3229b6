// Package actor models the caller of a domain operation.
//
// Authentication lives outside the service: an identity collaborator (the HTTP adapter's
// identity headers in this repository) supplies an id and a Role, and the resulting Actor is
// passed explicitly to every order operation. Nothing in the domain reads the caller from
// ambient state.
package actor
