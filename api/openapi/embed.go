// Package openapi embeds the HTTP API contract served on /openapi.json and used for request
// validation.
package openapi

import _ "embed"

//go:embed openapi.yaml
var Spec []byte
