// Package scim holds the wire schema of the SCIM 2.0 User endpoint family:
// resource and message envelopes, the row translation, the single-clause
// filter grammar and pagination bounds.
package scim

import "strconv"

const (
	SchemaUser         = "urn:ietf:params:scim:schemas:core:2.0:User"
	SchemaListResponse = "urn:ietf:params:scim:api:messages:2.0:ListResponse"
	SchemaError        = "urn:ietf:params:scim:api:messages:2.0:Error"
)

// Error is the envelope every non-2xx response carries (RFC 7644 3.12).
// Status holds the string-encoded HTTP code.
type Error struct {
	Schemas  []string `json:"schemas"`
	Detail   string   `json:"detail"`
	Status   string   `json:"status"`
	ScimType string   `json:"scimType,omitempty"`
}

func NewError(status int, detail string) Error {
	return Error{
		Schemas: []string{SchemaError},
		Detail:  detail,
		Status:  strconv.Itoa(status),
	}
}

func NewTypedError(status int, scimType, detail string) Error {
	e := NewError(status, detail)
	e.ScimType = scimType
	return e
}
