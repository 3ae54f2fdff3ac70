package scim

import "strings"

// FilterOp is the operator of a single-clause filter expression. Anything the
// service does not honor, including a syntactically valid "ne", compiles to
// OpNone so listing stays available under unsupported filters.
type FilterOp int

const (
	OpNone FilterOp = iota
	OpEq
	OpContains
	OpStartsWith
	OpEndsWith
)

// FilterField is the internal field a filter attribute maps onto.
type FilterField int

const (
	FieldEmail FilterField = iota
	FieldName
	FieldActive
)

type Filter struct {
	Field FilterField
	Op    FilterOp
	Value string
}

// ParseFilter compiles a filter expression of the shape
//
//	<attribute> <operator> "<value>"
//
// into a Filter. Malformed or unrecognized expressions degrade to the
// match-all filter rather than erroring.
func ParseFilter(raw string) Filter {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Filter{}
	}

	parts := strings.SplitN(raw, " ", 3)
	if len(parts) != 3 {
		return Filter{}
	}

	value := strings.TrimSpace(parts[2])
	if len(value) < 2 || !strings.HasPrefix(value, `"`) || !strings.HasSuffix(value, `"`) {
		return Filter{}
	}
	value = value[1 : len(value)-1]

	var op FilterOp
	switch parts[1] {
	case "eq":
		op = OpEq
	case "co":
		op = OpContains
	case "sw":
		op = OpStartsWith
	case "ew":
		op = OpEndsWith
	default:
		// "ne" is accepted by the grammar but not honored.
		return Filter{}
	}

	// Unknown attributes deliberately fall back to the email field.
	field := FieldEmail
	switch parts[0] {
	case "name.givenName", "name.familyName":
		field = FieldName
	case "active":
		field = FieldActive
	}

	return Filter{Field: field, Op: op, Value: value}
}
