package scim

const (
	DefaultCount = 50
	MaxCount     = 200
)

// Page holds the raw 1-based pagination parameters of a list request.
// StartIndex is echoed back to the client as given, never clamped.
type Page struct {
	StartIndex int
	Count      int
}

// Offset is the zero-based store offset.
func (p Page) Offset() int {
	if p.StartIndex < 1 {
		return 0
	}
	return p.StartIndex - 1
}

// Limit bounds the requested page size at MaxCount.
func (p Page) Limit() int {
	if p.Count < 0 {
		return 0
	}
	if p.Count > MaxCount {
		return MaxCount
	}
	return p.Count
}
