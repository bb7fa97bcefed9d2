package request

const (
	DefaultOffset = 0
	DefaultLimit  = 3
	MaxLimit      = 100
)

type OffsetRequest struct {
	Offset int
	Limit  int
}

func NewOffsetRequest(offset, limit int) OffsetRequest {
	return OffsetRequest{Offset: offset, Limit: limit}.Normalize()
}

// Normalize falls back to the defaults for out-of-range values and caps the
// page size.
func (p OffsetRequest) Normalize() OffsetRequest {
	if p.Offset < 0 {
		p.Offset = DefaultOffset
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}
