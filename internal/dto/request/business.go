package request

import "encoding/json"

// BusinessFields lists the attributes a business body must carry, no more
// and no fewer.
var BusinessFields = []string{"owner_id", "name", "street_address", "city", "state", "zip_code"}

type BusinessRequest struct {
	OwnerID       *int64  `json:"owner_id" validate:"required"`
	Name          *string `json:"name" validate:"required,max=50"`
	StreetAddress *string `json:"street_address" validate:"required,max=100"`
	City          *string `json:"city" validate:"required,max=50"`
	State         *string `json:"state" validate:"required,len=2"`
	ZipCode       *string `json:"zip_code" validate:"required,len=5"`
}

// HasExactBusinessFields reports whether body names exactly the business
// attributes. Extra keys count against the body just like missing ones.
func HasExactBusinessFields(body map[string]json.RawMessage) bool {
	if len(body) != len(BusinessFields) {
		return false
	}
	for _, field := range BusinessFields {
		if _, ok := body[field]; !ok {
			return false
		}
	}
	return true
}
