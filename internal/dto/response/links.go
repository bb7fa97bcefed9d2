package response

import "fmt"

const (
	BusinessesPath = "businesses"
	ReviewsPath    = "reviews"
)

// Links builds the hyperlinks embedded in responses. Base is the API root
// without a trailing slash, e.g. "https://api.example.com".
type Links struct {
	Base string
}

func NewLinks(base string) Links {
	return Links{Base: base}
}

// Business returns the self link of a business.
func (l Links) Business(id int64) string {
	return l.resource(BusinessesPath, id)
}

// Review returns the self link of a review.
func (l Links) Review(id int64) string {
	return l.resource(ReviewsPath, id)
}

// NextBusinesses returns the link to the page following the one at offset.
// It is produced even when no further rows exist; clients stop on an empty
// page.
func (l Links) NextBusinesses(offset, limit int) string {
	return fmt.Sprintf("%s/%s?offset=%d&limit=%d", l.Base, BusinessesPath, offset+limit, limit)
}

func (l Links) resource(collection string, id int64) string {
	return fmt.Sprintf("%s/%s/%d", l.Base, collection, id)
}
