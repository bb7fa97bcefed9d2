package response

import (
	"encoding/json"
	"testing"

	"business-directory/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinks(t *testing.T) {
	t.Parallel()

	links := NewLinks("http://localhost:8080")

	assert.Equal(t, "http://localhost:8080/businesses/7", links.Business(7))
	assert.Equal(t, "http://localhost:8080/reviews/3", links.Review(3))
	assert.Equal(t, "http://localhost:8080/businesses?offset=3&limit=3", links.NextBusinesses(0, 3))
	assert.Equal(t, "http://localhost:8080/businesses?offset=8&limit=3", links.NextBusinesses(5, 3))
}

func TestReviewToResponse_HidesBusinessID(t *testing.T) {
	t.Parallel()

	review := &entity.Review{ID: 2, UserID: 9, BusinessID: 4, Stars: 5, ReviewText: "Great"}
	body, err := json.Marshal(ReviewToResponse(review, NewLinks("http://api")))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 2,
		"user_id": 9,
		"business": "http://api/businesses/4",
		"stars": 5,
		"review_text": "Great",
		"self": "http://api/reviews/2"
	}`, string(body))
}

func TestBusinessToResponse(t *testing.T) {
	t.Parallel()

	business := &entity.Business{ID: 1, OwnerID: 2, Name: "Cafe", StreetAddress: "1 Main St", City: "Corvallis", State: "OR", ZipCode: "97330"}
	body, err := json.Marshal(BusinessToResponse(business, NewLinks("http://api")))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 1,
		"owner_id": 2,
		"name": "Cafe",
		"street_address": "1 Main St",
		"city": "Corvallis",
		"state": "OR",
		"zip_code": "97330",
		"self": "http://api/businesses/1"
	}`, string(body))
}

func TestNewPageResponse_EmptyEntries(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(NewPageResponse[BusinessResponse](nil, "http://api/businesses?offset=8&limit=3"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"entries":[],"next":"http://api/businesses?offset=8&limit=3"}`, string(body))
	assert.Empty(t, BusinessesToResponse(nil, NewLinks("http://api")))
}
