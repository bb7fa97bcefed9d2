package response

import (
	"business-directory/internal/data/entity"
)

// ReviewResponse exposes the reviewed business only as a link.
type ReviewResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	Business   string `json:"business"`
	Stars      int    `json:"stars"`
	ReviewText string `json:"review_text"`
	Self       string `json:"self"`
}

func ReviewToResponse(review *entity.Review, links Links) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID,
		UserID:     review.UserID,
		Business:   links.Business(review.BusinessID),
		Stars:      review.Stars,
		ReviewText: review.ReviewText,
		Self:       links.Review(review.ID),
	}
}

func ReviewsToResponse(reviews []*entity.Review, links Links) []ReviewResponse {
	result := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		result[i] = ReviewToResponse(review, links)
	}
	return result
}
