package request

type CreateReviewRequest struct {
	UserID     *int64  `json:"user_id" validate:"required"`
	BusinessID *int64  `json:"business_id" validate:"required"`
	Stars      *int    `json:"stars" validate:"required,min=0,max=5"`
	ReviewText *string `json:"review_text,omitempty" validate:"omitempty,max=1000"`
}

type UpdateReviewRequest struct {
	Stars      *int    `json:"stars" validate:"required,min=0,max=5"`
	ReviewText *string `json:"review_text,omitempty" validate:"omitempty,max=1000"`
}
