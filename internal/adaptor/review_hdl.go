package adaptor

import (
	"net/http"

	"business-directory/internal/dto/request"
	"business-directory/internal/dto/response"
	"business-directory/internal/usecase"
	"business-directory/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	links   func(*http.Request) response.Links
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, links func(*http.Request) response.Links, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		links:   links,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	var req request.CreateReviewRequest
	if err := decodeJSON(body, &req); err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	utils.ResponseCreated(w, response.ReviewToResponse(review, h.links(r)))
}

// GetReview handles GET /reviews/{id}
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := pathID(r, "id")
	if !ok {
		h.handleServiceError(w, usecase.ErrReviewNotFound, "get review")
		return
	}

	review, err := h.service.GetReview(r.Context(), reviewID)
	if err != nil {
		h.handleServiceError(w, err, "get review")
		return
	}

	utils.ResponseSuccess(w, response.ReviewToResponse(review, h.links(r)))
}

// UpdateReview handles PUT /reviews/{id}
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		h.handleServiceError(w, err, "update review")
		return
	}

	var req request.UpdateReviewRequest
	if err := decodeJSON(body, &req); err != nil {
		h.handleServiceError(w, err, "update review")
		return
	}

	reviewID, ok := pathID(r, "id")
	if !ok {
		h.handleServiceError(w, usecase.ErrReviewNotFound, "update review")
		return
	}

	review, err := h.service.UpdateReview(r.Context(), reviewID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update review")
		return
	}

	utils.ResponseSuccess(w, response.ReviewToResponse(review, h.links(r)))
}

// GetUserReviews handles GET /users/{id}/reviews
func (h *ReviewHandler) GetUserReviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		utils.ResponseSuccess(w, []response.ReviewResponse{})
		return
	}

	reviews, err := h.service.ListUserReviews(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "list user reviews")
		return
	}

	utils.ResponseSuccess(w, response.ReviewsToResponse(reviews, h.links(r)))
}

// DeleteReview handles DELETE /reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := pathID(r, "id")
	if !ok {
		h.handleServiceError(w, usecase.ErrReviewNotFound, "delete review")
		return
	}

	if err := h.service.DeleteReview(r.Context(), reviewID); err != nil {
		h.handleServiceError(w, err, "delete review")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	handleServiceError(w, h.log, err, operation)
}
