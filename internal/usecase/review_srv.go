package usecase

import (
	"context"
	"errors"
	"fmt"

	"business-directory/internal/data/entity"
	"business-directory/internal/data/repository"
	"business-directory/internal/dto/request"
	"business-directory/pkg/utils"

	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*entity.Review, error)
	GetReview(ctx context.Context, reviewID int64) (*entity.Review, error)
	ListUserReviews(ctx context.Context, userID int64) ([]*entity.Review, error)

	// UpdateReview keeps the stored review_text when req omits it.
	UpdateReview(ctx context.Context, reviewID int64, req *request.UpdateReviewRequest) (*entity.Review, error)
	DeleteReview(ctx context.Context, reviewID int64) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*entity.Review, error) {
	if req == nil {
		return nil, ErrMissingAttributes
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs.Fields))
		return nil, validationError(errs)
	}

	userID := *req.UserID
	businessID := *req.BusinessID

	// Check if business exists
	business, err := s.repo.Business.FindByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("check business: %w", err)
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	// Check if user has already reviewed this business
	existingReview, err := s.repo.Review.FindByUserAndBusiness(ctx, userID, businessID)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existingReview != nil {
		return nil, ErrReviewConflict
	}

	review := &entity.Review{
		UserID:     userID,
		BusinessID: businessID,
		Stars:      *req.Stars,
	}
	if req.ReviewText != nil {
		review.ReviewText = *req.ReviewText
	}

	// The store constraints still decide when another request got there first
	if err := s.repo.Review.Create(ctx, review); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrReviewConflict
		case errors.Is(err, repository.ErrReference):
			return nil, ErrBusinessNotFound
		case errors.Is(err, repository.ErrConstraint):
			return nil, ErrInvalidAttributes
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("user_id", userID),
		zap.Int64("business_id", businessID),
		zap.Int("stars", review.Stars),
	)

	return review, nil
}

func (s *reviewService) GetReview(ctx context.Context, reviewID int64) (*entity.Review, error) {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	return review, nil
}

func (s *reviewService) ListUserReviews(ctx context.Context, userID int64) ([]*entity.Review, error) {
	reviews, err := s.repo.Review.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reviews of user %d: %w", userID, err)
	}

	return reviews, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID int64, req *request.UpdateReviewRequest) (*entity.Review, error) {
	if req == nil {
		return nil, ErrMissingAttributes
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		s.log.Warn("Update review validation failed",
			zap.Any("errors", errs.Fields),
			zap.Int64("review_id", reviewID),
		)
		return nil, validationError(errs)
	}

	review, err := s.repo.Review.Update(ctx, reviewID, *req.Stars, req.ReviewText)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrReviewNotFound
		case errors.Is(err, repository.ErrConstraint):
			return nil, ErrInvalidAttributes
		}
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated",
		zap.Int64("review_id", reviewID),
		zap.Int("stars", review.Stars),
		zap.Bool("text_replaced", req.ReviewText != nil),
	)

	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID int64) error {
	if err := s.repo.Review.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted", zap.Int64("review_id", reviewID))

	return nil
}
