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

type BusinessService interface {
	CreateBusiness(ctx context.Context, req *request.BusinessRequest) (*entity.Business, error)
	GetBusiness(ctx context.Context, businessID int64) (*entity.Business, error)
	ListBusinesses(ctx context.Context, page request.OffsetRequest) ([]*entity.Business, error)
	ListOwnerBusinesses(ctx context.Context, ownerID int64) ([]*entity.Business, error)
	UpdateBusiness(ctx context.Context, businessID int64, req *request.BusinessRequest) (*entity.Business, error)

	// DeleteBusiness removes the business together with all of its reviews.
	DeleteBusiness(ctx context.Context, businessID int64) error
}

type businessService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBusinessService(repo *repository.Repository, log *zap.Logger) BusinessService {
	return &businessService{
		repo: repo,
		log:  log.With(zap.String("service", "business")),
	}
}

func (s *businessService) CreateBusiness(ctx context.Context, req *request.BusinessRequest) (*entity.Business, error) {
	business, err := s.toEntity(req)
	if err != nil {
		s.log.Warn("Create business validation failed", zap.Error(err))
		return nil, err
	}

	if err := s.repo.Business.Create(ctx, business); err != nil {
		return nil, s.storeError("create business", err)
	}

	s.log.Info("Business created",
		zap.Int64("business_id", business.ID),
		zap.Int64("owner_id", business.OwnerID),
	)

	return business, nil
}

func (s *businessService) GetBusiness(ctx context.Context, businessID int64) (*entity.Business, error) {
	business, err := s.repo.Business.FindByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	return business, nil
}

func (s *businessService) ListBusinesses(ctx context.Context, page request.OffsetRequest) ([]*entity.Business, error) {
	page = page.Normalize()

	businesses, err := s.repo.Business.FindAll(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}

	s.log.Debug("Businesses retrieved",
		zap.Int("offset", page.Offset),
		zap.Int("limit", page.Limit),
		zap.Int("count", len(businesses)),
	)

	return businesses, nil
}

func (s *businessService) ListOwnerBusinesses(ctx context.Context, ownerID int64) ([]*entity.Business, error) {
	businesses, err := s.repo.Business.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list businesses of owner %d: %w", ownerID, err)
	}

	return businesses, nil
}

func (s *businessService) UpdateBusiness(ctx context.Context, businessID int64, req *request.BusinessRequest) (*entity.Business, error) {
	business, err := s.toEntity(req)
	if err != nil {
		s.log.Warn("Update business validation failed",
			zap.Error(err),
			zap.Int64("business_id", businessID),
		)
		return nil, err
	}
	business.ID = businessID

	if err := s.repo.Business.Update(ctx, business); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, s.storeError("update business", err)
	}

	s.log.Info("Business updated", zap.Int64("business_id", businessID))

	return business, nil
}

func (s *businessService) DeleteBusiness(ctx context.Context, businessID int64) error {
	reviewsDeleted, err := s.repo.Business.DeleteWithReviews(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBusinessNotFound
		}
		return fmt.Errorf("delete business: %w", err)
	}

	s.log.Info("Business deleted",
		zap.Int64("business_id", businessID),
		zap.Int64("reviews_deleted", reviewsDeleted),
	)

	return nil
}

// ==================== HELPER METHODS ====================

func (s *businessService) toEntity(req *request.BusinessRequest) (*entity.Business, error) {
	if req == nil {
		return nil, ErrMissingAttributes
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, validationError(errs)
	}

	return &entity.Business{
		OwnerID:       *req.OwnerID,
		Name:          *req.Name,
		StreetAddress: *req.StreetAddress,
		City:          *req.City,
		State:         *req.State,
		ZipCode:       *req.ZipCode,
	}, nil
}

func (s *businessService) storeError(operation string, err error) error {
	if errors.Is(err, repository.ErrConstraint) {
		return ErrInvalidAttributes
	}
	return fmt.Errorf("%s: %w", operation, err)
}
