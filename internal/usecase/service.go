package usecase

import (
	"business-directory/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Business BusinessService
	Review   ReviewService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Business: NewBusinessService(repo, log),
		Review:   NewReviewService(repo, log),
	}
}
