// Package repotest provides in-memory repositories that honour the same
// contracts as the postgres ones: ids ascend from 1, the (user_id,
// business_id) pair is unique, review inserts need an existing business and
// deleting a business removes its reviews.
package repotest

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"business-directory/internal/data/entity"
	"business-directory/internal/data/repository"
)

var (
	_ repository.BusinessRepository = (*BusinessRepository)(nil)
	_ repository.ReviewRepository   = (*ReviewRepository)(nil)
)

// Store holds the rows shared by both repositories.
type Store struct {
	mu             sync.Mutex
	businesses     map[int64]entity.Business
	reviews        map[int64]entity.Review
	nextBusinessID int64
	nextReviewID   int64

	// Err, when set, is returned by every repository call.
	Err error
}

func NewStore() *Store {
	return &Store{
		businesses:     make(map[int64]entity.Business),
		reviews:        make(map[int64]entity.Review),
		nextBusinessID: 1,
		nextReviewID:   1,
	}
}

// NewRepository returns a repository.Repository backed by a fresh store.
func NewRepository() (*repository.Repository, *Store) {
	store := NewStore()
	return &repository.Repository{
		Business: &BusinessRepository{store: store},
		Review:   &ReviewRepository{store: store},
	}, store
}

// ReviewCount reports how many reviews reference businessID.
func (s *Store) ReviewCount(businessID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, review := range s.reviews {
		if review.BusinessID == businessID {
			count++
		}
	}
	return count
}

type BusinessRepository struct {
	store *Store
}

func (r *BusinessRepository) Create(_ context.Context, business *entity.Business) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	business.ID = s.nextBusinessID
	s.nextBusinessID++
	s.businesses[business.ID] = *business
	return nil
}

func (r *BusinessRepository) FindByID(_ context.Context, id int64) (*entity.Business, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	business, ok := s.businesses[id]
	if !ok {
		return nil, nil
	}
	return &business, nil
}

func (r *BusinessRepository) FindAll(_ context.Context, limit, offset int) ([]*entity.Business, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	all := s.sortedBusinesses(func(entity.Business) bool { return true })
	if offset >= len(all) {
		return []*entity.Business{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *BusinessRepository) FindByOwnerID(_ context.Context, ownerID int64) ([]*entity.Business, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	return s.sortedBusinesses(func(b entity.Business) bool { return b.OwnerID == ownerID }), nil
}

func (r *BusinessRepository) Update(_ context.Context, business *entity.Business) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	if _, ok := s.businesses[business.ID]; !ok {
		return fmt.Errorf("update business %d: %w", business.ID, repository.ErrNotFound)
	}
	s.businesses[business.ID] = *business
	return nil
}

func (r *BusinessRepository) DeleteWithReviews(_ context.Context, id int64) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return 0, s.Err
	}

	if _, ok := s.businesses[id]; !ok {
		return 0, fmt.Errorf("delete business %d: %w", id, repository.ErrNotFound)
	}

	var deleted int64
	for reviewID, review := range s.reviews {
		if review.BusinessID == id {
			delete(s.reviews, reviewID)
			deleted++
		}
	}
	delete(s.businesses, id)
	return deleted, nil
}

func (s *Store) sortedBusinesses(keep func(entity.Business) bool) []*entity.Business {
	result := []*entity.Business{}
	for _, business := range s.businesses {
		if keep(business) {
			b := business
			result = append(result, &b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

type ReviewRepository struct {
	store *Store
}

func (r *ReviewRepository) Create(_ context.Context, review *entity.Review) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	if _, ok := s.businesses[review.BusinessID]; !ok {
		return fmt.Errorf("create review: %w", repository.ErrReference)
	}
	for _, existing := range s.reviews {
		if existing.UserID == review.UserID && existing.BusinessID == review.BusinessID {
			return fmt.Errorf("create review: %w", repository.ErrDuplicate)
		}
	}
	if review.Stars < 0 || review.Stars > 5 {
		return fmt.Errorf("create review: %w", repository.ErrConstraint)
	}

	review.ID = s.nextReviewID
	s.nextReviewID++
	s.reviews[review.ID] = *review
	return nil
}

func (r *ReviewRepository) FindByID(_ context.Context, id int64) (*entity.Review, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	review, ok := s.reviews[id]
	if !ok {
		return nil, nil
	}
	return &review, nil
}

func (r *ReviewRepository) FindByUserID(_ context.Context, userID int64) ([]*entity.Review, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	result := []*entity.Review{}
	for _, review := range s.reviews {
		if review.UserID == userID {
			rv := review
			result = append(result, &rv)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *ReviewRepository) FindByUserAndBusiness(_ context.Context, userID, businessID int64) (*entity.Review, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	for _, review := range s.reviews {
		if review.UserID == userID && review.BusinessID == businessID {
			rv := review
			return &rv, nil
		}
	}
	return nil, nil
}

func (r *ReviewRepository) Update(_ context.Context, id int64, stars int, reviewText *string) (*entity.Review, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	review, ok := s.reviews[id]
	if !ok {
		return nil, fmt.Errorf("update review %d: %w", id, repository.ErrNotFound)
	}
	if stars < 0 || stars > 5 {
		return nil, fmt.Errorf("update review %d: %w", id, repository.ErrConstraint)
	}

	review.Stars = stars
	if reviewText != nil {
		review.ReviewText = *reviewText
	}
	s.reviews[id] = review
	return &review, nil
}

func (r *ReviewRepository) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	if _, ok := s.reviews[id]; !ok {
		return fmt.Errorf("delete review %d: %w", id, repository.ErrNotFound)
	}
	delete(s.reviews, id)
	return nil
}
