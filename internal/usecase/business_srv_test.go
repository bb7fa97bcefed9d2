package usecase

import (
	"context"
	"errors"
	"testing"

	"business-directory/internal/data/entity"
	"business-directory/internal/data/repository/repotest"
	"business-directory/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ptr[T any](v T) *T { return &v }

func newTestService(t *testing.T) (*Service, *repotest.Store) {
	t.Helper()
	repo, store := repotest.NewRepository()
	return NewService(repo, zap.NewNop()), store
}

func businessRequest(ownerID int64, name string) *request.BusinessRequest {
	return &request.BusinessRequest{
		OwnerID:       ptr(ownerID),
		Name:          ptr(name),
		StreetAddress: ptr("123 SW 1st St"),
		City:          ptr("Corvallis"),
		State:         ptr("OR"),
		ZipCode:       ptr("97333"),
	}
}

func mustCreateBusiness(t *testing.T, svc *Service, ownerID int64, name string) *entity.Business {
	t.Helper()
	business, err := svc.Business.CreateBusiness(context.Background(), businessRequest(ownerID, name))
	require.NoError(t, err)
	return business
}

func TestCreateBusiness_AssignsAscendingIDs(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	first := mustCreateBusiness(t, svc, 1, "Block 15")
	second := mustCreateBusiness(t, svc, 1, "Robnett's")

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, "Block 15", first.Name)
}

func TestCreateBusiness_Validation(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	missing := businessRequest(1, "Cafe")
	missing.City = nil
	_, err := svc.Business.CreateBusiness(ctx, missing)
	assert.ErrorIs(t, err, ErrMissingAttributes)

	invalid := businessRequest(1, "Cafe")
	invalid.State = ptr("Oregon")
	_, err = svc.Business.CreateBusiness(ctx, invalid)
	assert.ErrorIs(t, err, ErrInvalidAttributes)
	assert.Contains(t, err.Error(), "state")

	_, err = svc.Business.CreateBusiness(ctx, nil)
	assert.ErrorIs(t, err, ErrMissingAttributes)
}

func TestGetBusiness_NotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.Business.GetBusiness(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestListBusinesses_Pages(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		mustCreateBusiness(t, svc, 1, "Shop")
	}

	page, err := svc.Business.ListBusinesses(ctx, request.OffsetRequest{Offset: 0, Limit: 3})
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{page[0].ID, page[1].ID, page[2].ID})

	page, err = svc.Business.ListBusinesses(ctx, request.OffsetRequest{Offset: 3, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, page, 2)

	page, err = svc.Business.ListBusinesses(ctx, request.OffsetRequest{Offset: 5, Limit: 3})
	require.NoError(t, err)
	assert.Empty(t, page)

	// Out-of-range values fall back to the defaults
	page, err = svc.Business.ListBusinesses(ctx, request.OffsetRequest{Offset: -2, Limit: 0})
	require.NoError(t, err)
	assert.Len(t, page, request.DefaultLimit)
}

func TestListOwnerBusinesses(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	mustCreateBusiness(t, svc, 1, "A")
	mustCreateBusiness(t, svc, 2, "B")
	mustCreateBusiness(t, svc, 1, "C")

	businesses, err := svc.Business.ListOwnerBusinesses(ctx, 1)
	require.NoError(t, err)
	require.Len(t, businesses, 2)
	assert.Equal(t, "A", businesses[0].Name)
	assert.Equal(t, "C", businesses[1].Name)

	businesses, err = svc.Business.ListOwnerBusinesses(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, businesses)
}

func TestUpdateBusiness(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	created := mustCreateBusiness(t, svc, 1, "Old name")

	updated, err := svc.Business.UpdateBusiness(ctx, created.ID, businessRequest(2, "New name"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, int64(2), updated.OwnerID)

	stored, err := svc.Business.GetBusiness(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New name", stored.Name)

	_, err = svc.Business.UpdateBusiness(ctx, 42, businessRequest(1, "Ghost"))
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestDeleteBusiness_CascadesReviews(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)
	ctx := context.Background()

	business := mustCreateBusiness(t, svc, 1, "Cafe")
	other := mustCreateBusiness(t, svc, 1, "Bar")

	review, err := svc.Review.CreateReview(ctx, reviewRequest(10, business.ID, 4))
	require.NoError(t, err)
	_, err = svc.Review.CreateReview(ctx, reviewRequest(11, business.ID, 2))
	require.NoError(t, err)
	_, err = svc.Review.CreateReview(ctx, reviewRequest(10, other.ID, 5))
	require.NoError(t, err)

	require.NoError(t, svc.Business.DeleteBusiness(ctx, business.ID))

	assert.Zero(t, store.ReviewCount(business.ID))
	assert.Equal(t, 1, store.ReviewCount(other.ID))

	_, err = svc.Review.GetReview(ctx, review.ID)
	assert.ErrorIs(t, err, ErrReviewNotFound)

	assert.ErrorIs(t, svc.Business.DeleteBusiness(ctx, business.ID), ErrBusinessNotFound)
}

func TestBusinessService_StoreFailure(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)
	store.Err = errors.New("connection refused")

	_, err := svc.Business.GetBusiness(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBusinessNotFound)
	assert.ErrorIs(t, err, store.Err)
}
