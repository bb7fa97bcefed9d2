package repository

import (
	"context"
	"errors"
	"fmt"

	"business-directory/internal/data/entity"
	"business-directory/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id int64) (*entity.Review, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Review, error)
	FindByUserAndBusiness(ctx context.Context, userID, businessID int64) (*entity.Review, error)

	// Update overwrites stars, and review_text only when reviewText is non-nil.
	Update(ctx context.Context, id int64, stars int, reviewText *string) (*entity.Review, error)
	Delete(ctx context.Context, id int64) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, user_id, business_id, stars, COALESCE(review_text, '')`

func scanReview(row pgx.Row) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.BusinessID,
		&review.Stars,
		&review.ReviewText,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (user_id, business_id, stars, review_text)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		review.UserID,
		review.BusinessID,
		review.Stars,
		review.ReviewText,
	).Scan(&review.ID)

	if err != nil {
		err = translateError(err)
		if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrReference) {
			r.log.Warn("Review insert rejected by constraint",
				zap.Error(err),
				zap.Int64("user_id", review.UserID),
				zap.Int64("business_id", review.BusinessID),
			)
		} else {
			r.log.Error("Failed to create review",
				zap.Error(err),
				zap.Int64("user_id", review.UserID),
				zap.Int64("business_id", review.BusinessID),
			)
		}
		return fmt.Errorf("create review for business %d by user %d: %w",
			review.BusinessID, review.UserID, err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, fmt.Errorf("find review by ID %d: %w", id, err)
	}

	return review, nil
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find reviews by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find reviews by user ID %d: %w", userID, err)
	}
	defer rows.Close()

	reviews := []*entity.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate review rows", zap.Error(err))
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByUserAndBusiness(ctx context.Context, userID, businessID int64) (*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE user_id = $1 AND business_id = $2
		LIMIT 1
	`

	review, err := scanReview(r.db.QueryRow(ctx, query, userID, businessID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and business",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("business_id", businessID),
		)
		return nil, fmt.Errorf("find review by user %d and business %d: %w",
			userID, businessID, err)
	}

	return review, nil
}

func (r *reviewRepository) Update(ctx context.Context, id int64, stars int, reviewText *string) (*entity.Review, error) {
	query := `
		UPDATE reviews
		SET stars = $2, review_text = COALESCE($3, review_text)
		WHERE id = $1
		RETURNING ` + reviewColumns

	review, err := scanReview(r.db.QueryRow(ctx, query, id, stars, reviewText))
	if err != nil {
		err = translateError(err)
		if !errors.Is(err, ErrNotFound) {
			r.log.Error("Failed to update review",
				zap.Error(err),
				zap.Int64("review_id", id),
			)
		}
		return nil, fmt.Errorf("update review %d: %w", id, err)
	}

	return review, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return fmt.Errorf("delete review %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete review %d: %w", id, ErrNotFound)
	}

	r.log.Info("Review deleted", zap.Int64("review_id", id))
	return nil
}
