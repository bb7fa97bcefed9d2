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

type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	FindByID(ctx context.Context, id int64) (*entity.Business, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Business, error)
	FindByOwnerID(ctx context.Context, ownerID int64) ([]*entity.Business, error)
	Update(ctx context.Context, business *entity.Business) error

	// DeleteWithReviews removes the business and every review that points at
	// it in one transaction. It returns ErrNotFound when the business row did
	// not exist, regardless of how many reviews were removed.
	DeleteWithReviews(ctx context.Context, id int64) (int64, error)
}

type businessRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBusinessRepository(db database.PgxIface, log *zap.Logger) BusinessRepository {
	return &businessRepository{
		db:  db,
		log: log.With(zap.String("repository", "business")),
	}
}

const businessColumns = `id, owner_id, name, street_address, city, state, zip_code`

func scanBusiness(row pgx.Row) (*entity.Business, error) {
	var business entity.Business
	err := row.Scan(
		&business.ID,
		&business.OwnerID,
		&business.Name,
		&business.StreetAddress,
		&business.City,
		&business.State,
		&business.ZipCode,
	)
	if err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	query := `
		INSERT INTO businesses (owner_id, name, street_address, city, state, zip_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		business.OwnerID,
		business.Name,
		business.StreetAddress,
		business.City,
		business.State,
		business.ZipCode,
	).Scan(&business.ID)

	if err != nil {
		r.log.Error("Failed to create business",
			zap.Error(err),
			zap.Int64("owner_id", business.OwnerID),
			zap.String("name", business.Name),
		)
		return fmt.Errorf("create business %s: %w", business.Name, translateError(err))
	}

	return nil
}

func (r *businessRepository) FindByID(ctx context.Context, id int64) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`

	business, err := scanBusiness(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find business by ID",
			zap.Error(err),
			zap.Int64("business_id", id),
		)
		return nil, fmt.Errorf("find business by ID %d: %w", id, err)
	}

	return business, nil
}

func (r *businessRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Business, error) {
	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all businesses",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all businesses: %w", err)
	}

	return r.collect(rows)
}

func (r *businessRepository) FindByOwnerID(ctx context.Context, ownerID int64) ([]*entity.Business, error) {
	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		WHERE owner_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("Failed to find businesses by owner ID",
			zap.Error(err),
			zap.Int64("owner_id", ownerID),
		)
		return nil, fmt.Errorf("find businesses by owner ID %d: %w", ownerID, err)
	}

	return r.collect(rows)
}

func (r *businessRepository) collect(rows pgx.Rows) ([]*entity.Business, error) {
	defer rows.Close()

	businesses := []*entity.Business{}
	for rows.Next() {
		business, err := scanBusiness(rows)
		if err != nil {
			r.log.Error("Failed to scan business row", zap.Error(err))
			return nil, fmt.Errorf("scan business row: %w", err)
		}
		businesses = append(businesses, business)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate business rows", zap.Error(err))
		return nil, fmt.Errorf("iterate business rows: %w", err)
	}

	return businesses, nil
}

func (r *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	query := `
		UPDATE businesses
		SET owner_id = $2, name = $3, street_address = $4, city = $5, state = $6, zip_code = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		business.ID,
		business.OwnerID,
		business.Name,
		business.StreetAddress,
		business.City,
		business.State,
		business.ZipCode,
	)

	if err != nil {
		r.log.Error("Failed to update business",
			zap.Error(err),
			zap.Int64("business_id", business.ID),
		)
		return fmt.Errorf("update business %d: %w", business.ID, translateError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update business %d: %w", business.ID, ErrNotFound)
	}

	return nil
}

func (r *businessRepository) DeleteWithReviews(ctx context.Context, id int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin delete transaction",
			zap.Error(err),
			zap.Int64("business_id", id),
		)
		return 0, fmt.Errorf("begin delete business %d: %w", id, err)
	}
	// No-op once committed
	defer tx.Rollback(ctx)

	reviews, err := tx.Exec(ctx, `DELETE FROM reviews WHERE business_id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete business reviews",
			zap.Error(err),
			zap.Int64("business_id", id),
		)
		return 0, fmt.Errorf("delete reviews of business %d: %w", id, err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete business",
			zap.Error(err),
			zap.Int64("business_id", id),
		)
		return 0, fmt.Errorf("delete business %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return 0, fmt.Errorf("delete business %d: %w", id, ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit business delete",
			zap.Error(err),
			zap.Int64("business_id", id),
		)
		return 0, fmt.Errorf("commit delete business %d: %w", id, err)
	}

	r.log.Info("Business deleted",
		zap.Int64("business_id", id),
		zap.Int64("reviews_deleted", reviews.RowsAffected()),
	)
	return reviews.RowsAffected(), nil
}
