package repository

import (
	"errors"
	"fmt"

	"business-directory/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("record already exists")
	ErrReference  = errors.New("referenced record does not exist")
	ErrConstraint = errors.New("value violates a check constraint")
)

type Repository struct {
	Business BusinessRepository
	Review   ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Business: NewBusinessRepository(db, log),
		Review:   NewReviewRepository(db, log),
	}
}

// translateError maps driver errors onto the repository sentinels while
// keeping the original error in the chain for logging.
func translateError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	switch database.ErrorCode(err) {
	case database.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case database.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrReference, err)
	case database.CheckViolation, database.NumericOutOfRange:
		return fmt.Errorf("%w: %w", ErrConstraint, err)
	}

	return err
}
