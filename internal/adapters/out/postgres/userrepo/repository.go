package userrepo

import (
	"context"
	"errors"

	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/core/domain/model/user"
	"fastex/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user. A duplicate username is reported as user.ErrUsernameTaken.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isDuplicateKey(err) {
			return user.ErrUsernameTaken
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByUsername retrieves a user by login name.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("username", username)
		}
		return nil, err
	}

	return toDomain(dto)
}

// isDuplicateKey recognises both the translated GORM error and the raw driver error,
// so the repository works whether or not the connection enables TranslateError.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
