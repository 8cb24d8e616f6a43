package userrepo

import (
	"context"
	"errors"

	"orderdesk/internal/adapters/out/postgres/pgerrs"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// nameIndex is the unique index behind user.Name; see UserDTO.
const nameIndex = "idx_users_name"

// GormUserRepository implements ports.UserRepository using gorm.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository binds the repository to db, a transaction or the pool.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add inserts a user. Names and ids are unique; the returned
// errs.ObjectAlreadyExistsError names whichever one collided.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			if pgerrs.ConstraintName(err) == nameIndex {
				return errs.NewObjectAlreadyExistsErrorWithCause("user name", aggregate.Name(), err)
			}
			return errs.NewObjectAlreadyExistsErrorWithCause("user id", aggregate.ID().String(), err)
		}
		return err
	}

	return nil
}

// Update writes the approval flag; names and roles never change.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("approved", aggregate.IsApproved())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", aggregate.ID().String())
	}

	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormUserRepository) List(ctx context.Context, filter ports.UserFilter) ([]*user.User, error) {
	q := r.db.WithContext(ctx).Model(&UserDTO{})
	if filter.Role != nil {
		q = q.Where("role = ?", filter.Role.String())
	}
	if filter.Approved != nil {
		q = q.Where("approved = ?", *filter.Approved)
	}

	var dtos []UserDTO
	if err := q.Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}
