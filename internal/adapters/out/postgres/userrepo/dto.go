// Package userrepo persists users with gorm.
package userrepo

import (
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"not null;uniqueIndex:idx_users_name"`
	Role     string    `gorm:"type:varchar(16);not null;index"`
	Approved bool      `gorm:"not null;default:false"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:       u.ID().Bytes(),
		Name:     u.Name(),
		Role:     u.Role().String(),
		Approved: u.IsApproved(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, role, dto.Approved)
}
