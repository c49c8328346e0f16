// Package userrepo persists registered customers in the "users" table.
package userrepo

import (
	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for registered customers.
// Usernames are unique.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	Firstname    string    `gorm:"not null"`
	Lastname     string
	Email        string `gorm:"not null"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		Firstname:    u.Firstname(),
		Lastname:     u.Lastname(),
		Email:        u.Email(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.NewUser(id, dto.Username, dto.PasswordHash, dto.Firstname, dto.Lastname, dto.Email)
}
