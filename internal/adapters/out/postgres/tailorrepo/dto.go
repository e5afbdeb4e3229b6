// Package tailorrepo stores the tailor roster. Tailors share the users table with customers and
// admins; only rows with the tailor role are visible through this repository.
package tailorrepo

import (
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/tailor"

	"github.com/google/uuid"
)

const roleTailor = "tailor"

// UserDTO is the row layout of the users table.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Phone     string    `gorm:"not null;uniqueIndex"`
	Role      string    `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for user rows.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(t *tailor.Tailor) UserDTO {
	return UserDTO{
		ID:    t.ID().Bytes(),
		Name:  t.Name(),
		Phone: t.Phone(),
		Role:  roleTailor,
	}
}

func toDomain(dto UserDTO) (*tailor.Tailor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return tailor.RestoreTailor(id, dto.Name, dto.Phone)
}
