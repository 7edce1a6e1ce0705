// Package model holds the GORM persistence models. They mirror the tables created by
// the goose migrations and are mapped to domain entities by the repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application (UUID v7).
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName     string     `gorm:"type:varchar(100);not null"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(16);not null"`
	Status       string     `gorm:"type:varchar(16);not null"`
	LastLogin    *time.Time `gorm:"type:timestamptz"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
