// Package model holds the GORM persistence models. Entities never leave the
// persistence layer in this form; repositories map them to domain types.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	BirthDate    time.Time `gorm:"type:date"`
	Gender       string    `gorm:"type:varchar(20);not null"`
	Phone        string    `gorm:"type:varchar(20);uniqueIndex:idx_users_phone;not null"`
	PhotoURL     string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
