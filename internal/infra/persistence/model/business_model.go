package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel mirrors the 'businesses' table.
type BusinessModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(150);not null"`
	SearchName    string    `gorm:"type:varchar(150);not null;index:idx_businesses_search_name"`
	Description   string    `gorm:"type:text"`
	Category      string    `gorm:"type:varchar(60);not null;index:idx_businesses_active_category,priority:2"`
	OwnerUserID   uuid.UUID `gorm:"type:uuid;not null;index:idx_businesses_owner"`
	ImageURL      string    `gorm:"type:text"`
	RatingCount   int       `gorm:"not null"`
	RatingAverage float64   `gorm:"type:numeric(2,1);not null"`
	Active        bool      `gorm:"not null;index:idx_businesses_active_category,priority:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerUserID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}

// OfferingModel mirrors the 'offerings' table.
type OfferingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(150);not null"`
	Description string    `gorm:"type:text"`
	Kind        string    `gorm:"type:varchar(20);not null"`
	BusinessID  uuid.UUID `gorm:"type:uuid;not null;index:idx_offerings_business_active,priority:1"`
	ImageURL    string    `gorm:"type:text"`
	Active      bool      `gorm:"not null;index:idx_offerings_business_active,priority:2"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Business *BusinessModel `gorm:"foreignKey:BusinessID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (OfferingModel) TableName() string {
	return "offerings"
}
