package model

import (
	"time"

	"github.com/google/uuid"
)

// RatingModel mirrors the 'ratings' table. One row per (business, rater).
type RatingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_business_rater,priority:1"`
	RaterUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_business_rater,priority:2"`
	Score       int       `gorm:"type:smallint;not null;check:chk_ratings_score,score BETWEEN 1 AND 5"`
	Comment     string    `gorm:"type:varchar(500)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Business *BusinessModel `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	Rater    *UserModel     `gorm:"foreignKey:RaterUserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}

// All returns every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&BusinessModel{},
		&OfferingModel{},
		&RatingModel{},
	}
}
