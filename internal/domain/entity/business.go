package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is an entrepreneurship listed on the marketplace.
// RatingCount and RatingAverage are derived from the active ratings and
// written only by the rating aggregation.
type Business struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Category      Category
	OwnerUserID   uuid.UUID
	ImageURL      string
	RatingCount   int
	RatingAverage float64
	Active        bool
	SearchName    string // folded Name used by explore
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsOwnedBy reports whether userID owns the business.
func (b *Business) IsOwnedBy(userID uuid.UUID) bool {
	return b.OwnerUserID == userID
}

// ApplyStats copies aggregated rating statistics onto the business.
func (b *Business) ApplyStats(stats RatingStats) {
	b.RatingCount = stats.Count
	b.RatingAverage = stats.Average
}
