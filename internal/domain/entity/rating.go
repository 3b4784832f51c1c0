package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinScore         = 1
	MaxScore         = 5
	MaxCommentLength = 500
)

// Rating is one user's score for one business. A user rates a business at most once.
type Rating struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	RaterUserID uuid.UUID
	Score       int
	Comment     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsValidScore reports whether score lies in [MinScore, MaxScore].
func IsValidScore(score int) bool {
	return score >= MinScore && score <= MaxScore
}

// RatingStats is the aggregate of every rating of one business.
type RatingStats struct {
	Count   int
	Average float64
}

// NewRatingStats builds the statistics for count ratings whose scores add up to sum.
// The average is rounded half up to one decimal place; no ratings yields 0.0.
func NewRatingStats(count, sum int) RatingStats {
	if count <= 0 {
		return RatingStats{}
	}

	// tenths = round(10*sum/count) for non-negative sums, in integer arithmetic.
	tenths := (20*sum + count) / (2 * count)

	return RatingStats{
		Count:   count,
		Average: float64(tenths) / 10,
	}
}
