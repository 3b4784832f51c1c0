package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRatingStats(t *testing.T) {
	tests := []struct {
		name  string
		count int
		sum   int
		want  RatingStats
	}{
		{name: "no ratings", count: 0, sum: 0, want: RatingStats{}},
		{name: "single rating", count: 1, sum: 4, want: RatingStats{Count: 1, Average: 4.0}},
		{name: "exact mean", count: 2, sum: 6, want: RatingStats{Count: 2, Average: 3.0}},
		{name: "rounds down", count: 3, sum: 13, want: RatingStats{Count: 3, Average: 4.3}},
		{name: "rounds half up", count: 4, sum: 13, want: RatingStats{Count: 4, Average: 3.3}},
		{name: "half tenth rounds up", count: 20, sum: 71, want: RatingStats{Count: 20, Average: 3.6}},
		{name: "two thirds", count: 3, sum: 14, want: RatingStats{Count: 3, Average: 4.7}},
		{name: "all fives", count: 7, sum: 35, want: RatingStats{Count: 7, Average: 5.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewRatingStats(tt.count, tt.sum))
		})
	}
}

func TestIsValidScore(t *testing.T) {
	for _, score := range []int{0, 6, -1} {
		assert.False(t, IsValidScore(score), "score %d", score)
	}
	for score := MinScore; score <= MaxScore; score++ {
		assert.True(t, IsValidScore(score), "score %d", score)
	}
}

func TestParseSortMode(t *testing.T) {
	assert.Equal(t, SortPopularity, ParseSortMode(""))
	assert.Equal(t, SortPopularity, ParseSortMode("whatever"))
	assert.Equal(t, SortRecent, ParseSortMode("recent"))
	assert.Equal(t, SortRecent, ParseSortMode("RECIENTES"))
	assert.Equal(t, SortAlphabetical, ParseSortMode("alfabetico"))
	assert.Equal(t, SortTopRated, ParseSortMode("top-rated"))
	assert.Equal(t, SortTopRated, ParseSortMode("mejor_valorados"))
}

func TestCategory(t *testing.T) {
	assert.Len(t, Categories, 17)
	assert.True(t, CategoryFood.IsValid())
	assert.False(t, Category("Comida").IsValid())

	assert.True(t, IsAllCategories(""))
	assert.True(t, IsAllCategories("Todas"))
	assert.False(t, IsAllCategories(string(CategoryTourism)))
}

func TestOfferingKind(t *testing.T) {
	assert.Equal(t, OfferingKindProduct, ParseOfferingKind("product"))
	assert.Equal(t, OfferingKindService, ParseOfferingKind("servicio"))
	assert.False(t, ParseOfferingKind("Servicio").IsValid())
	assert.False(t, ParseOfferingKind("PRODUCT").IsValid())
	assert.False(t, ParseOfferingKind(" product").IsValid())
	assert.False(t, ParseOfferingKind("bundle").IsValid())
}

func TestGender(t *testing.T) {
	assert.True(t, GenderUnspecified.IsValid())
	assert.False(t, Gender("otro").IsValid())
}
