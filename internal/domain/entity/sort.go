package entity

import "strings"

// SortMode selects the ordering of explore results.
type SortMode string

const (
	SortPopularity   SortMode = "popularidad"
	SortRecent       SortMode = "recientes"
	SortAlphabetical SortMode = "alfabetico"
	SortTopRated     SortMode = "mejor_valorados"
)

// ParseSortMode resolves a client value, accepting English aliases.
// Unknown or empty values fall back to popularity.
func ParseSortMode(raw string) SortMode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(SortRecent), "recent":
		return SortRecent
	case string(SortAlphabetical), "alphabetical":
		return SortAlphabetical
	case string(SortTopRated), "top-rated", "top_rated":
		return SortTopRated
	default:
		return SortPopularity
	}
}

// ExploreFilter holds the parameters of a marketplace search.
type ExploreFilter struct {
	Name     string
	Category string
	Sort     SortMode
}
