package helper

import (
	"math"
	"strings"

	"orgsite-cms/models"
)

// NormalizePage clamps a 1-based page number: anything below 1 is
// treated as page 1. Pages past the end stay as-is and simply yield
// an empty page from the store.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// BuildPage wraps an ordered result slice in the pagination envelope.
func BuildPage(items interface{}, total int64, page, perPage int) models.Page {
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))

	return models.Page{
		Items:      items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// SplitQuery breaks a search query on whitespace into terms. A record
// matches when any term matches any searched field; the empty query
// produces no terms and therefore no results.
func SplitQuery(query string) []string {
	return strings.Fields(query)
}
