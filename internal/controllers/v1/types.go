package v1

import (
	ez_uuid "github.com/finassist/backend/internal/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// defaultLimit is the number of records returned by list endpoints
// when no limit is set.
const defaultLimit = 50

// limit returns the limit set in the query or the default.
func limit(setFields []string, value int) int {
	if slices.Contains(setFields, "Limit") {
		return value
	}

	return defaultLimit
}

// filterName keeps the records whose name matches pattern. Patterns can
// contain "*" as wildcard; without one, names must match exactly.
func filterName[T any](records []T, pattern string, name func(T) string) []T {
	if pattern == "" {
		return records
	}

	return slices.DeleteFunc(records, func(r T) bool {
		return !glob.Glob(pattern, name(r))
	})
}

// paginate returns the records for the page and its pagination data.
// Negative limits return all records after the offset.
func paginate[T any](records []T, offset uint, limit int) ([]T, *Pagination) {
	total := len(records)

	start := min(int(offset), total)
	end := total
	if limit >= 0 {
		end = min(start+limit, total)
	}

	page := records[start:end]
	return page, &Pagination{
		Count:  len(page),
		Total:  int64(total),
		Offset: offset,
		Limit:  limit,
	}
}
