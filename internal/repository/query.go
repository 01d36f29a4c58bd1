// Package repository implements the data access layer for the application.
package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// DefaultPageLimit is the page size used when the client does not request one.
const DefaultPageLimit = 9

// PageParams holds the window and ordering of a paginated listing. Clients
// detect exhaustion by page size: a full page means more may exist, a short
// page means the listing is exhausted. There is no explicit hasMore flag.
type PageParams struct {
	StartIndex    int
	Limit         int
	SortAscending bool
}

// PostQuery combines pagination with the optional post filters. Absent
// filters contribute no clause at all; the final predicate is the
// conjunction of only the provided ones.
type PostQuery struct {
	PageParams
	UserID     uint
	Category   string
	Slug       string
	PostID     uint
	SearchTerm string
}

// SlugOnly reports whether the query is a bare slug lookup, the read the
// single-post page issues. These lookups are served through the slug cache
// instead of the filter pipeline.
func (q PostQuery) SlugOnly() bool {
	return q.Slug != "" && q.UserID == 0 && q.Category == "" && q.PostID == 0 && q.SearchTerm == ""
}

// applyPage appends ORDER BY, OFFSET and LIMIT for the page window.
func applyPage(db *gorm.DB, p PageParams, timeColumn string) *gorm.DB {
	direction := "desc"
	if p.SortAscending {
		direction = "asc"
	}

	limit := p.Limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	offset := p.StartIndex
	if offset < 0 {
		offset = 0
	}

	return db.Order(timeColumn + " " + direction).Offset(offset).Limit(limit)
}

// LastMonthStart returns the inclusive boundary for "created within the
// preceding calendar month": same day of month, one month earlier, at
// midnight local time.
func LastMonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()-1, now.Day(), 0, 0, 0, 0, now.Location())
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; SQLite phrasing covered for tests
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
