package server

import (
	"strconv"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/token"

	"github.com/gofiber/fiber/v2"
)

// parsePage extracts the startIndex, limit and sort query parameters.
// Unparseable values fall back to the defaults (start 0, limit 9, newest
// first) rather than failing the request. The limit is passed through as
// requested; clients detect exhaustion by comparing the page size against
// it, so silently shrinking it would make a full page look short.
func parsePage(c *fiber.Ctx) repository.PageParams {
	start := c.QueryInt("startIndex", 0)
	if start < 0 {
		start = 0
	}

	limit := c.QueryInt("limit", repository.DefaultPageLimit)
	if limit <= 0 {
		limit = repository.DefaultPageLimit
	}

	return repository.PageParams{
		StartIndex:    start,
		Limit:         limit,
		SortAscending: c.Query("sort") == "asc",
	}
}

// parsePostQuery extracts the post listing filters on top of the page
// parameters. Absent filters stay zero-valued and are skipped by the
// repository.
func parsePostQuery(c *fiber.Ctx) repository.PostQuery {
	q := repository.PostQuery{
		PageParams: parsePage(c),
		Category:   c.Query("category"),
		Slug:       c.Query("slug"),
		SearchTerm: c.Query("searchTerm"),
	}
	if v, err := strconv.ParseUint(c.Query("userId"), 10, 32); err == nil {
		q.UserID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("postId"), 10, 32); err == nil {
		q.PostID = uint(v)
	}
	return q
}

// parseID extracts a route parameter as a positive uint.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, models.NewValidationError("Invalid " + param)
	}
	return uint(id), nil
}

// actorClaims returns the verified token claims stored by AuthRequired.
func actorClaims(c *fiber.Ctx) token.Claims {
	claims, _ := c.Locals("claims").(token.Claims)
	return claims
}
