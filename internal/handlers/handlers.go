package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
)

// paramID parses the :id route parameter.
func paramID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperr.Validationf("invalid id %q", c.Params("id"))
	}
	return id, nil
}

// queryID parses an optional uuid query parameter, returning uuid.Nil when
// absent.
func queryID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	raw := c.Query(key)
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Validationf("invalid %s %q", key, raw)
	}
	return id, nil
}

// queryTime parses an optional timestamp query parameter, accepting RFC3339
// or a bare date.
func queryTime(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	return nil, apperr.Validationf("invalid %s %q, expected RFC3339 or YYYY-MM-DD", key, raw)
}

// queryMulti collects every occurrence of a repeated query parameter.
func queryMulti(c *fiber.Ctx, key string) []string {
	var values []string
	for _, v := range c.Context().QueryArgs().PeekMulti(key) {
		if len(v) > 0 {
			values = append(values, string(v))
		}
	}
	return values
}
