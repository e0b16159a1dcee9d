package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is a validated page/limit pair. Invalid values are rejected before
// they reach the query layer, never clamped.
type Params struct {
	Page  int
	Limit int
}

// New validates page >= 1 and 1 <= limit <= MaxLimit.
func New(page, limit int) (Params, error) {
	if page < 1 {
		return Params{}, apperr.Validationf("page must be >= 1, got %d", page)
	}
	if limit < 1 || limit > MaxLimit {
		return Params{}, apperr.Validationf("limit must be between 1 and %d, got %d", MaxLimit, limit)
	}
	return Params{Page: page, Limit: limit}, nil
}

// FromRequest parses page and limit from the query string, applying defaults
// when absent.
func FromRequest(c *fiber.Ctx) (Params, error) {
	page := DefaultPage
	if raw := c.Query("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Params{}, apperr.Validationf("page must be an integer")
		}
		page = v
	}

	limit := DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Params{}, apperr.Validationf("limit must be an integer")
		}
		limit = v
	}

	return New(page, limit)
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Result wraps one page of rows with the pre-pagination total.
type Result[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func NewResult[T any](data []T, total int64, p Params) *Result[T] {
	if data == nil {
		data = []T{}
	}
	return &Result[T]{Data: data, Total: total, Page: p.Page, Limit: p.Limit}
}
