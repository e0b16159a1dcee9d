package graphql

import (
	"time"

	"github.com/google/uuid"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/pagination"
)

func strArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

func strPtrArg(args map[string]interface{}, key string) *string {
	if v, ok := args[key].(string); ok {
		return &v
	}
	return nil
}

func boolPtrArg(args map[string]interface{}, key string) *bool {
	if v, ok := args[key].(bool); ok {
		return &v
	}
	return nil
}

func timePtrArg(args map[string]interface{}, key string) *time.Time {
	if v, ok := args[key].(time.Time); ok {
		return &v
	}
	return nil
}

func strListArg(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values
}

// idArg parses a required uuid argument.
func idArg(args map[string]interface{}, key string) (uuid.UUID, error) {
	raw, _ := args[key].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Validationf("invalid %s %q", key, raw)
	}
	return id, nil
}

// optionalIDArg parses an optional uuid argument, returning uuid.Nil when
// absent.
func optionalIDArg(args map[string]interface{}, key string) (uuid.UUID, error) {
	raw, ok := args[key].(string)
	if !ok || raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Validationf("invalid %s %q", key, raw)
	}
	return id, nil
}

// idPtrArg parses an optional uuid argument into a pointer.
func idPtrArg(args map[string]interface{}, key string) (*uuid.UUID, error) {
	raw, ok := args[key].(string)
	if !ok || raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperr.Validationf("invalid %s %q", key, raw)
	}
	return &id, nil
}

// pageArgs applies the same validation as the REST pagination parser.
func pageArgs(args map[string]interface{}) (pagination.Params, error) {
	page := pagination.DefaultPage
	if v, ok := args["page"].(int); ok {
		page = v
	}
	limit := pagination.DefaultLimit
	if v, ok := args["limit"].(int); ok {
		limit = v
	}
	return pagination.New(page, limit)
}
