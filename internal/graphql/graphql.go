// Package graphql exposes the same entities and services as the REST surface
// through a parallel getX/addX/updateX/deleteX query and mutation set. The
// schema is built at startup; resolvers enforce the same role rules as the
// REST method gate by mapping mutations onto their equivalent HTTP methods.
package graphql

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/middleware"
	"github.com/jobsync-app/jobsync-backend/internal/models"
	"github.com/jobsync-app/jobsync-backend/internal/services"
)

type ctxKey string

const roleKey ctxKey = "role"

// Services groups everything the resolvers call.
type Services struct {
	Institutes *services.InstituteService
	Clients    *services.ClientService
	Workers    *services.WorkerService
	Tasks      *services.TaskService
	Users      *services.UserService
}

type Handler struct {
	schema graphql.Schema
}

// New builds the schema once.
func New(svc Services) (*Handler, error) {
	schema, err := buildSchema(svc)
	if err != nil {
		return nil, err
	}
	return &Handler{schema: schema}, nil
}

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Serve handles POST /api/graphql. Token validation and user resolution have
// already run; the resolved role rides along in the resolver context.
func (h *Handler) Serve(c *fiber.Ctx) error {
	var req request
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if req.Query == "" {
		return apperr.Validationf("query is required")
	}

	role, ok := middleware.UserRole(c)
	if !ok {
		return apperr.Unauthorized("invalid or expired token")
	}

	ctx := context.WithValue(c.UserContext(), roleKey, role)
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})
	return c.JSON(result)
}

// requireMethod applies the role gate using the HTTP method a mutation is
// equivalent to: add -> POST, update -> PUT, delete -> DELETE, get -> GET.
func requireMethod(ctx context.Context, method string) error {
	role, ok := ctx.Value(roleKey).(models.Role)
	if !ok {
		return apperr.Unauthorized("invalid or expired token")
	}
	if !middleware.MethodAllowed(role, method) {
		return apperr.Forbidden("role " + string(role) + " may not " + method)
	}
	return nil
}
