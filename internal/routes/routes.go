package routes

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/config"
	"github.com/jobsync-app/jobsync-backend/internal/dto"
	"github.com/jobsync-app/jobsync-backend/internal/graphql"
	"github.com/jobsync-app/jobsync-backend/internal/handlers"
	"github.com/jobsync-app/jobsync-backend/internal/middleware"
	"github.com/jobsync-app/jobsync-backend/internal/repository"
	"github.com/jobsync-app/jobsync-backend/internal/search"
	"github.com/jobsync-app/jobsync-backend/internal/services"
)

// Setup wires repositories, services and handlers onto the app. It returns
// the auth service so the caller can seed the bootstrap admin account.
func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB) (*services.AuthService, error) {
	nameSearch := search.NameSearch{
		Threshold: cfg.SimilarityThreshold,
		// pg_trgm similarity() only exists on Postgres; other dialects go
		// straight to the substring strategy.
		UseTrigram: db.Dialector.Name() == "postgres",
	}

	instituteRepo := repository.NewInstituteRepository(db, nameSearch)
	clientRepo := repository.NewClientRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	userRepo := repository.NewUserRepository(db)

	instituteSvc := services.NewInstituteService(instituteRepo)
	clientSvc := services.NewClientService(clientRepo, instituteRepo)
	workerSvc := services.NewWorkerService(workerRepo, instituteRepo)
	taskSvc := services.NewTaskService(taskRepo, clientRepo, workerRepo)
	userSvc := services.NewUserService(userRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTAccessExpiry)

	authHandler := handlers.NewAuthHandler(authSvc)
	healthHandler := handlers.NewHealthHandler(db)
	instituteHandler := handlers.NewInstituteHandler(instituteSvc)
	clientHandler := handlers.NewClientHandler(clientSvc)
	workerHandler := handlers.NewWorkerHandler(workerSvc)
	taskHandler := handlers.NewTaskHandler(taskSvc)
	userHandler := handlers.NewUserHandler(userSvc)

	gqlHandler, err := graphql.New(graphql.Services{
		Institutes: instituteSvc,
		Clients:    clientSvc,
		Workers:    workerSvc,
		Tasks:      taskSvc,
		Users:      userSvc,
	})
	if err != nil {
		return nil, err
	}

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)

	// Everything below requires a valid token resolving to a live user. The
	// method gate handles roles: viewers read, editors also update, admins
	// also create and delete.
	protected := api.Group("",
		middleware.JWTProtected(cfg),
		middleware.ResolveUser(authSvc),
		middleware.RequireMethodAccess(),
	)

	registerCRUD(protected, "/institutes", crudHandlers{
		create: instituteHandler.Create,
		list:   instituteHandler.List,
		get:    instituteHandler.Get,
		update: instituteHandler.Update,
		delete: instituteHandler.Delete,
	})
	registerCRUD(protected, "/clients", crudHandlers{
		create: clientHandler.Create,
		list:   clientHandler.List,
		get:    clientHandler.Get,
		update: clientHandler.Update,
		delete: clientHandler.Delete,
	})
	registerCRUD(protected, "/workers", crudHandlers{
		create: workerHandler.Create,
		list:   workerHandler.List,
		get:    workerHandler.Get,
		update: workerHandler.Update,
		delete: workerHandler.Delete,
	})
	registerCRUD(protected, "/tasks", crudHandlers{
		create: taskHandler.Create,
		list:   taskHandler.List,
		get:    taskHandler.Get,
		update: taskHandler.Update,
		delete: taskHandler.Delete,
	})
	registerCRUD(protected, "/users", crudHandlers{
		create: userHandler.Create,
		list:   userHandler.List,
		get:    userHandler.Get,
		update: userHandler.Update,
		delete: userHandler.Delete,
	})

	protected.Post("/task-assignments", taskHandler.Assign)

	// GraphQL rides on POST, so the method gate would lock out read-only
	// roles. Resolvers enforce the same rules per operation instead.
	api.Post("/graphql",
		middleware.JWTProtected(cfg),
		middleware.ResolveUser(authSvc),
		gqlHandler.Serve,
	)

	return authSvc, nil
}

type crudHandlers struct {
	create fiber.Handler
	list   fiber.Handler
	get    fiber.Handler
	update fiber.Handler
	delete fiber.Handler
}

func registerCRUD(r fiber.Router, prefix string, h crudHandlers) {
	g := r.Group(prefix)
	g.Post("/", h.create)
	g.Get("/", h.list)
	g.Get("/:id", h.get)
	g.Put("/:id", h.update)
	g.Delete("/:id", h.delete)
}

// ErrorHandler is the app-wide Fiber error handler. Handlers return errors
// raw; this maps them onto a uniform envelope and hides 5xx details.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var appErr *apperr.Error
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		code = appErr.Status()
		message = appErr.Message
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{Error: true, Message: message})
}
