// Package server contains the HTTP surface of the application: route setup,
// the authentication gate, request handlers and the error normalizer.
package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"recipebox/internal/auth"
	"recipebox/internal/cache"
	"recipebox/internal/config"
	"recipebox/internal/database"
	"recipebox/internal/middleware"
	"recipebox/internal/models"
	"recipebox/internal/observability"
	"recipebox/internal/repository"
	"recipebox/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	tokens         *auth.TokenService
	userRepo       repository.UserRepository
	recipeRepo     repository.RecipeRepository
	userService    *service.UserService
	recipeService  *service.RecipeService
}

// NewServer creates a new server instance, establishing the database and
// Redis connections from configuration.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Tests use this with an in-memory database and a nil Redis client.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("recipebox-api"),
		tokens:         auth.NewTokenService(cfg.JWTSecret),
		userRepo:       userRepo,
		recipeRepo:     recipeRepo,
		userService:    service.NewUserService(userRepo),
		recipeService:  service.NewRecipeService(recipeRepo),
	}
}

// SetTokenService replaces the token service. Tests use this to issue
// tokens with custom lifetimes.
func (s *Server) SetTokenService(ts *auth.TokenService) {
	s.tokens = ts
}

// NewApp builds the Fiber application with the error normalizer installed.
func (s *Server) NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "RecipeBox API",
		ErrorHandler: s.normalizeError,
	})
}

// normalizeError is the single terminal stage converting any failure raised
// upstream into the uniform {success:false, message} envelope with an HTTP
// status. Handlers never format error responses themselves.
func (s *Server) normalizeError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code == fiber.StatusNotFound {
			appErr = models.NewRouteNotFoundError(c.Path())
		} else {
			appErr = models.NewInternalError(err)
		}
	}

	message := appErr.Message
	if appErr.Code == models.CodeInternal {
		middleware.Logger.ErrorContext(c.UserContext(), "unhandled error",
			"error", appErr.Error(), "path", c.Path())
		// Diagnostic detail is only exposed outside production.
		if !s.config.IsProduction() && appErr.Err != nil {
			message = appErr.Err.Error()
		}
	}

	return c.Status(appErr.Status()).JSON(models.Response{
		Success: false,
		Message: message,
	})
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Context middleware propagates request ID and user ID to the logger.
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter) so
	// browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(models.Response{
				Success: false,
				Message: "Too many requests, please try again later",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")
	api.Get("/", s.APIIndex)

	// Auth routes, rate limited per client
	authGroup := api.Group("/auth")
	authGroup.Post("/register", middleware.RateLimit(
		s.redis, 5, 15*time.Minute, "register"), s.Register)
	authGroup.Post("/login", middleware.RateLimit(
		s.redis, 5, 15*time.Minute, "login"), s.Login)

	// User routes (all private)
	users := api.Group("/users", s.AuthRequired())
	users.Get("/profile", s.GetProfile)
	users.Put("/profile", s.UpdateProfile)

	// Recipe routes. The literal /my/recipes route must be registered BEFORE
	// the generic /:id route or the parameterized segment would capture it.
	recipes := api.Group("/recipes")
	recipes.Get("/", s.ListRecipes)
	recipes.Get("/my/recipes", s.AuthRequired(), s.ListMyRecipes)
	recipes.Get("/:id", s.GetRecipe)
	recipes.Post("/", s.AuthRequired(), s.CreateRecipe)
	recipes.Put("/:id", s.AuthRequired(), s.UpdateRecipe)
	recipes.Delete("/:id", s.AuthRequired(), s.DeleteRecipe)

	// Anything unmatched is a RouteNotFound, normalized like every failure.
	app.Use(func(c *fiber.Ctx) error {
		return models.NewRouteNotFoundError(c.Path())
	})
}

// AuthRequired returns the authentication gate. It extracts a bearer token
// from the Authorization header, verifies it, and resolves the embedded user
// ID to a live account. The resolved identity is attached to the request for
// downstream handlers.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			observability.AuthFailures.WithLabelValues("missing_header").Inc()
			return models.NewUnauthenticatedError("Authorization required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			observability.AuthFailures.WithLabelValues("malformed_header").Inc()
			return models.NewUnauthenticatedError("Invalid authorization header format")
		}

		userID, err := s.tokens.Verify(parts[1])
		if err != nil {
			observability.AuthFailures.WithLabelValues("invalid_token").Inc()
			return err
		}

		// A verified token may still reference a deleted account.
		user, err := s.userRepo.GetByID(c.Context(), userID)
		if err != nil {
			observability.AuthFailures.WithLabelValues("unknown_user").Inc()
			return models.NewUnauthenticatedError("User no longer exists")
		}

		c.Locals("userID", user.ID)
		c.Locals("user", user)
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, user.ID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// APIIndex handles GET /api, describing the available endpoints.
func (s *Server) APIIndex(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Recipe Sharing API",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"POST /api/auth/register":     "Register new user",
			"POST /api/auth/login":        "Login user",
			"GET /api/users/profile":      "Get user profile (Private)",
			"PUT /api/users/profile":      "Update user profile (Private)",
			"POST /api/recipes":           "Create recipe (Private)",
			"GET /api/recipes":            "Get all recipes (Public)",
			"GET /api/recipes/:id":        "Get single recipe (Public)",
			"PUT /api/recipes/:id":        "Update recipe (Private)",
			"DELETE /api/recipes/:id":     "Delete recipe (Private)",
			"GET /api/recipes/my/recipes": "Get my recipes (Private)",
		},
	})
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// Redis is optional; rate limiting fails open without it.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overall := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overall = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start builds the app, wires routes and listens on the configured port.
func (s *Server) Start() error {
	app := s.NewApp()
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	middleware.Logger.Info("Server starting", "port", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server and closes its resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", "error", err.Error())
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", "error", cerr.Error())
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", "error", rerr.Error())
		}
	}

	middleware.Logger.Info("Server shutdown complete")
	return nil
}
