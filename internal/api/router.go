package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/metasoft/restyle-platform/internal/api/handler"
	"github.com/metasoft/restyle-platform/internal/api/middleware"
	"github.com/metasoft/restyle-platform/internal/core/domain"
	"github.com/metasoft/restyle-platform/internal/core/ports"
	"github.com/metasoft/restyle-platform/internal/core/service"
	mongodb "github.com/metasoft/restyle-platform/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens ports.TokenService, enqueuer service.RequestEnqueuer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("restyle"))
	e.Use(middleware.Auth(tokens, log))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	businessRepo := mongodb.NewBusinessRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)

	hasher := service.NewBcryptHasher()
	authService := service.NewAuthService(userRepo, roleRepo, hasher, tokens, log)
	businessService := service.NewBusinessService(businessRepo, log)
	projectService := service.NewProjectService(projectRepo, log)
	requestService := service.NewRequestService(requestRepo, enqueuer, log)
	reviewService := service.NewReviewService(reviewRepo, log)
	profileService := service.NewProfileService(profileRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	businessHandler := handler.NewBusinessHandler(businessService)
	projectHandler := handler.NewProjectHandler(projectService)
	requestHandler := handler.NewRequestHandler(requestService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	contractorHandler := handler.NewProfileHandler(profileService, domain.ProfileContractor)
	remodelerHandler := handler.NewProfileHandler(profileService, domain.ProfileRemodeler)

	public := middleware.RBAC(domain.RolePublic)
	authenticated := middleware.RBAC()
	remodelerOrAdmin := middleware.RBAC(domain.RoleRemodeler, domain.RoleAdmin)

	v1 := e.Group("/api/v1")

	// --- Authentication ---
	v1.POST("/authentication/sign-up", authHandler.SignUp, public)
	v1.POST("/authentication/sign-in", authHandler.SignIn, public)

	// --- Businesses ---
	v1.POST("/businesses", businessHandler.Create, remodelerOrAdmin)
	v1.GET("/businesses", businessHandler.List, authenticated)
	v1.GET("/businesses/:id", businessHandler.Get, authenticated)

	// --- Projects ---
	v1.POST("/projects", projectHandler.Create, remodelerOrAdmin)
	v1.GET("/projects", projectHandler.List, authenticated)
	v1.GET("/projects/:id", projectHandler.Get, authenticated)

	// --- Project requests ---
	v1.POST("/project-requests", requestHandler.Create, remodelerOrAdmin)
	v1.GET("/project-requests", requestHandler.List, authenticated)
	v1.GET("/project-requests/:id", requestHandler.Get, authenticated)

	// --- Reviews ---
	v1.POST("/reviews", reviewHandler.Create, authenticated)
	v1.GET("/reviews", reviewHandler.List, authenticated)
	v1.GET("/reviews/:id", reviewHandler.Get, authenticated)
	v1.PATCH("/reviews/:id", reviewHandler.Update, authenticated)

	// --- Profiles ---
	v1.POST("/contractors", contractorHandler.Create, authenticated)
	v1.GET("/contractors", contractorHandler.List, authenticated)
	v1.GET("/contractors/:id", contractorHandler.Get, authenticated)
	v1.POST("/remodelers", remodelerHandler.Create, authenticated)
	v1.GET("/remodelers", remodelerHandler.List, authenticated)
	v1.GET("/remodelers/:id", remodelerHandler.Get, authenticated)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
