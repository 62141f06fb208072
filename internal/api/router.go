package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/yamato-seiki/schedule-api/docs"
	"github.com/yamato-seiki/schedule-api/internal/api/handler"
	"github.com/yamato-seiki/schedule-api/internal/api/middleware"
	"github.com/yamato-seiki/schedule-api/internal/core/calendar"
	"github.com/yamato-seiki/schedule-api/internal/core/service"
	mongodb "github.com/yamato-seiki/schedule-api/internal/infrastructure/db/mongo"
	redisdb "github.com/yamato-seiki/schedule-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("schedule"))

	// --- Dependencies ---
	clock := service.SystemClock{}
	palette := calendar.DefaultPalette()
	holidays := redisdb.NewHolidayStore(rdb)
	builder := calendar.NewBuilder(palette, holidays)

	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	scheduleRepo := mongodb.NewScheduleRepository(db)
	fieldRepo := mongodb.NewFieldRepository(db)

	authService := service.NewAuthService(userRepo, clock, jwtSecret, 24*time.Hour)
	projectService := service.NewProjectService(projectRepo, scheduleRepo, userRepo, clock, palette, log)
	scheduleService := service.NewScheduleService(scheduleRepo, projectRepo, fieldRepo, clock, log)
	fieldService := service.NewFieldService(fieldRepo, scheduleRepo, clock, log)
	calendarService := service.NewCalendarService(scheduleRepo, projectRepo, userRepo, builder, clock, log)
	dashboardService := service.NewDashboardService(scheduleRepo, projectRepo, clock, log)

	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	fieldHandler := handler.NewFieldHandler(fieldService)
	calendarHandler := handler.NewCalendarHandler(calendarService, clock)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	holidayHandler := handler.NewHolidayHandler(holidays)

	authMW := middleware.Auth(jwtSecret)
	editorMW := middleware.RequireEditor()
	managerMW := middleware.RequireManager()

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMW)

	v1.GET("/users/assignable", authHandler.AssignableUsers)

	v1.GET("/dashboard", dashboardHandler.Overview)

	v1.GET("/projects", projectHandler.List)
	v1.GET("/projects/:id", projectHandler.Get)
	v1.POST("/projects", projectHandler.Create, editorMW)
	v1.PUT("/projects/:id", projectHandler.Update, editorMW)
	v1.DELETE("/projects/:id", projectHandler.Delete, editorMW)
	v1.POST("/projects/:id/toggle-completion", projectHandler.ToggleCompletion, editorMW)

	v1.GET("/schedules/:id", scheduleHandler.Get)
	v1.POST("/schedules", scheduleHandler.Create, editorMW)
	v1.PUT("/schedules/:id", scheduleHandler.Update, editorMW)
	v1.DELETE("/schedules/:id", scheduleHandler.Delete, editorMW)
	v1.POST("/schedules/:id/toggle-completion", scheduleHandler.ToggleCompletion, editorMW)

	v1.GET("/fields", fieldHandler.List)
	v1.POST("/fields", fieldHandler.Create, editorMW)
	v1.PUT("/fields/:id", fieldHandler.Update, editorMW)
	v1.DELETE("/fields/:id", fieldHandler.Delete, editorMW)

	v1.GET("/calendar", calendarHandler.View)
	v1.GET("/calendar/events", calendarHandler.Events)

	v1.PUT("/holidays", holidayHandler.Seed, managerMW)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
