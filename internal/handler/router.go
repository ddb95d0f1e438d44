package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rooms-api/internal/handler/api"
	"rooms-api/internal/handler/middleware"
	"rooms-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	pool *pgxpool.Pool,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	statsHandler *api.StatsHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, pool, roomHandler, bookingHandler, statsHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	pool *pgxpool.Pool,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	statsHandler *api.StatsHandler,
) {
	engine.GET("/health", healthCheck(pool))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/rooms", Handler: roomHandler.List},
			{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.List},
			{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.Create},
			{Method: http.MethodDelete, Path: "/bookings/:id", Handler: bookingHandler.Delete},
			{Method: http.MethodGet, Path: "/statistics", Handler: statsHandler.Statistics},
		})
	}
}

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		group.Handle(r.Method, r.Path, r.Handler)
	}
}

// healthCheck answers ok only after a store round-trip
func healthCheck(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
