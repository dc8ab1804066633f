package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lifeboard-dev/lifeboard/internal/config"
	"github.com/lifeboard-dev/lifeboard/internal/handlers"
	"github.com/lifeboard-dev/lifeboard/internal/observability"
)

func NewRouter(h *handlers.Handler, cfg config.Config) *gin.Engine {
	// Unknown body fields are a client bug; reject them outright.
	gin.EnableJsonDecoderDisallowUnknownFields()

	r := gin.Default()

	r.Use(observability.Middleware())

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(observability.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws", h.WebSocket)
		api.GET("/calendar.ics", h.CalendarFeed)

		api.GET("/classes", h.ListClasses)
		api.POST("/classes", h.CreateClass)

		api.GET("/work-items", h.ListWorkItems)
		api.POST("/work-items", h.CreateWorkItem)
		api.PATCH("/work-items/:id", h.UpdateWorkItem)
		api.DELETE("/work-items/:id", h.DeleteWorkItem)

		api.GET("/important-dates", h.ListImportantDates)
		api.POST("/important-dates", h.CreateImportantDate)
		api.PATCH("/important-dates/:id", h.UpdateImportantDate)
		api.DELETE("/important-dates/:id", h.DeleteImportantDate)

		api.GET("/ideas", h.ListIdeas)
		api.POST("/ideas", h.CreateIdea)
		api.PATCH("/ideas/:id", h.UpdateIdea)
		api.DELETE("/ideas/:id", h.DeleteIdea)

		api.GET("/events", h.ListEvents)
		api.POST("/events", h.CreateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)

		api.GET("/workouts", h.ListWorkouts)
		api.POST("/workouts", h.CreateWorkout)
		api.DELETE("/workouts/:id", h.DeleteWorkout)

		bike := api.Group("/bike")
		{
			bike.GET("/ideas", h.ListBikeIdeas)
			bike.POST("/ideas", h.CreateBikeIdea)
			bike.PATCH("/ideas/:id", h.UpdateBikeIdea)
			bike.DELETE("/ideas/:id", h.DeleteBikeIdea)

			bike.GET("/events", h.ListBikeEvents)
			bike.POST("/events", h.CreateBikeEvent)
			bike.PATCH("/events/:id", h.UpdateBikeEvent)
			bike.DELETE("/events/:id", h.DeleteBikeEvent)
		}
	}

	registerSPAFallback(r, cfg.StaticDir)

	return r
}

// registerSPAFallback serves the built SPA: real files from the dist
// directory, the entry document for every other non-API path so client-side
// routing works on deep links.
func registerSPAFallback(r *gin.Engine, distDir string) {
	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api") {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		requested := filepath.Join(distDir, filepath.Clean("/"+ctx.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			ctx.File(requested)
			return
		}

		index := filepath.Join(distDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			ctx.String(http.StatusNotFound, "index.html not found")
			return
		}
		ctx.File(index)
	})
}
