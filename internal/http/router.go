package http

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/givehub/eventsapi/internal/http/handlers"
	"github.com/givehub/eventsapi/internal/http/middlewares"
	"github.com/givehub/eventsapi/internal/observability"
	"github.com/givehub/eventsapi/internal/repo/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func NewRouter(log *slog.Logger, pool *pgxpool.Pool, prom *observability.Prom, corsOrigins []string) *gin.Engine {
	cfgEnv := os.Getenv("APP_ENV")

	if cfgEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(otelgin.Middleware("givehub-eventsapi"))
	r.Use(RequestLogger(log))
	r.Use(middlewares.CORSMiddleware(corsOrigins))
	r.Use(middlewares.MaxBodyBytes(1 << 20))
	r.Use(middlewares.RequireJSON())

	if prom != nil {
		r.Use(prom.GinHandleMiddleware())
	}

	// health
	ping := func() error {
		if pool == nil {
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		return pool.Ping(ctx)
	}

	h := handlers.NewHealthHandler(ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// wire up repositories
	eventsRepo := postgres.NewEventsRepo(pool, prom)
	registrationsRepo := postgres.NewRegistrationsRepo(pool, prom)
	categoriesRepo := postgres.NewCategoriesRepo(pool, prom)

	// wire up handlers
	eventsHandler := handlers.NewEventsHandler(eventsRepo, registrationsRepo, log)
	registrationsHandler := handlers.NewRegistrationsHandler(registrationsRepo, log)
	categoriesHandler := handlers.NewCategoriesHandler(categoriesRepo, log)

	api := r.Group("/api")

	// public client
	// /events/home and /events/search dispatch inside GetEventByID, gin
	// does not allow them as static siblings of :id
	api.GET("/events/:id", eventsHandler.GetEventByID)
	api.POST("/registrations", registrationsHandler.Register)
	api.GET("/categories", categoriesHandler.List)

	// admin client, unauthenticated by design
	api.GET("/admin/events", eventsHandler.AdminList)
	api.POST("/events", eventsHandler.CreateEvent)
	api.PUT("/events/:id", eventsHandler.UpdateEvent)
	api.DELETE("/events/:id", eventsHandler.DeleteEvent)

	return r
}
