package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Mehulsingh1010/Serenity-AI-sub000/docs"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/api/handlers"
	mw "github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/api/middleware"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/analysis"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/journal"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/report"
	subsvc "github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/subscription"
	cfgpkg "github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/config"
	metrics "github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/metrics"
)

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Add request tracing middleware only; request logger & access log are attached per group in registerRoutes
	r.Use(mw.TraceMiddleware())
	return r
}

func registerRoutes(r *gin.Engine, log *zap.SugaredLogger, an analysis.Analyzer, store journal.Store, exp report.Exporter, gate *subsvc.Service, cfg *cfgpkg.Config) {
	// Prometheus metrics
	if cfg != nil && cfg.MetricsAddr != "" {
		p := metrics.NewPrometheus(metrics.NewPrometheusOptions{
			ReqCntURLLabelMappingFn: func(c *gin.Context) string {
				if fp := c.FullPath(); fp != "" {
					return fp
				}
				return c.Request.URL.Path
			},
			Logger: log,
		})
		p.SetListenAddress(cfg.MetricsAddr)
		p.Use(r)

		log.Infow("metrics started", "addr", cfg.MetricsAddr)
	}

	// Public group: request logger + access log
	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware())
	handlers.RegisterHealthRoutes(pub)
	// Swagger UI
	docs.SwaggerInfo.BasePath = "/"
	pub.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Journal pipeline: userId-addressed endpoints, callable without a token
	apiV1 := r.Group("/api/v1")
	apiV1.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware())
	handlers.RegisterJournalRoutes(apiV1, an, store, log)
	handlers.RegisterReportRoutes(apiV1, exp)

	// Identity-bound endpoints behind bearer auth
	authed := apiV1.Group("/")
	authed.Use(mw.AuthMiddleware(cfg.Auth.JWTSecret))
	handlers.RegisterMoodRoutes(authed, store)
	handlers.RegisterSubscriptionRoutes(authed, gate)
}

func runServer(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, r *gin.Engine) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting HTTP server", "addr", addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil {
					log.Errorf("server error: %v", err)
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 120*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(newEngine),
	fx.Invoke(registerRoutes),
	fx.Invoke(runServer),
)
