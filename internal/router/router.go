package router

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/spendbase/backend/api"
	"github.com/spendbase/backend/internal/controllers/healthz"
	"github.com/spendbase/backend/internal/controllers/root"
	v1 "github.com/spendbase/backend/internal/controllers/v1"
	"github.com/spendbase/backend/internal/controllers/version"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with -ldflags.
var apiVersion = "0.0.0"

// Router controls the routes for the API.
func Router() (*gin.Engine, error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "DELETE"},
			AllowHeaders:     []string{"Origin", "Authorization", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(string, string, string, int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	// Profiling is only exposed when explicitly enabled
	if _, ok := os.LookupEnv("ENABLE_PPROF"); ok {
		pprof.Register(r)
	}

	/*
	 *  Route setup
	 */
	root.RegisterRoutes(r.Group(""))
	healthz.RegisterRoutes(r.Group("/healthz"))
	version.RegisterRoutes(r.Group("/version"), apiVersion)

	r.GET("/metrics", MetricsHandler())
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 setup
	apiv1 := r.Group("/v1")
	{
		apiv1.GET("", v1.GetV1)
		apiv1.OPTIONS("", v1.OptionsV1)
	}

	// Registration and login do not require a session
	v1.RegisterAuthRoutes(apiv1)

	// Everything else is scoped to the authenticated user
	authed := apiv1.Group("")
	authed.Use(v1.Authenticate())

	v1.RegisterCategoryRoutes(authed.Group("/categories"))
	v1.RegisterExpenseRoutes(authed.Group("/expenses"))
	v1.RegisterRecurringExpenseRoutes(authed.Group("/recurring-expenses"))
	v1.RegisterDashboardRoutes(authed.Group("/dashboard"))
	v1.RegisterReportRoutes(authed.Group("/reports"))

	log.Info().Msg("backend startup complete")

	return r, nil
}
