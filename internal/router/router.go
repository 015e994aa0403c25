package router

import (
	"net/http"

	docs "socialelections/cmd/docs"
	"socialelections/config"
	"socialelections/internal/middleware"
	"socialelections/internal/pkg/request"
	"socialelections/internal/pkg/response"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var ProviderSet = wire.NewSet(
	NewRouter,
	NewHealthRouter,
	NewEmployeeRouter,
	NewTechnicalUnitRouter,
	NewWorksCouncilRouter,
)

// 透過依賴注入將 middleware 與各 router 組成 gin engine
func NewRouter(
	config *config.Configuration,
	traceEntry *middleware.TraceEntry,
	recovery *middleware.Recovery,
	cors *middleware.Cors,
	logger *middleware.Logger,
	responseMiddleware *middleware.Response,
	decompress *middleware.Decompress,
	healthRouter *HealthRouter,
	employeeRouter *EmployeeRouter,
	technicalUnitRouter *TechnicalUnitRouter,
	worksCouncilRouter *WorksCouncilRouter,
) *gin.Engine {

	switch config.App.Env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	request.RegisterValidations()

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Header("X-App-Version", config.App.Version)
		c.Next()
	})
	router.Use(traceEntry.Handler())
	router.Use(logger.LoggerHandler())
	router.Use(cors.CorsHandler())
	router.Use(recovery.ErrorHandler())
	router.Use(decompress.Handler())
	router.Use(responseMiddleware.FormatHandler())
	router.GET("/health-check", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.Response{
			Code:        0,
			Data:        "ok",
			Message:     "success",
			Description: "service is alive",
		})
		c.Abort()
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if config.App.SwaggerEnabled {
		router.GET("/swagger/*any", func(c *gin.Context) {
			docs.SwaggerInfo.Host = c.Request.Host

			if config.App.Env == "production" {
				docs.SwaggerInfo.Schemes = []string{"https"}
			}
		}, ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	healthRouter.RegisterHealthRoutes(router)
	api := router.Group("/api")
	{
		employeeRouter.RegisterRoutes(api)
		technicalUnitRouter.RegisterRoutes(api)
		worksCouncilRouter.RegisterRoutes(api)
	}
	if config.App.Env != "production" {
		pprof.Register(router)
	}
	return router
}
