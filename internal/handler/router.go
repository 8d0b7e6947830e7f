package handler

import (
	"net/http"
	"strings"

	"realty/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// BuildInfo is reported by /health and /version
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// RouterOptions configures NewRouter
type RouterOptions struct {
	AllowedOrigins string // comma separated, "*" allows all
	Build          BuildInfo
}

// NewRouter wires every API route onto a gin engine
func NewRouter(catalog *service.Catalog, opts RouterOptions) *gin.Engine {
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = splitOrigins(opts.AllowedOrigins)
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type"}
	router.Use(cors.New(corsConfig))

	propertyHandler := NewPropertyHandler(catalog)
	agentHandler := NewAgentHandler(catalog)
	userHandler := NewUserHandler(catalog)
	inquiryHandler := NewInquiryHandler(catalog)
	aggregationHandler := NewAggregationHandler(catalog)
	adminHandler := NewAdminHandler(catalog)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Real Estate API",
			"endpoints": gin.H{
				"properties":  "/api/properties",
				"agents":      "/api/agents",
				"users":       "/api/users",
				"inquiries":   "/api/inquiries",
				"aggregation": "/api/aggregation/*",
				"init_db":     "/api/init-db",
			},
		})
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if err := catalog.Ping(c.Request.Context()); err != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":     status,
			"service":    "realty-api",
			"version":    opts.Build.Version,
			"build_time": opts.Build.BuildTime,
			"git_commit": opts.Build.GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    opts.Build.Version,
			"build_time": opts.Build.BuildTime,
			"git_commit": opts.Build.GitCommit,
		})
	})

	api := router.Group("/api")
	{
		properties := api.Group("/properties")
		properties.GET("", propertyHandler.List)
		properties.POST("", propertyHandler.Create)
		properties.GET("/:id", propertyHandler.Get)
		properties.PUT("/:id", propertyHandler.Update)
		properties.DELETE("/:id", propertyHandler.Delete)

		agents := api.Group("/agents")
		agents.GET("", agentHandler.List)
		agents.POST("", agentHandler.Create)
		agents.GET("/:id", agentHandler.Get)
		agents.PUT("/:id", agentHandler.Update)
		agents.DELETE("/:id", agentHandler.Delete)

		users := api.Group("/users")
		users.GET("", userHandler.List)
		users.POST("", userHandler.Create)
		users.GET("/:id", userHandler.Get)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)

		inquiries := api.Group("/inquiries")
		inquiries.GET("", inquiryHandler.List)
		inquiries.POST("", inquiryHandler.Create)
		inquiries.GET("/:id", inquiryHandler.Get)
		inquiries.PUT("/:id", inquiryHandler.Update)
		inquiries.DELETE("/:id", inquiryHandler.Delete)

		aggregation := api.Group("/aggregation")
		aggregation.GET("/average-price-by-city", aggregationHandler.AveragePriceByCity)
		aggregation.GET("/most-active-agents", aggregationHandler.MostActiveAgents)
		aggregation.GET("/properties-by-type", aggregationHandler.PropertiesByType)
		aggregation.GET("/inquiry-statistics", aggregationHandler.InquiryStatistics)
		aggregation.GET("/price-range-distribution", aggregationHandler.PriceRangeDistribution)

		api.POST("/init-db", adminHandler.InitDB)
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			writeError(c, http.StatusNotFound, "API endpoint not found")
			return
		}
		writeError(c, http.StatusNotFound, "Not found")
	})

	return router
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
