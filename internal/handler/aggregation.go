package handler

import (
	"net/http"

	"realty/internal/service"

	"github.com/gin-gonic/gin"
)

// AggregationHandler serves the read-only reports under /api/aggregation
type AggregationHandler struct {
	catalog *service.Catalog
}

// NewAggregationHandler creates a new aggregation handler
func NewAggregationHandler(catalog *service.Catalog) *AggregationHandler {
	return &AggregationHandler{
		catalog: catalog,
	}
}

// AveragePriceByCity handles GET /api/aggregation/average-price-by-city
func (h *AggregationHandler) AveragePriceByCity(c *gin.Context) {
	respond(c, func() (interface{}, error) { return h.catalog.AveragePriceByCity(c.Request.Context()) })
}

// MostActiveAgents handles GET /api/aggregation/most-active-agents
func (h *AggregationHandler) MostActiveAgents(c *gin.Context) {
	respond(c, func() (interface{}, error) { return h.catalog.MostActiveAgents(c.Request.Context()) })
}

// PropertiesByType handles GET /api/aggregation/properties-by-type
func (h *AggregationHandler) PropertiesByType(c *gin.Context) {
	respond(c, func() (interface{}, error) { return h.catalog.PropertiesByType(c.Request.Context()) })
}

// InquiryStatistics handles GET /api/aggregation/inquiry-statistics
func (h *AggregationHandler) InquiryStatistics(c *gin.Context) {
	respond(c, func() (interface{}, error) { return h.catalog.InquiryStatistics(c.Request.Context()) })
}

// PriceRangeDistribution handles GET /api/aggregation/price-range-distribution
func (h *AggregationHandler) PriceRangeDistribution(c *gin.Context) {
	respond(c, func() (interface{}, error) { return h.catalog.PriceRangeDistribution(c.Request.Context()) })
}

func respond(c *gin.Context, load func() (interface{}, error)) {
	rows, err := load()
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, rows)
}

// AdminHandler handles database maintenance requests
type AdminHandler struct {
	catalog *service.Catalog
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(catalog *service.Catalog) *AdminHandler {
	return &AdminHandler{
		catalog: catalog,
	}
}

// InitDB handles POST /api/init-db
func (h *AdminHandler) InitDB(c *gin.Context) {
	seeded, err := h.catalog.InitDatabase(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Database initialized successfully",
		"seeded":  seeded,
	})
}
