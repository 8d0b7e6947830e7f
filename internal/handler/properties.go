package handler

import (
	"net/http"

	"realty/internal/model"
	"realty/internal/service"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles listing-related HTTP requests
type PropertyHandler struct {
	catalog *service.Catalog
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(catalog *service.Catalog) *PropertyHandler {
	return &PropertyHandler{
		catalog: catalog,
	}
}

// List handles GET /api/properties
func (h *PropertyHandler) List(c *gin.Context) {
	filter := model.PropertyFilter{
		City:         c.Query("city"),
		PropertyType: c.Query("propertyType"),
		MinPrice:     floatQuery(c, "minPrice"),
		MaxPrice:     floatQuery(c, "maxPrice"),
		SortBy:       c.DefaultQuery("sortBy", model.SortByCreatedAt),
		Descending:   c.DefaultQuery("order", model.OrderDesc) == model.OrderDesc,
	}

	listings, err := h.catalog.ListProperties(c.Request.Context(), filter)
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, listings)
}

// Get handles GET /api/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	listing, err := h.catalog.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if listing == nil {
		writeError(c, http.StatusNotFound, "Property not found")
		return
	}

	c.JSON(http.StatusOK, listing)
}

// Create handles POST /api/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	var req model.Listing
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	listing, err := h.catalog.CreateProperty(c.Request.Context(), req)
	if err != nil {
		writeWriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// Update handles PUT /api/properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}

	listing, err := h.catalog.UpdateProperty(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		writeWriteError(c, err)
		return
	}
	if listing == nil {
		writeError(c, http.StatusNotFound, "Property not found")
		return
	}

	c.JSON(http.StatusOK, listing)
}

// Delete handles DELETE /api/properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	deleted, err := h.catalog.DeleteProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeWriteError(c, err)
		return
	}
	if !deleted {
		writeError(c, http.StatusNotFound, "Property not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
}
