package handler

import (
	"net/http"

	"realty/internal/model"
	"realty/internal/service"

	"github.com/gin-gonic/gin"
)

// InquiryHandler handles inquiry-related HTTP requests
type InquiryHandler struct {
	catalog *service.Catalog
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(catalog *service.Catalog) *InquiryHandler {
	return &InquiryHandler{
		catalog: catalog,
	}
}

// List handles GET /api/inquiries
func (h *InquiryHandler) List(c *gin.Context) {
	inquiries, err := h.catalog.ListInquiries(c.Request.Context(), model.InquiryFilter{
		PropertyID: c.Query("propertyId"),
		UserID:     c.Query("userId"),
		AgentID:    c.Query("agentId"),
		Status:     c.Query("status"),
	})
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, inquiries)
}

// Get handles GET /api/inquiries/:id
func (h *InquiryHandler) Get(c *gin.Context) {
	inquiry, err := h.catalog.GetInquiry(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if inquiry == nil {
		writeError(c, http.StatusNotFound, "Inquiry not found")
		return
	}

	c.JSON(http.StatusOK, inquiry)
}

// Create handles POST /api/inquiries
func (h *InquiryHandler) Create(c *gin.Context) {
	var req model.Inquiry
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	inquiry, err := h.catalog.CreateInquiry(c.Request.Context(), req)
	if err != nil {
		writeWriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, inquiry)
}

// Update handles PUT /api/inquiries/:id
func (h *InquiryHandler) Update(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}

	inquiry, err := h.catalog.UpdateInquiry(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		writeWriteError(c, err)
		return
	}
	if inquiry == nil {
		writeError(c, http.StatusNotFound, "Inquiry not found")
		return
	}

	c.JSON(http.StatusOK, inquiry)
}

// Delete handles DELETE /api/inquiries/:id
func (h *InquiryHandler) Delete(c *gin.Context) {
	deleted, err := h.catalog.DeleteInquiry(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeWriteError(c, err)
		return
	}
	if !deleted {
		writeError(c, http.StatusNotFound, "Inquiry not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inquiry deleted successfully"})
}
