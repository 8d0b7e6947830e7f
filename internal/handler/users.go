package handler

import (
	"net/http"

	"realty/internal/model"
	"realty/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	catalog *service.Catalog
}

// NewUserHandler creates a new user handler
func NewUserHandler(catalog *service.Catalog) *UserHandler {
	return &UserHandler{
		catalog: catalog,
	}
}

// List handles GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.catalog.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, users)
}

// Get handles GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.catalog.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if user == nil {
		writeError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Create handles POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req model.User
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	user, err := h.catalog.CreateUser(c.Request.Context(), req)
	if err != nil {
		writeWriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Update handles PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}

	user, err := h.catalog.UpdateUser(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		writeWriteError(c, err)
		return
	}
	if user == nil {
		writeError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	deleted, err := h.catalog.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeWriteError(c, err)
		return
	}
	if !deleted {
		writeError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
