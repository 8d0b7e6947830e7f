package handler

import (
	"net/http"

	"realty/internal/model"
	"realty/internal/service"

	"github.com/gin-gonic/gin"
)

// AgentHandler handles agent-related HTTP requests
type AgentHandler struct {
	catalog *service.Catalog
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(catalog *service.Catalog) *AgentHandler {
	return &AgentHandler{
		catalog: catalog,
	}
}

// List handles GET /api/agents
func (h *AgentHandler) List(c *gin.Context) {
	agents, err := h.catalog.ListAgents(c.Request.Context(), model.AgentFilter{
		Specialization: c.Query("specialization"),
	})
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, agents)
}

// Get handles GET /api/agents/:id
func (h *AgentHandler) Get(c *gin.Context) {
	agent, err := h.catalog.GetAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if agent == nil {
		writeError(c, http.StatusNotFound, "Agent not found")
		return
	}

	c.JSON(http.StatusOK, agent)
}

// Create handles POST /api/agents
func (h *AgentHandler) Create(c *gin.Context) {
	var req model.Agent
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	agent, err := h.catalog.CreateAgent(c.Request.Context(), req)
	if err != nil {
		writeWriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, agent)
}

// Update handles PUT /api/agents/:id
func (h *AgentHandler) Update(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}

	agent, err := h.catalog.UpdateAgent(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		writeWriteError(c, err)
		return
	}
	if agent == nil {
		writeError(c, http.StatusNotFound, "Agent not found")
		return
	}

	c.JSON(http.StatusOK, agent)
}

// Delete handles DELETE /api/agents/:id
func (h *AgentHandler) Delete(c *gin.Context) {
	deleted, err := h.catalog.DeleteAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeWriteError(c, err)
		return
	}
	if !deleted {
		writeError(c, http.StatusNotFound, "Agent not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Agent deleted successfully"})
}
