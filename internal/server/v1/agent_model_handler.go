package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/agent-models/internal/core/ports"
	"github.com/nulzo/agent-models/internal/server/validator"
	"github.com/nulzo/agent-models/pkg/api"
)

type AgentModelHandler struct {
	registry  ports.ModelRegistry
	validator *validator.Validator
}

func NewAgentModelHandler(registry ports.ModelRegistry, v *validator.Validator) *AgentModelHandler {
	return &AgentModelHandler{
		registry:  registry,
		validator: v,
	}
}

// List returns the agent model set, optionally filtered.
//
// GET /v1/agent-models?id=op&aliased=true
func (h *AgentModelHandler) List(c *gin.Context) {
	filter := ports.AgentModelFilter{ID: c.Query("id")}

	if raw := c.Query("aliased"); raw != "" {
		aliased, err := strconv.ParseBool(raw)
		if err != nil {
			_ = c.Error(api.BadRequestError("Invalid 'aliased' parameter, expected a boolean"))
			return
		}
		filter.Aliased = &aliased
	}

	list, err := h.registry.ListAgentModels(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.NewList(list))
}

// Validate reports whether the given value is an accepted agent model. An
// unknown value is a valid answer, not an error.
//
// POST /v1/agent-models/validate
func (h *AgentModelHandler) Validate(c *gin.Context) {
	var req api.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(api.ValidationError(h.validator.ParseError(err)))
		return
	}

	resp := api.ValidateResponse{Model: req.Model}

	m, err := h.registry.ParseAgentModel(c.Request.Context(), req.Model)
	if err == nil {
		resp.Valid = true
		resp.Aliased = m.IsAlias()
		resp.Canonical = m.Canonical()
	}

	c.JSON(http.StatusOK, resp)
}

// Resolve maps a batch of agent models to the identifiers sent upstream.
// Any unknown entry rejects the whole request.
//
// POST /v1/agent-models/resolve
func (h *AgentModelHandler) Resolve(c *gin.Context) {
	var req api.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(api.ValidationError(h.validator.ParseError(err)))
		return
	}

	out := make(map[string]string, len(req.Models))
	for _, value := range req.Models {
		m, err := h.registry.ParseAgentModel(c.Request.Context(), value)
		if err != nil {
			_ = c.Error(err)
			return
		}
		out[value] = m.Canonical()
	}

	c.JSON(http.StatusOK, api.ResolveResponse{Object: "resolution", Models: out})
}
