package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/agent-models/internal/core/ports"
	"github.com/nulzo/agent-models/pkg/api"
)

type ProviderHandler struct {
	registry ports.ModelRegistry
}

func NewProviderHandler(registry ports.ModelRegistry) *ProviderHandler {
	return &ProviderHandler{registry: registry}
}

// List returns the default model of every provider.
//
// GET /v1/providers
func (h *ProviderHandler) List(c *gin.Context) {
	catalog, err := h.registry.Catalog(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, api.NewList(catalog.Defaults))
}

// GetDefault returns the default model for one provider.
//
// GET /v1/providers/:provider/default
func (h *ProviderHandler) GetDefault(c *gin.Context) {
	provider := c.Param("provider")

	id, err := h.registry.DefaultModelFor(c.Request.Context(), provider)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.DefaultModelResponse{Provider: provider, Model: id})
}
