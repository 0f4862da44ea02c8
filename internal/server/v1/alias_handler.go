package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/agent-models/internal/core/ports"
	"github.com/nulzo/agent-models/pkg/api"
)

type AliasHandler struct {
	registry ports.ModelRegistry
}

func NewAliasHandler(registry ports.ModelRegistry) *AliasHandler {
	return &AliasHandler{registry: registry}
}

// List returns every alias and its target.
//
// GET /v1/aliases
func (h *AliasHandler) List(c *gin.Context) {
	catalog, err := h.registry.Catalog(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, api.NewList(catalog.Aliases))
}

// Resolve maps a single alias to its canonical identifier.
//
// GET /v1/aliases/:alias
func (h *AliasHandler) Resolve(c *gin.Context) {
	alias := c.Param("alias")

	id, err := h.registry.ResolveAlias(c.Request.Context(), alias)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.AliasResponse{Alias: alias, Model: id})
}
