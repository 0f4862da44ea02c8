package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/agent-models/internal/core/ports"
)

type CatalogHandler struct {
	registry ports.ModelRegistry
}

func NewCatalogHandler(registry ports.ModelRegistry) *CatalogHandler {
	return &CatalogHandler{registry: registry}
}

// Get returns every table in one document.
//
// GET /v1/catalog
func (h *CatalogHandler) Get(c *gin.Context) {
	catalog, err := h.registry.Catalog(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, catalog)
}
