package handlers

import (
	"net/http"

	catalogRepo "glowbook/database/repository/catalog"
	"glowbook/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes read-only directory lookups.
type CatalogHandler struct {
	Catalog catalogRepo.Repository
}

func NewCatalogHandler(catalog catalogRepo.Repository) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

// ListServices returns the full service catalog.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Catalog.ListServices()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetVendor returns one vendor with its professional roster.
func (h *CatalogHandler) GetVendor(c *gin.Context) {
	vendor, err := h.Catalog.FindVendor(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "vendor not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}
