package handlers

import (
	"net/http"

	"barbershop/services/catalog"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
}

// GetCatalogHandler handles GET /api/catalog: services, barbers and their
// weekly availability.
func (h *CatalogHandler) GetCatalogHandler(c *gin.Context) {
	providers := h.Catalog.Providers()
	availability := make(map[string]map[string][]string, len(providers))
	for _, p := range providers {
		availability[p.ID] = h.Catalog.Availability(p.ID)
	}
	c.JSON(http.StatusOK, gin.H{
		"services":     h.Catalog.Services(),
		"barbers":      providers,
		"availability": availability,
		"days":         catalog.DayOrder,
	})
}
