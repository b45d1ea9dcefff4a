package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kcet-predictor/catalog"
)

// CatalogHandler serves the selection form and the read-only catalog views.
type CatalogHandler struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func NewCatalogHandler(cat *catalog.Catalog, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
		logger:  logger,
	}
}

// Index renders the predictor form with years (newest first) and institutes
// (sorted by name).
func (h *CatalogHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "college.html", gin.H{
		"years":      h.catalog.Years(),
		"institutes": h.catalog.Institutes(),
	})
}

// Courses returns the sorted distinct course codes present in the data.
func (h *CatalogHandler) Courses(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Courses())
}

// CourseInfo returns the full reference entry for every course in the data.
func (h *CatalogHandler) CourseInfo(c *gin.Context) {
	codes := h.catalog.Courses()
	info := make([]catalog.CourseInfo, 0, len(codes))
	for _, code := range codes {
		info = append(info, catalog.CourseDetails(code))
	}
	c.JSON(http.StatusOK, info)
}

// Health reports liveness and the loaded record count.
func (h *CatalogHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"records": h.catalog.Len(),
	})
}
