package handlers

import (
	"bytes"
	"net/http"

	"taxifare/internal/services"

	"github.com/gin-gonic/gin"
)

const maxChartSide = 2000

// GetChartPNG serves the distance vs fare scatter plot.
func (h *Handlers) GetChartPNG(c *gin.Context) {
	w, err := queryInt(c, "w", services.DefaultWidth, maxChartSide)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	ht, err := queryInt(c, "h", services.DefaultHeight, maxChartSide)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.reports().RenderScatterPNG(&buf, w, ht); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
