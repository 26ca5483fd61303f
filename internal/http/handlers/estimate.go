package handlers

import (
	"net/http"

	"taxifare/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetEstimate recomputes the fare estimate for ?from=&to=.
func (h *Handlers) GetEstimate(c *gin.Context) {
	est, err := h.estimates().Estimate(selectionFromQuery(c), domain.PanelFiltered)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}
