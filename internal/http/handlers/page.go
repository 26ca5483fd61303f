package handlers

import (
	"net/http"

	"taxifare/internal/domain"
	"taxifare/internal/services"

	"github.com/gin-gonic/gin"
)

type pageData struct {
	Title     string
	Selection domain.Selection
	Estimate  services.Estimate
	Columns   []string
	Rows      [][]string
	Count     int
	ChartW    int
	ChartH    int
}

// Index renders the whole report: chart, estimate panel and every row.
func (h *Handlers) Index(c *gin.Context) {
	sel := services.DefaultSelection
	est, err := h.estimates().Estimate(sel, domain.PanelDefault)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", pageData{
		Title:     services.ChartTitle,
		Selection: sel,
		Estimate:  est,
		Columns:   h.Table.Columns(),
		Rows:      h.Table.Rows(0, 0),
		Count:     h.Table.Len(),
		ChartW:    services.DefaultWidth,
		ChartH:    services.DefaultHeight,
	})
}
