package handlers

import (
	"net/http"

	"taxifare/internal/domain"

	"github.com/gin-gonic/gin"
)

const maxPageSize = 5000

type tripsResponse struct {
	Columns []string          `json:"columns"`
	Rows    [][]string        `json:"rows"`
	Count   int               `json:"count"`
	Page    domain.Pagination `json:"page"`
}

// GetTrips returns the loaded table; without limit it returns every row.
func (h *Handlers) GetTrips(c *gin.Context) {
	offset, err := queryInt(c, "offset", 0, 0)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	limit, err := queryInt(c, "limit", 0, maxPageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	rows := h.Table.Rows(offset, limit)
	c.JSON(http.StatusOK, tripsResponse{
		Columns: h.Table.Columns(),
		Rows:    rows,
		Count:   len(rows),
		Page:    domain.Pagination{Offset: offset, Limit: limit, Total: h.Table.Len()},
	})
}

// GetScatter returns the plotted points as JSON.
func (h *Handlers) GetScatter(c *gin.Context) {
	pts := h.reports().Scatter()
	c.JSON(http.StatusOK, gin.H{"x": "trip_distance", "y": "fare_amount", "points": pts, "count": len(pts)})
}
