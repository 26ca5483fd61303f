package handlers

import (
	"strconv"
	"strings"

	"taxifare/internal/domain"
	"taxifare/internal/domain/models"
	"taxifare/internal/services"

	"github.com/gin-gonic/gin"
)

// Handlers serves the report for one loaded table.
type Handlers struct {
	Table *models.TripTable
}

func New(table *models.TripTable) *Handlers {
	return &Handlers{Table: table}
}

func (h *Handlers) estimates() services.EstimateService {
	return services.EstimateService{Table: h.Table}
}

func (h *Handlers) reports() services.ReportService {
	return services.ReportService{Table: h.Table}
}

// selectionFromQuery falls back to the panel defaults for absent params.
func selectionFromQuery(c *gin.Context) domain.Selection {
	return domain.Selection{
		Origin:      c.DefaultQuery("from", services.DefaultSelection.Origin),
		Destination: c.DefaultQuery("to", services.DefaultSelection.Destination),
	}
}

// queryInt reads a non-negative int param, clamped to max when max > 0.
func queryInt(c *gin.Context, key string, def, max int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, domain.ValidationError{Field: key, Msg: "must be a non-negative integer", Err: err}
	}
	if max > 0 && v > max {
		v = max
	}
	return v, nil
}
