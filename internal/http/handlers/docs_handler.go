package handlers

import (
	"fmt"
	"net/http"

	"taxifare/internal/http/middleware"
	"taxifare/internal/services"

	"github.com/gin-gonic/gin"
)

// GetFareReportPDF renders the summary PDF for ?from=&to=.
func (h *Handlers) GetFareReportPDF(c *gin.Context) {
	svc := services.DocsService{
		Reports:   h.reports(),
		Estimates: h.estimates(),
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateFareReport(selectionFromQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
