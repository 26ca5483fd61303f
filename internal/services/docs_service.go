package services

import (
	"bytes"
	"fmt"
	"time"

	"taxifare/internal/domain"
	"taxifare/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the downloadable fare summary.
type DocsService struct {
	Reports   ReportService
	Estimates EstimateService
	RequestID string
	Now       func() time.Time
}

// GenerateFareReport builds a one page PDF with the table summary and the
// estimate for sel.
func (s DocsService) GenerateFareReport(sel domain.Selection) ([]byte, string, error) {
	est, err := s.Estimates.Estimate(sel, domain.PanelFiltered)
	if err != nil {
		return nil, "", err
	}
	sum := s.Reports.Summary()
	utils.LogEvent(s.RequestID, "docs", "generate_fare_report", fmt.Sprintf("from=%d to=%d", est.Origin, est.Destination))

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return buildFareReportPDF(sum, est, now())
}

func buildFareReportPDF(sum Summary, est Estimate, at time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Taxi fare report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, ChartTitle)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Generated : "+at.UTC().Format("2006-01-02 15:04")+" UTC")
	pdf.Ln(10)

	lines := []string{
		fmt.Sprintf("Trips loaded   : %d", sum.Trips),
		fmt.Sprintf("Mean fare      : %s", utils.FormatDollars(sum.MeanFare)),
		fmt.Sprintf("Mean distance  : %.2f", sum.MeanDistance),
		fmt.Sprintf("Max fare       : %s", utils.FormatDollars(sum.MaxFare)),
		fmt.Sprintf("Max distance   : %.2f", sum.MaxDistance),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Predict fare")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("From (zipcode) : %d", est.Origin))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("To (zipcode)   : %d", est.Destination))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Matching trips : %d", est.Matches))
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 9, "$"+est.Display)
	pdf.Ln(12)

	if est.Sentinel {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "No trip in the loaded data matches this pair; the value shown is the default fare.", "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("FARE_%s_%s.pdf",
		utils.SafeFilenamePart(fmt.Sprint(est.Origin)),
		utils.SafeFilenamePart(fmt.Sprint(est.Destination)))
	return buf.Bytes(), filename, nil
}
