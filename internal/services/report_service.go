package services

import (
	"fmt"
	"io"
	"math"

	"taxifare/internal/domain"
	"taxifare/internal/domain/models"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	ChartTitle    = "Taxi fare distribution"
	ChartXTitle   = "Distance"
	ChartYTitle   = "Fare"
	DefaultWidth  = 700
	DefaultHeight = 400
)

type Point struct {
	Distance float64 `json:"x"`
	Fare     float64 `json:"y"`
}

type Summary struct {
	Trips        int     `json:"trips"`
	MeanFare     float64 `json:"mean_fare"`
	MeanDistance float64 `json:"mean_distance"`
	MaxFare      float64 `json:"max_fare"`
	MaxDistance  float64 `json:"max_distance"`
}

type ReportService struct {
	Table *models.TripTable
}

// Scatter returns one point per row that has both a distance and a fare, in
// load order.
func (s ReportService) Scatter() []Point {
	out := make([]Point, 0, s.Table.Len())
	s.Table.Each(func(t models.Trip) {
		if t.Plottable() {
			out = append(out, Point{Distance: t.TripDistance, Fare: t.FareAmount})
		}
	})
	return out
}

// Summary counts every row; means and maxima skip NULL values.
func (s ReportService) Summary() Summary {
	var sum Summary
	var fare, dist float64
	var nFare, nDist int
	s.Table.Each(func(t models.Trip) {
		sum.Trips++
		if !t.NoFare {
			fare += t.FareAmount
			nFare++
			sum.MaxFare = math.Max(sum.MaxFare, t.FareAmount)
		}
		if !t.NoDistance {
			dist += t.TripDistance
			nDist++
			sum.MaxDistance = math.Max(sum.MaxDistance, t.TripDistance)
		}
	})
	if nFare > 0 {
		sum.MeanFare = fare / float64(nFare)
	}
	if nDist > 0 {
		sum.MeanDistance = dist / float64(nDist)
	}
	return sum
}

// RenderScatterPNG draws distance vs fare, points only.
func (s ReportService) RenderScatterPNG(w io.Writer, width, height int) error {
	pts := s.Scatter()
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.Distance
		ys[i] = p.Fare
	}
	xr, yr := paddedRange(xs), paddedRange(ys)
	style := pointStyle(drawing.ColorFromHex("f97316"))
	if len(pts) == 0 {
		// go-chart needs one series with at least one value; draw empty axes.
		xs, ys = []float64{0}, []float64{0}
		style = pointStyle(drawing.ColorTransparent)
	}

	ch := chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 16, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: ChartXTitle, Range: xr},
		YAxis:      chart.YAxis{Name: ChartYTitle, Range: yr},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "trips",
				Style:   style,
				XValues: xs,
				YValues: ys,
			},
		},
	}
	if err := ch.Render(chart.PNG, w); err != nil {
		return domain.InternalError{Msg: "render scatter plot", Err: fmt.Errorf("%d points: %w", len(pts), err)}
	}
	return nil
}

func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		StrokeColor: drawing.ColorTransparent,
		DotWidth:    3,
		DotColor:    col,
	}
}

// paddedRange never returns a zero-width range; go-chart refuses to draw one.
func paddedRange(vals []float64) *chart.ContinuousRange {
	if len(vals) == 0 {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}
	pad := (hi - lo) * 0.05
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}
