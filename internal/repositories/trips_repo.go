package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"taxifare/internal/domain"
	"taxifare/internal/domain/models"
	"taxifare/internal/utils"
)

type TripsRepository struct {
	DB *sql.DB
}

// LoadTrips runs query once and materializes the whole result set.
// Rows are closed on every return path.
func (r TripsRepository) LoadTrips(ctx context.Context, query string) (*models.TripTable, error) {
	if r.DB == nil {
		return nil, domain.InternalError{Msg: "trips repository has no database"}
	}

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.QueryError{Op: "execute", Err: err}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, domain.QueryError{Op: "columns", Err: err}
	}
	idx, err := indexColumns(columns)
	if err != nil {
		return nil, err
	}

	cells := [][]string{}
	trips := []models.Trip{}
	raw := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range raw {
		dest[i] = &raw[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, domain.QueryError{Op: "scan", Err: err}
		}
		row := make([]string, len(columns))
		for i, v := range raw {
			row[i] = formatCell(v)
		}
		trip, err := idx.trip(raw)
		if err != nil {
			return nil, domain.SchemaError{Msg: fmt.Sprintf("row %d: %v", len(trips)+1, err)}
		}
		cells = append(cells, row)
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.QueryError{Op: "fetch", Err: err}
	}

	return models.NewTripTable(columns, cells, trips), nil
}

type columnIndex struct {
	pickupZip, dropoffZip, distance, fare int
	pickupTime, dropoffTime               int
}

func indexColumns(columns []string) (columnIndex, error) {
	pos := map[string]int{}
	for i, c := range columns {
		pos[strings.ToLower(strings.TrimSpace(c))] = i
	}
	missing := []string{}
	for _, c := range models.RequiredColumns {
		if _, ok := pos[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return columnIndex{}, domain.SchemaError{Missing: missing}
	}
	optional := func(name string) int {
		if i, ok := pos[name]; ok {
			return i
		}
		return -1
	}
	return columnIndex{
		pickupZip:   pos[models.ColPickupZip],
		dropoffZip:  pos[models.ColDropoffZip],
		distance:    pos[models.ColTripDistance],
		fare:        pos[models.ColFareAmount],
		pickupTime:  optional(models.ColPickupTime),
		dropoffTime: optional(models.ColDropoffTime),
	}, nil
}

func (ix columnIndex) trip(raw []any) (models.Trip, error) {
	var t models.Trip
	pickup, okPickup, err := toZip(raw[ix.pickupZip])
	if err != nil {
		return t, fmt.Errorf("%s: %w", models.ColPickupZip, err)
	}
	dropoff, okDropoff, err := toZip(raw[ix.dropoffZip])
	if err != nil {
		return t, fmt.Errorf("%s: %w", models.ColDropoffZip, err)
	}
	t.PickupZip, t.DropoffZip = pickup, dropoff
	t.NoZip = !okPickup || !okDropoff

	var ok bool
	if t.TripDistance, ok, err = toFloat64(raw[ix.distance]); err != nil {
		return t, fmt.Errorf("%s: %w", models.ColTripDistance, err)
	}
	t.NoDistance = !ok
	if t.FareAmount, ok, err = toFloat64(raw[ix.fare]); err != nil {
		return t, fmt.Errorf("%s: %w", models.ColFareAmount, err)
	}
	t.NoFare = !ok
	if ix.pickupTime >= 0 {
		t.PickupTime = toTime(raw[ix.pickupTime])
	}
	if ix.dropoffTime >= 0 {
		t.DropoffTime = toTime(raw[ix.dropoffTime])
	}
	return t, nil
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	case string:
		return x
	case time.Time:
		return utils.FormatDateTime(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprint(x)
	}
}

// toZip returns ok=false for NULL and for fractional values, which can never
// equal a whole-number zip typed into the panel.
func toZip(v any) (int64, bool, error) {
	switch x := v.(type) {
	case int64:
		return x, true, nil
	case int32:
		return int64(x), true, nil
	case int16:
		return int64(x), true, nil
	case int8:
		return int64(x), true, nil
	case int:
		return int64(x), true, nil
	case uint32:
		return int64(x), true, nil
	case float64:
		return wholeZip(x)
	case float32:
		return wholeZip(float64(x))
	case []byte:
		return parseZip(string(x))
	case string:
		return parseZip(x)
	case nil:
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("unsupported type %T", v)
	}
}

func parseZip(s string) (int64, bool, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, true, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	return wholeZip(f)
}

func wholeZip(f float64) (int64, bool, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false, nil
	}
	return int64(f), true, nil
}

// toFloat64 returns ok=false for NULL and NaN.
func toFloat64(v any) (float64, bool, error) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int64:
		f = float64(x)
	case int32:
		f = float64(x)
	case int:
		f = float64(x)
	case []byte:
		p, err := strconv.ParseFloat(strings.TrimSpace(string(x)), 64)
		if err != nil {
			return 0, false, err
		}
		f = p
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false, err
		}
		f = p
	case nil:
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("unsupported type %T", v)
	}
	if math.IsNaN(f) {
		return 0, false, nil
	}
	return f, true, nil
}

// toTime is best effort; timestamps are display-only.
func toTime(v any) time.Time {
	switch x := v.(type) {
	case time.Time:
		return x
	case []byte:
		t, _ := utils.ParseDateTime(string(x))
		return t
	case string:
		t, _ := utils.ParseDateTime(x)
		return t
	}
	return time.Time{}
}
