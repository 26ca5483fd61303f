package models

import "time"

// Trip is the typed view of one row of samples.nyctaxi.trips.
type Trip struct {
	PickupTime   time.Time `json:"tpep_pickup_datetime"`
	DropoffTime  time.Time `json:"tpep_dropoff_datetime"`
	TripDistance float64   `json:"trip_distance"`
	FareAmount   float64   `json:"fare_amount"`
	PickupZip    int64     `json:"pickup_zip"`
	DropoffZip   int64     `json:"dropoff_zip"`

	// Set when the source value was NULL (or, for zips, not a whole number).
	// A row with NoZip never matches a selection; NoDistance or NoFare keeps
	// it off the plot and out of means.
	NoZip      bool `json:"-"`
	NoDistance bool `json:"-"`
	NoFare     bool `json:"-"`
}

// Plottable reports whether both plot coordinates are present.
func (t Trip) Plottable() bool {
	return !t.NoDistance && !t.NoFare
}

// Column names the report depends on.
const (
	ColPickupZip    = "pickup_zip"
	ColDropoffZip   = "dropoff_zip"
	ColTripDistance = "trip_distance"
	ColFareAmount   = "fare_amount"
	ColPickupTime   = "tpep_pickup_datetime"
	ColDropoffTime  = "tpep_dropoff_datetime"
)

// RequiredColumns must be present in the result set.
var RequiredColumns = []string{ColPickupZip, ColDropoffZip, ColTripDistance, ColFareAmount}

// TripTable is the result of the startup query. It is built once by
// NewTripTable and never changes afterwards; accessors return copies.
type TripTable struct {
	columns []string
	cells   [][]string
	trips   []Trip
}

// NewTripTable takes ownership of the given slices. cells and trips must have
// the same length and each cells row must have len(columns) entries.
func NewTripTable(columns []string, cells [][]string, trips []Trip) *TripTable {
	return &TripTable{columns: columns, cells: cells, trips: trips}
}

func (t *TripTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.trips)
}

func (t *TripTable) Columns() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Trip returns the i-th row by value.
func (t *TripTable) Trip(i int) Trip {
	return t.trips[i]
}

// Row returns a copy of the display cells of the i-th row.
func (t *TripTable) Row(i int) []string {
	out := make([]string, len(t.cells[i]))
	copy(out, t.cells[i])
	return out
}

// Rows returns a copy of the display cells in [offset, offset+limit).
// limit <= 0 means through the end.
func (t *TripTable) Rows(offset, limit int) [][]string {
	n := t.Len()
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	end := n
	if limit > 0 && offset+limit < n {
		end = offset + limit
	}
	out := make([][]string, 0, end-offset)
	for i := offset; i < end; i++ {
		out = append(out, t.Row(i))
	}
	return out
}

// Each calls fn for every trip in load order.
func (t *TripTable) Each(fn func(Trip)) {
	if t == nil {
		return
	}
	for _, tr := range t.trips {
		fn(tr)
	}
}
