package services

import (
	"strconv"

	"taxifare/internal/domain"
	"taxifare/internal/domain/models"
	"taxifare/internal/utils"
)

// SentinelFare is shown when no trip matches the selection.
const SentinelFare = 99.0

// DefaultSelection seeds the panel inputs.
var DefaultSelection = domain.Selection{Origin: "10003", Destination: "11238"}

type Estimate struct {
	Origin      int64             `json:"from"`
	Destination int64             `json:"to"`
	Matches     int               `json:"matches"`
	Fare        float64           `json:"fare"`
	Display     string            `json:"display"`
	Sentinel    bool              `json:"sentinel"`
	State       domain.PanelState `json:"state"`
}

type EstimateService struct {
	Table *models.TripTable
}

// Estimate averages fare_amount over trips whose pickup and dropoff zips both
// match sel. Rows with a NULL zip or fare are ignored. It reads the table and
// nothing else.
func (s EstimateService) Estimate(sel domain.Selection, state domain.PanelState) (Estimate, error) {
	origin, err := parseZip("from", sel.Origin)
	if err != nil {
		return Estimate{}, err
	}
	dest, err := parseZip("to", sel.Destination)
	if err != nil {
		return Estimate{}, err
	}
	if state == "" {
		state = domain.PanelFiltered
	}

	var sum float64
	matches := 0
	s.Table.Each(func(t models.Trip) {
		if t.NoZip || t.NoFare {
			return
		}
		if t.PickupZip == origin && t.DropoffZip == dest {
			sum += t.FareAmount
			matches++
		}
	})

	est := Estimate{
		Origin:      origin,
		Destination: dest,
		Matches:     matches,
		State:       state,
	}
	if matches == 0 {
		est.Fare = SentinelFare
		est.Sentinel = true
	} else {
		est.Fare = sum / float64(matches)
	}
	est.Display = utils.FormatMoney(est.Fare)
	return est, nil
}

func parseZip(field, raw string) (int64, error) {
	v, err := strconv.ParseInt(utils.TrimOrEmpty(raw), 10, 64)
	if err != nil {
		return 0, domain.ValidationError{Field: field, Msg: "zip code must be a whole number", Err: err}
	}
	return v, nil
}
