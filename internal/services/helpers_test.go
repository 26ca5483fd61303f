package services

import (
	"strconv"

	"taxifare/internal/domain/models"
)

func newTable(trips ...models.Trip) *models.TripTable {
	cols := []string{"pickup_zip", "dropoff_zip", "trip_distance", "fare_amount"}
	cells := make([][]string, 0, len(trips))
	for _, t := range trips {
		cells = append(cells, []string{
			strconv.FormatInt(t.PickupZip, 10),
			strconv.FormatInt(t.DropoffZip, 10),
			strconv.FormatFloat(t.TripDistance, 'f', -1, 64),
			strconv.FormatFloat(t.FareAmount, 'f', -1, 64),
		})
	}
	return models.NewTripTable(cols, cells, trips)
}

func trip(from, to int64, dist, fare float64) models.Trip {
	return models.Trip{PickupZip: from, DropoffZip: to, TripDistance: dist, FareAmount: fare}
}
