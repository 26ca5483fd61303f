// Package app runs the startup query that everything else reads from.
package app

import (
	"context"
	"time"

	intconfig "taxifare/internal/config"
	"taxifare/internal/domain"
	"taxifare/internal/domain/models"
	"taxifare/internal/repositories"
	"taxifare/internal/utils"

	"go.uber.org/zap"
)

// LoadTable opens the source, runs env.Query and closes the connection before
// returning. env must already be validated; open is never called otherwise.
func LoadTable(ctx context.Context, env intconfig.Env, open intconfig.Opener) (table *models.TripTable, err error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}

	db, err := open(env)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = domain.QueryError{Op: "close", Err: cerr}
		}
	}()

	start := time.Now()
	table, err = repositories.TripsRepository{DB: db}.LoadTrips(ctx, env.Query)
	if err != nil {
		return nil, err
	}
	utils.Logger().Info("trips loaded",
		zap.String("source", env.DataSource),
		zap.Int("rows", table.Len()),
		zap.Duration("took", time.Since(start)))
	return table, nil
}
