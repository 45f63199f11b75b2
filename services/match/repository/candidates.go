package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"

	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/match"
)

type matchRepo struct {
	redisClient *database.RedisClient
}

// NewMatchRepository creates a new match candidate repository
func NewMatchRepository(redisClient *database.RedisClient) match.MatchRepo {
	return &matchRepo{
		redisClient: redisClient,
	}
}

// GetNearbyDrivers queries the shared geo index and attaches each
// candidate's availability in one pipeline round trip.
func (r *matchRepo) GetNearbyDrivers(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]*models.NearbyDriver, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyDriversGeo, lng, lat, radiusKm, "km", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate drivers: %w", err)
	}
	if len(locations) == 0 {
		return []*models.NearbyDriver{}, nil
	}

	pipe := r.redisClient.Pipeline()
	metaCmds := make([]*redis.StringStringMapCmd, len(locations))
	statusCmds := make([]*redis.StringCmd, len(locations))
	for i, loc := range locations {
		metaCmds[i] = pipe.HGetAll(ctx, fmt.Sprintf(constants.KeyDriverLocation, loc.Name))
		statusCmds[i] = pipe.Get(ctx, fmt.Sprintf(constants.KeyDriverStatus, loc.Name))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to load candidate metadata: %w", err)
	}

	drivers := make([]*models.NearbyDriver, 0, len(locations))
	for i, loc := range locations {
		driver := &models.NearbyDriver{
			DriverID:   loc.Name,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
			DistanceKm: loc.Dist,
		}

		if fields, err := metaCmds[i].Result(); err == nil && len(fields) > 0 {
			driver.Heading, _ = strconv.Atoi(fields[constants.FieldHeading])
			driver.Speed, _ = strconv.ParseFloat(fields[constants.FieldSpeed], 64)
			driver.TripID = fields[constants.FieldTripID]
		}

		if status, err := statusCmds[i].Result(); err == nil {
			driver.Status = status
		} else {
			driver.Status = models.DriverStatusOffline
		}

		drivers = append(drivers, driver)
	}

	return drivers, nil
}
