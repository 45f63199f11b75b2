package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/location"
)

type locationRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new driver location repository
func NewLocationRepository(cfg *models.Config, redisClient *database.RedisClient) location.LocationRepo {
	return &locationRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

func (r *locationRepo) locationTTL() time.Duration {
	return time.Duration(r.cfg.Location.LocationTTLSeconds) * time.Second
}

// ApplyUpdates writes a flushed batch to Redis in a single pipeline:
// geo index member, metadata hash with TTL and the delta baseline.
func (r *locationRepo) ApplyUpdates(ctx context.Context, updates []*models.DriverLocation) error {
	if len(updates) == 0 {
		return nil
	}

	ttl := r.locationTTL()
	pipe := r.redisClient.Pipeline()

	for _, update := range updates {
		locationKey := fmt.Sprintf(constants.KeyDriverLocation, update.DriverID)
		lastPosKey := fmt.Sprintf(constants.KeyDriverLastPos, update.DriverID)

		pipe.GeoAdd(ctx, constants.KeyDriversGeo, &redis.GeoLocation{
			Longitude: update.Longitude,
			Latitude:  update.Latitude,
			Name:      update.DriverID,
		})

		pipe.HSet(ctx, locationKey, map[string]interface{}{
			constants.FieldLatitude:  strconv.FormatFloat(update.Latitude, 'f', -1, 64),
			constants.FieldLongitude: strconv.FormatFloat(update.Longitude, 'f', -1, 64),
			constants.FieldHeading:   strconv.Itoa(update.Heading),
			constants.FieldSpeed:     strconv.FormatFloat(update.Speed, 'f', -1, 64),
			constants.FieldAccuracy:  strconv.FormatFloat(update.Accuracy, 'f', -1, 64),
			constants.FieldTripID:    update.TripID,
			constants.FieldGeohash:   utils.EncodeGeohash(update.Latitude, update.Longitude),
			constants.FieldUpdatedAt: strconv.FormatInt(update.UpdatedAt.UnixMilli(), 10),
		})
		pipe.Expire(ctx, locationKey, ttl)

		pipe.HSet(ctx, lastPosKey, map[string]interface{}{
			constants.FieldLatitude:  strconv.FormatFloat(update.Latitude, 'f', -1, 64),
			constants.FieldLongitude: strconv.FormatFloat(update.Longitude, 'f', -1, 64),
			constants.FieldHeading:   strconv.Itoa(update.Heading),
		})
		pipe.Expire(ctx, lastPosKey, ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to apply location updates: %w", err)
	}

	return nil
}

// GetLastPositions fetches delta baselines for the given drivers in one
// pipeline round trip.
func (r *locationRepo) GetLastPositions(ctx context.Context, driverIDs []string) (map[string]*models.LastPosition, error) {
	if len(driverIDs) == 0 {
		return map[string]*models.LastPosition{}, nil
	}

	pipe := r.redisClient.Pipeline()
	cmds := make(map[string]*redis.StringStringMapCmd, len(driverIDs))
	for _, driverID := range driverIDs {
		cmds[driverID] = pipe.HGetAll(ctx, fmt.Sprintf(constants.KeyDriverLastPos, driverID))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get last positions: %w", err)
	}

	result := make(map[string]*models.LastPosition, len(driverIDs))
	for driverID, cmd := range cmds {
		fields, err := cmd.Result()
		if err != nil || len(fields) == 0 {
			continue
		}

		lat, latErr := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
		lng, lngErr := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
		if latErr != nil || lngErr != nil {
			continue
		}

		heading, _ := strconv.Atoi(fields[constants.FieldHeading])
		result[driverID] = &models.LastPosition{
			Latitude:  lat,
			Longitude: lng,
			Heading:   heading,
		}
	}

	return result, nil
}

// GetDriverLocation returns the live position record for a driver
func (r *locationRepo) GetDriverLocation(ctx context.Context, driverID string) (*models.DriverLocation, error) {
	locationKey := fmt.Sprintf(constants.KeyDriverLocation, driverID)

	fields, err := r.redisClient.HGetAll(ctx, locationKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver location: %w", err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no location found for driver %s", driverID)
	}

	return parseDriverLocation(driverID, fields)
}

func parseDriverLocation(driverID string, fields map[string]string) (*models.DriverLocation, error) {
	lat, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude for driver %s: %w", driverID, err)
	}

	lng, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude for driver %s: %w", driverID, err)
	}

	heading, _ := strconv.Atoi(fields[constants.FieldHeading])
	speed, _ := strconv.ParseFloat(fields[constants.FieldSpeed], 64)
	accuracy, _ := strconv.ParseFloat(fields[constants.FieldAccuracy], 64)

	loc := &models.DriverLocation{
		DriverID:  driverID,
		Latitude:  lat,
		Longitude: lng,
		Heading:   heading,
		Speed:     speed,
		Accuracy:  accuracy,
		TripID:    fields[constants.FieldTripID],
	}

	if ms, err := strconv.ParseInt(fields[constants.FieldUpdatedAt], 10, 64); err == nil {
		loc.UpdatedAt = time.UnixMilli(ms)
	}

	return loc, nil
}

// GetNearbyDrivers queries the geo index and enriches candidates with
// their metadata and availability in one pipeline.
func (r *locationRepo) GetNearbyDrivers(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]*models.NearbyDriver, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyDriversGeo, lng, lat, radiusKm, "km", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby drivers: %w", err)
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
		return nil, fmt.Errorf("failed to enrich nearby drivers: %w", err)
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
			// No status key means the session expired; treat as offline
			driver.Status = models.DriverStatusOffline
		}

		drivers = append(drivers, driver)
	}

	return drivers, nil
}

// SetDriverStatus updates availability. Offline drivers leave the geo
// index immediately so they stop matching.
func (r *locationRepo) SetDriverStatus(ctx context.Context, driverID, status string) error {
	statusKey := fmt.Sprintf(constants.KeyDriverStatus, driverID)

	if err := r.redisClient.Set(ctx, statusKey, status, r.locationTTL()); err != nil {
		return fmt.Errorf("failed to set driver status: %w", err)
	}

	if status == models.DriverStatusOffline {
		pipe := r.redisClient.Pipeline()
		pipe.ZRem(ctx, constants.KeyDriversGeo, driverID)
		pipe.Del(ctx, fmt.Sprintf(constants.KeyDriverLocation, driverID))
		pipe.Del(ctx, fmt.Sprintf(constants.KeyDriverLastPos, driverID))
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("failed to remove offline driver: %w", err)
		}
	}

	return nil
}

// ActiveDriverCount returns the geo index cardinality
func (r *locationRepo) ActiveDriverCount(ctx context.Context) (int64, error) {
	count, err := r.redisClient.ZCard(ctx, constants.KeyDriversGeo)
	if err != nil {
		return 0, fmt.Errorf("failed to count active drivers: %w", err)
	}
	return count, nil
}

// GetDriverStatus returns the stored availability for a driver
func (r *locationRepo) GetDriverStatus(ctx context.Context, driverID string) (string, error) {
	status, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyDriverStatus, driverID))
	if err == redis.Nil {
		return models.DriverStatusOffline, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get driver status: %w", err)
	}
	return status, nil
}
