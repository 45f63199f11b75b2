package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/location"
)

func setupMockRepo(t *testing.T) (location.LocationRepo, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	cfg := &models.Config{}
	cfg.Location.LocationTTLSeconds = 3600
	repo := NewLocationRepository(cfg, database.NewRedisClientFromClient(db))
	return repo, mock
}

func geoQuery(radiusKm float64, limit int) *redis.GeoRadiusQuery {
	return &redis.GeoRadiusQuery{
		Radius:    radiusKm,
		Unit:      "km",
		WithCoord: true,
		WithDist:  true,
		Count:     limit,
		Sort:      "ASC",
	}
}

func TestGetNearbyDrivers_EnrichesCandidates(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectGeoRadius(constants.KeyDriversGeo, 106.8, -6.2, geoQuery(5.0, 10)).SetVal([]redis.GeoLocation{
		{Name: "driver-1", Longitude: 106.79, Latitude: -6.19, Dist: 1.2},
	})
	mock.ExpectHGetAll(fmt.Sprintf(constants.KeyDriverLocation, "driver-1")).SetVal(map[string]string{
		constants.FieldHeading: "45",
		constants.FieldSpeed:   "8.3",
		constants.FieldTripID:  "trip-7",
	})
	mock.ExpectGet(fmt.Sprintf(constants.KeyDriverStatus, "driver-1")).SetVal(models.DriverStatusOnline)

	drivers, err := repo.GetNearbyDrivers(context.Background(), -6.2, 106.8, 5.0, 10)
	require.NoError(t, err)
	require.Len(t, drivers, 1)

	assert.Equal(t, "driver-1", drivers[0].DriverID)
	assert.Equal(t, 1.2, drivers[0].DistanceKm)
	assert.Equal(t, 45, drivers[0].Heading)
	assert.Equal(t, 8.3, drivers[0].Speed)
	assert.Equal(t, "trip-7", drivers[0].TripID)
	assert.Equal(t, models.DriverStatusOnline, drivers[0].Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNearbyDrivers_MissingStatusTreatedOffline(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectGeoRadius(constants.KeyDriversGeo, 106.8, -6.2, geoQuery(5.0, 10)).SetVal([]redis.GeoLocation{
		{Name: "driver-1", Longitude: 106.79, Latitude: -6.19, Dist: 1.2},
	})
	mock.ExpectHGetAll(fmt.Sprintf(constants.KeyDriverLocation, "driver-1")).SetVal(map[string]string{})
	mock.ExpectGet(fmt.Sprintf(constants.KeyDriverStatus, "driver-1")).SetErr(redis.Nil)

	drivers, err := repo.GetNearbyDrivers(context.Background(), -6.2, 106.8, 5.0, 10)
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, models.DriverStatusOffline, drivers[0].Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLastPositions_SkipsMissingBaselines(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectHGetAll(fmt.Sprintf(constants.KeyDriverLastPos, "driver-1")).SetVal(map[string]string{
		constants.FieldLatitude:  "-6.19",
		constants.FieldLongitude: "106.79",
		constants.FieldHeading:   "270",
	})
	mock.ExpectHGetAll(fmt.Sprintf(constants.KeyDriverLastPos, "driver-2")).SetVal(map[string]string{})

	positions, err := repo.GetLastPositions(context.Background(), []string{"driver-1", "driver-2"})
	require.NoError(t, err)
	require.Len(t, positions, 1)

	pos := positions["driver-1"]
	require.NotNil(t, pos)
	assert.Equal(t, -6.19, pos.Latitude)
	assert.Equal(t, 106.79, pos.Longitude)
	assert.Equal(t, 270, pos.Heading)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetDriverStatus_OfflineLeavesGeoIndex(t *testing.T) {
	repo, mock := setupMockRepo(t)

	statusKey := fmt.Sprintf(constants.KeyDriverStatus, "driver-1")
	mock.ExpectSet(statusKey, models.DriverStatusOffline, time.Hour).SetVal("OK")
	mock.ExpectZRem(constants.KeyDriversGeo, "driver-1").SetVal(1)
	mock.ExpectDel(fmt.Sprintf(constants.KeyDriverLocation, "driver-1")).SetVal(1)
	mock.ExpectDel(fmt.Sprintf(constants.KeyDriverLastPos, "driver-1")).SetVal(1)

	err := repo.SetDriverStatus(context.Background(), "driver-1", models.DriverStatusOffline)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetDriverStatus_OnlineKeepsGeoIndex(t *testing.T) {
	repo, mock := setupMockRepo(t)

	statusKey := fmt.Sprintf(constants.KeyDriverStatus, "driver-1")
	mock.ExpectSet(statusKey, models.DriverStatusOnline, time.Hour).SetVal("OK")

	err := repo.SetDriverStatus(context.Background(), "driver-1", models.DriverStatusOnline)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDriverStatus_MissingKeyIsOffline(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectGet(fmt.Sprintf(constants.KeyDriverStatus, "driver-1")).SetErr(redis.Nil)

	status, err := repo.GetDriverStatus(context.Background(), "driver-1")
	require.NoError(t, err)
	assert.Equal(t, models.DriverStatusOffline, status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveDriverCount(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectZCard(constants.KeyDriversGeo).SetVal(42)

	count, err := repo.ActiveDriverCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
