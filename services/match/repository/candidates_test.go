package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/match"
)

func setupMockRepo(t *testing.T) (match.MatchRepo, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	repo := NewMatchRepository(database.NewRedisClientFromClient(db))
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
		{Name: "driver-2", Longitude: 106.82, Latitude: -6.22, Dist: 3.4},
	})
	mock.ExpectHGetAll(fmt.Sprintf(constants.KeyDriverLocation, "driver-1")).SetVal(map[string]string{
		constants.FieldHeading: "90",
		constants.FieldSpeed:   "12.5",
		constants.FieldTripID:  "",
	})
	mock.ExpectGet(fmt.Sprintf(constants.KeyDriverStatus, "driver-1")).SetVal(models.DriverStatusOnline)
	mock.ExpectHGetAll(fmt.Sprintf(constants.KeyDriverLocation, "driver-2")).SetVal(map[string]string{
		constants.FieldHeading: "180",
		constants.FieldSpeed:   "0",
		constants.FieldTripID:  "trip-9",
	})
	mock.ExpectGet(fmt.Sprintf(constants.KeyDriverStatus, "driver-2")).SetVal(models.DriverStatusOnTrip)

	drivers, err := repo.GetNearbyDrivers(context.Background(), -6.2, 106.8, 5.0, 10)
	require.NoError(t, err)
	require.Len(t, drivers, 2)

	assert.Equal(t, "driver-1", drivers[0].DriverID)
	assert.Equal(t, 1.2, drivers[0].DistanceKm)
	assert.Equal(t, 90, drivers[0].Heading)
	assert.Equal(t, 12.5, drivers[0].Speed)
	assert.Equal(t, models.DriverStatusOnline, drivers[0].Status)

	assert.Equal(t, "driver-2", drivers[1].DriverID)
	assert.Equal(t, "trip-9", drivers[1].TripID)
	assert.Equal(t, models.DriverStatusOnTrip, drivers[1].Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNearbyDrivers_MissingStatusTreatedOffline(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectGeoRadius(constants.KeyDriversGeo, 106.8, -6.2, geoQuery(5.0, 10)).SetVal([]redis.GeoLocation{
		{Name: "driver-1", Longitude: 106.79, Latitude: -6.19, Dist: 1.2},
	})
	mock.ExpectHGetAll(fmt.Sprintf(constants.KeyDriverLocation, "driver-1")).SetVal(map[string]string{
		constants.FieldHeading: "90",
	})
	mock.ExpectGet(fmt.Sprintf(constants.KeyDriverStatus, "driver-1")).SetErr(redis.Nil)

	drivers, err := repo.GetNearbyDrivers(context.Background(), -6.2, 106.8, 5.0, 10)
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, models.DriverStatusOffline, drivers[0].Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNearbyDrivers_EmptyRadius(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectGeoRadius(constants.KeyDriversGeo, 106.8, -6.2, geoQuery(5.0, 10)).SetVal([]redis.GeoLocation{})

	drivers, err := repo.GetNearbyDrivers(context.Background(), -6.2, 106.8, 5.0, 10)
	require.NoError(t, err)
	assert.Empty(t, drivers)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNearbyDrivers_RadiusQueryError(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectGeoRadius(constants.KeyDriversGeo, 106.8, -6.2, geoQuery(5.0, 10)).SetErr(fmt.Errorf("connection refused"))

	drivers, err := repo.GetNearbyDrivers(context.Background(), -6.2, 106.8, 5.0, 10)
	assert.Error(t, err)
	assert.Nil(t, drivers)

	assert.NoError(t, mock.ExpectationsWereMet())
}
