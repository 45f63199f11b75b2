package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/location/mocks"
	"github.com/stretchr/testify/assert"
)

func testConfig() *models.Config {
	return &models.Config{
		Location: models.LocationConfig{
			FlushIntervalMs:     100,
			FlushThreshold:      500,
			MaxBufferSize:       10000,
			DeltaDistanceMeters: 10.0,
			DeltaHeadingDegrees: 15.0,
			LocationTTLSeconds:  3600,
		},
		Match: models.MatchConfig{
			SearchRadiusKm: 5.0,
			SearchLimit:    10,
		},
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestIngestUpdate_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewLocationUC(testConfig(), mocks.NewMockLocationRepo(ctrl), mocks.NewMockLocationGW(ctrl))

	tests := []struct {
		name    string
		driver  string
		req     *models.LocationUpdateRequest
		wantErr string
	}{
		{
			name:    "missing driver id",
			driver:  "",
			req:     &models.LocationUpdateRequest{Latitude: floatPtr(-6.2), Longitude: floatPtr(106.8)},
			wantErr: "driver ID is required",
		},
		{
			name:    "missing coordinates",
			driver:  "driver-1",
			req:     &models.LocationUpdateRequest{},
			wantErr: "latitude and longitude are required",
		},
		{
			name:    "latitude out of range",
			driver:  "driver-1",
			req:     &models.LocationUpdateRequest{Latitude: floatPtr(95), Longitude: floatPtr(106.8)},
			wantErr: "latitude out of range",
		},
		{
			name:    "longitude out of range",
			driver:  "driver-1",
			req:     &models.LocationUpdateRequest{Latitude: floatPtr(-6.2), Longitude: floatPtr(190)},
			wantErr: "longitude out of range",
		},
		{
			name:    "heading out of range",
			driver:  "driver-1",
			req:     &models.LocationUpdateRequest{Latitude: floatPtr(-6.2), Longitude: floatPtr(106.8), Heading: 360},
			wantErr: "heading out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.IngestUpdate(context.Background(), tt.driver, tt.req)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIngestUpdate_AcceptedIntoBuffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewLocationUC(testConfig(), mocks.NewMockLocationRepo(ctrl), mocks.NewMockLocationGW(ctrl))

	err := uc.IngestUpdate(context.Background(), "driver-1", &models.LocationUpdateRequest{
		Latitude:  floatPtr(-6.2),
		Longitude: floatPtr(106.8),
		Heading:   90,
		Speed:     12.5,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, uc.BufferStats().CurrentSize)
}

func TestFlushBatch_FiltersInsignificantMoves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW).(*locationUC)

	// driver-1 moved ~1m (insignificant), driver-2 has no baseline,
	// driver-3 only turned 20 degrees in place (significant by heading)
	updates := []*models.DriverLocation{
		{DriverID: "driver-1", Latitude: -6.200009, Longitude: 106.800000, Heading: 90, UpdatedAt: time.Now()},
		{DriverID: "driver-2", Latitude: -6.300000, Longitude: 106.900000, Heading: 0, UpdatedAt: time.Now()},
		{DriverID: "driver-3", Latitude: -6.400000, Longitude: 106.700000, Heading: 30, UpdatedAt: time.Now()},
	}

	mockRepo.EXPECT().
		GetLastPositions(gomock.Any(), gomock.Any()).
		Return(map[string]*models.LastPosition{
			"driver-1": {Latitude: -6.200000, Longitude: 106.800000, Heading: 90},
			"driver-3": {Latitude: -6.400000, Longitude: 106.700000, Heading: 10},
		}, nil)

	mockRepo.EXPECT().
		ApplyUpdates(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, accepted []*models.DriverLocation) error {
			ids := make([]string, len(accepted))
			for i, u := range accepted {
				ids[i] = u.DriverID
			}
			assert.ElementsMatch(t, []string{"driver-2", "driver-3"}, ids)
			return nil
		})

	mockGW.EXPECT().
		PublishLocationHistory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, events []models.LocationHistoryEvent) error {
			assert.Len(t, events, 2)
			return nil
		})

	err := uc.flushBatch(context.Background(), updates)
	assert.NoError(t, err)
}

func TestFlushBatch_FailOpenOnBaselineError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW).(*locationUC)

	updates := []*models.DriverLocation{
		{DriverID: "driver-1", Latitude: -6.2, Longitude: 106.8, UpdatedAt: time.Now()},
	}

	mockRepo.EXPECT().
		GetLastPositions(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))

	// Baseline failure must not drop the batch
	mockRepo.EXPECT().ApplyUpdates(gomock.Any(), updates).Return(nil)
	mockGW.EXPECT().PublishLocationHistory(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.flushBatch(context.Background(), updates)
	assert.NoError(t, err)
}

func TestFlushBatch_HistoryFailureIsBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW).(*locationUC)

	updates := []*models.DriverLocation{
		{DriverID: "driver-1", Latitude: -6.2, Longitude: 106.8, UpdatedAt: time.Now()},
	}

	mockRepo.EXPECT().GetLastPositions(gomock.Any(), gomock.Any()).Return(map[string]*models.LastPosition{}, nil)
	mockRepo.EXPECT().ApplyUpdates(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLocationHistory(gomock.Any(), gomock.Any()).Return(errors.New("nsqd down"))

	err := uc.flushBatch(context.Background(), updates)
	assert.NoError(t, err, "history publish failure must not fail the flush")
}

func TestSetDriverStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mocks.NewMockLocationGW(ctrl))

	mockRepo.EXPECT().SetDriverStatus(gomock.Any(), "driver-1", models.DriverStatusOffline).Return(nil)

	err := uc.SetDriverStatus(context.Background(), "driver-1", models.DriverStatusOffline)
	assert.NoError(t, err)

	err = uc.SetDriverStatus(context.Background(), "driver-1", "parked")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid driver status")
}

func TestGetNearbyDrivers_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mocks.NewMockLocationGW(ctrl))

	mockRepo.EXPECT().
		GetNearbyDrivers(gomock.Any(), -6.2, 106.8, 5.0, 10).
		Return([]*models.NearbyDriver{}, nil)

	// Zero radius and limit fall back to configured defaults
	_, err := uc.GetNearbyDrivers(context.Background(), -6.2, 106.8, 0, 0)
	assert.NoError(t, err)
}
