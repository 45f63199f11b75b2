package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/match"
	"github.com/piresc/dispatch/services/match/mocks"
	"github.com/stretchr/testify/assert"
)

func testConfig() *models.Config {
	return &models.Config{
		Match: models.MatchConfig{
			OfferTTLMs:     15000,
			SearchRadiusKm: 5.0,
			SearchLimit:    10,
		},
	}
}

func newTestUC(t *testing.T, now time.Time) (*matchUC, *mocks.MockMatchRepo, *mocks.MockMatchGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)

	uc := NewMatchUC(testConfig(), mockRepo, mockGW).(*matchUC)
	uc.now = func() time.Time { return now }

	return uc, mockRepo, mockGW
}

func TestProcessOffer_NotifiesWithRemainingBudget(t *testing.T) {
	now := time.Now()
	uc, mockRepo, mockGW := newTestUC(t, now)

	// Offer created 2050ms ago: 12950ms of budget remains
	event := &models.TripOfferEvent{
		TripID:    "trip-1",
		PickupLat: -6.2,
		PickupLng: 106.8,
		Fare:      42000,
		CreatedAt: now.Add(-2050 * time.Millisecond),
	}

	mockRepo.EXPECT().
		GetNearbyDrivers(gomock.Any(), -6.2, 106.8, 5.0, 10).
		Return([]*models.NearbyDriver{
			{DriverID: "driver-1", DistanceKm: 0.8, Status: models.DriverStatusOnline},
		}, nil)

	mockGW.EXPECT().
		NotifyDriver("driver-1", gomock.Any()).
		DoAndReturn(func(driverID string, offer *models.TripOfferNotification) bool {
			assert.Equal(t, "trip-1", offer.TripID)
			assert.Equal(t, int64(12950), offer.TimeoutMs)
			return true
		})

	outcome, err := uc.ProcessOffer(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, match.OutcomeNotified, outcome)
	assert.Equal(t, int64(1), uc.Stats().Matched)
}

func TestProcessOffer_ExpiredIsDroppedWithoutSearch(t *testing.T) {
	now := time.Now()
	uc, _, _ := newTestUC(t, now)

	// Offer is 20s old against a 15s budget; no candidate search happens
	event := &models.TripOfferEvent{
		TripID:    "trip-1",
		CreatedAt: now.Add(-20 * time.Second),
	}

	outcome, err := uc.ProcessOffer(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, match.OutcomeExpired, outcome)

	stats := uc.Stats()
	assert.Equal(t, int64(1), stats.Expired)
	assert.Equal(t, int64(0), stats.Matched)
}

func TestProcessOffer_SkipsUnavailableDrivers(t *testing.T) {
	now := time.Now()
	uc, mockRepo, mockGW := newTestUC(t, now)

	event := &models.TripOfferEvent{
		TripID:    "trip-1",
		PickupLat: -6.2,
		PickupLng: 106.8,
		CreatedAt: now,
	}

	mockRepo.EXPECT().
		GetNearbyDrivers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.NearbyDriver{
			{DriverID: "driver-offline", DistanceKm: 0.3, Status: models.DriverStatusOffline},
			{DriverID: "driver-busy", DistanceKm: 0.5, Status: models.DriverStatusOnline, TripID: "trip-9"},
			{DriverID: "driver-free", DistanceKm: 0.9, Status: models.DriverStatusOnline},
		}, nil)

	mockGW.EXPECT().NotifyDriver("driver-free", gomock.Any()).Return(true)

	outcome, err := uc.ProcessOffer(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, match.OutcomeNotified, outcome)
}

func TestProcessOffer_NoDriversIsTerminal(t *testing.T) {
	now := time.Now()
	uc, mockRepo, _ := newTestUC(t, now)

	event := &models.TripOfferEvent{
		TripID:    "trip-1",
		CreatedAt: now,
	}

	mockRepo.EXPECT().
		GetNearbyDrivers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.NearbyDriver{}, nil)

	outcome, err := uc.ProcessOffer(context.Background(), event)

	// No drivers is not an error: the offer is consumed, not retried
	assert.NoError(t, err)
	assert.Equal(t, match.OutcomeNoDrivers, outcome)
	assert.Equal(t, int64(1), uc.Stats().Empty)
}

func TestProcessOffer_NoLiveSessionCountsAsEmpty(t *testing.T) {
	now := time.Now()
	uc, mockRepo, mockGW := newTestUC(t, now)

	event := &models.TripOfferEvent{
		TripID:    "trip-1",
		CreatedAt: now,
	}

	mockRepo.EXPECT().
		GetNearbyDrivers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.NearbyDriver{
			{DriverID: "driver-1", Status: models.DriverStatusOnline},
		}, nil)

	mockGW.EXPECT().NotifyDriver("driver-1", gomock.Any()).Return(false)

	outcome, err := uc.ProcessOffer(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, match.OutcomeNoDrivers, outcome)
}

func TestProcessOffer_InfraErrorRequestsRedelivery(t *testing.T) {
	now := time.Now()
	uc, mockRepo, _ := newTestUC(t, now)

	event := &models.TripOfferEvent{
		TripID:    "trip-1",
		CreatedAt: now,
	}

	mockRepo.EXPECT().
		GetNearbyDrivers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis unavailable"))

	_, err := uc.ProcessOffer(context.Background(), event)

	assert.Error(t, err)
	assert.Equal(t, int64(1), uc.Stats().Errors)
}
