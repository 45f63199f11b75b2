package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/piresc/dispatch/services/location/mocks"
)

func newContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUpdateLocation_AcceptsOwnDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockLocationUC(ctrl)
	h := NewLocationHandler(uc)

	uc.EXPECT().IngestUpdate(gomock.Any(), "driver-1", gomock.Any()).Return(nil)

	c, rec := newContext(t, http.MethodPost, "/drivers/driver-1/location", `{"lat": -6.2, "lng": 106.8, "heading": 90}`)
	c.SetParamNames("id")
	c.SetParamValues("driver-1")
	c.Set("user_id", "driver-1")
	c.Set("user_role", "driver")

	assert.NoError(t, h.UpdateLocation(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestUpdateLocation_RejectsOtherDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockLocationUC(ctrl)
	h := NewLocationHandler(uc)

	c, rec := newContext(t, http.MethodPost, "/drivers/driver-2/location", `{"lat": -6.2, "lng": 106.8}`)
	c.SetParamNames("id")
	c.SetParamValues("driver-2")
	c.Set("user_id", "driver-1")
	c.Set("user_role", "driver")

	assert.NoError(t, h.UpdateLocation(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateStatus_RejectsOtherDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockLocationUC(ctrl)
	h := NewLocationHandler(uc)

	c, rec := newContext(t, http.MethodPut, "/drivers/driver-2/status", `{"status": "offline"}`)
	c.SetParamNames("id")
	c.SetParamValues("driver-2")
	c.Set("user_id", "driver-1")
	c.Set("user_role", "driver")

	assert.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateLocation_AdminMayWriteAnyDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockLocationUC(ctrl)
	h := NewLocationHandler(uc)

	uc.EXPECT().IngestUpdate(gomock.Any(), "driver-2", gomock.Any()).Return(nil)

	c, rec := newContext(t, http.MethodPost, "/drivers/driver-2/location", `{"lat": -6.2, "lng": 106.8}`)
	c.SetParamNames("id")
	c.SetParamValues("driver-2")
	c.Set("user_id", "ops-1")
	c.Set("user_role", "admin")

	assert.NoError(t, h.UpdateLocation(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestUpdateLocation_BatchBodyUsesIngestBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockLocationUC(ctrl)
	h := NewLocationHandler(uc)

	uc.EXPECT().IngestBatch(gomock.Any(), "driver-1", gomock.Len(2)).Return(nil)

	body := `{"locations": [{"lat": -6.2, "lng": 106.8}, {"lat": -6.21, "lng": 106.81}]}`
	c, rec := newContext(t, http.MethodPost, "/drivers/driver-1/location", body)
	c.SetParamNames("id")
	c.SetParamValues("driver-1")
	c.Set("user_id", "driver-1")
	c.Set("user_role", "driver")

	assert.NoError(t, h.UpdateLocation(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestGetNearbyDrivers_RequiresCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockLocationUC(ctrl)
	h := NewLocationHandler(uc)

	c, rec := newContext(t, http.MethodGet, "/drivers/nearby", "")

	assert.NoError(t, h.GetNearbyDrivers(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
