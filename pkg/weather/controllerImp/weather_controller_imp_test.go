package controllerImp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ferti/pkg/weather"
)

type fakeLookup struct {
	calls    int
	lat, lon *float64
}

func (f *fakeLookup) Lookup(_ context.Context, lat, lon *float64) weather.Reading {
	f.calls++
	f.lat, f.lon = lat, lon
	return weather.Reading{Temperature: 31, Humidity: 72, Moisture: 71, Source: weather.SourceOpenMeteo}
}

func get(t *testing.T, f *fakeLookup, target string) map[string]any {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, New(f).Current(e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCurrent_WithCoordinates(t *testing.T) {
	f := &fakeLookup{}
	out := get(t, f, "/get_weather?lat=12.97&lon=77.59")
	require.NotNil(t, f.lat)
	assert.Equal(t, 12.97, *f.lat)
	assert.Equal(t, 77.59, *f.lon)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, 31.0, out["temperature"])
	assert.Equal(t, 71.0, out["moisture"])
	assert.Equal(t, "open-meteo", out["source"])
}

func TestCurrent_MissingCoordinatesGeolocate(t *testing.T) {
	for _, target := range []string{"/get_weather", "/get_weather?lat=10", "/get_weather?lon=10&lat="} {
		f := &fakeLookup{}
		get(t, f, target)
		assert.Equal(t, 1, f.calls, target)
		assert.Nil(t, f.lat, target)
	}
}

func TestCurrent_UnparseableCoordinates(t *testing.T) {
	f := &fakeLookup{}
	out := get(t, f, "/get_weather?lat=north&lon=77")
	assert.Zero(t, f.calls)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, 25.0, out["temperature"])
	assert.Equal(t, 60.0, out["humidity"])
	assert.Equal(t, 50.0, out["moisture"])
}
