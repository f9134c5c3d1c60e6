package controllerImp

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"ferti/pkg/weather"
)

type lookup interface {
	Lookup(ctx context.Context, lat, lon *float64) weather.Reading
}

type WeatherCtrl struct{ w lookup }

func New(w lookup) *WeatherCtrl { return &WeatherCtrl{w: w} }

type response struct {
	Success bool `json:"success"`
	weather.Reading
}

// Current answers GET /get_weather?lat=&lon=. It always succeeds; when
// coordinates are given but unreadable the fixed default reading is returned.
func (h *WeatherCtrl) Current(c echo.Context) error {
	latS := strings.TrimSpace(c.QueryParam("lat"))
	lonS := strings.TrimSpace(c.QueryParam("lon"))

	if latS == "" || lonS == "" {
		return c.JSON(http.StatusOK, response{true, h.w.Lookup(c.Request().Context(), nil, nil)})
	}
	lat, err1 := strconv.ParseFloat(latS, 64)
	lon, err2 := strconv.ParseFloat(lonS, 64)
	if err1 != nil || err2 != nil {
		return c.JSON(http.StatusOK, response{true, weather.DefaultReading()})
	}
	return c.JSON(http.StatusOK, response{true, h.w.Lookup(c.Request().Context(), &lat, &lon)})
}
