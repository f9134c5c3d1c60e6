package controller

import "github.com/labstack/echo/v4"

type HistoryController interface {
	Recommendations(c echo.Context) error
	WaterPlans(c echo.Context) error
}
