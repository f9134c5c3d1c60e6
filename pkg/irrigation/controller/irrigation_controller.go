package controller

import "github.com/labstack/echo/v4"

type IrrigationController interface {
	WaterPlan(c echo.Context) error
}
