package controller

import "github.com/labstack/echo/v4"

type AdviceController interface {
	Predict(c echo.Context) error
	Advise(c echo.Context) error
	Catalog(c echo.Context) error
}
