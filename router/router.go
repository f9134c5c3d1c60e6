package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	advice "ferti/pkg/advice/controller"
	history "ferti/pkg/history/controller"
	irrigation "ferti/pkg/irrigation/controller"
	"ferti/pkg/middleware"
	weather "ferti/pkg/weather/controller"
)

type Controllers struct {
	Advice     advice.AdviceController
	Irrigation irrigation.IrrigationController
	Weather    weather.WeatherController
	History    history.HistoryController
	Health     interface{ Health(echo.Context) error }
}

func New(e *echo.Echo, log *zap.Logger, ctl Controllers) *echo.Echo {
	e.Use(middleware.RequestLog(log))
	e.Use(echoMiddleware.Recover())

	e.GET("/health", ctl.Health.Health)
	e.GET("/catalog", ctl.Advice.Catalog)

	e.POST("/predict", ctl.Advice.Predict)
	e.POST("/advise", ctl.Advice.Advise)
	e.POST("/water_plan", ctl.Irrigation.WaterPlan)
	e.GET("/get_weather", ctl.Weather.Current)

	g := e.Group("/history")
	g.GET("/recommendations", ctl.History.Recommendations)
	g.GET("/water_plans", ctl.History.WaterPlans)
	return e
}
