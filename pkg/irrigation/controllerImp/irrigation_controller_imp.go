package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ferti/entities"
	"ferti/pkg/agronomy"
	"ferti/pkg/form"
	"ferti/pkg/irrigation/service"
)

const msgNonNumeric = "Please provide numeric values for temperature and humidity."

type IrrigationCtrl struct{ svc service.IrrigationService }

func New(svc service.IrrigationService) *IrrigationCtrl { return &IrrigationCtrl{svc: svc} }

func (h *IrrigationCtrl) WaterPlan(c echo.Context) error {
	v, err := form.Read(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgNonNumeric, "detail": err.Error()})
	}
	f, err := v.Floats("temp", "humid", "soil", "crop")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgNonNumeric, "detail": err.Error()})
	}

	res, err := h.svc.Plan(c.Request().Context(), service.Input{
		Temperature:    f[0],
		Humidity:       f[1],
		Soil:           f[2],
		Crop:           f[3],
		Stage:          v.String("stage", entities.DefaultStage),
		FertilizerType: v.String("fert_type", agronomy.DefaultFertilizerType),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}
