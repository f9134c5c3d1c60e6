package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ferti/entities"
	"ferti/pkg/advice/service"
	"ferti/pkg/classifier"
	"ferti/pkg/form"
)

const (
	msgInvalidInput = "Invalid input. Please provide numeric values for all fields."
	msgNoModel      = "Error: Models not found or cannot be loaded. Check the classifier service and its label set, then restart the application."
)

type AdviceCtrl struct{ svc service.AdviceService }

func New(svc service.AdviceService) *AdviceCtrl { return &AdviceCtrl{svc: svc} }

// readReading pulls the form fields used by the prediction page.
func readReading(c echo.Context) (service.Reading, form.Values, error) {
	v, err := form.Read(c)
	if err != nil {
		return service.Reading{}, nil, err
	}
	f, err := v.Floats("temp", "humid", "mois", "soil", "crop", "nitro", "pota", "phos")
	if err != nil {
		return service.Reading{}, nil, err
	}
	return service.Reading{
		Temperature: f[0],
		Humidity:    f[1],
		Moisture:    f[2],
		Soil:        f[3],
		Crop:        f[4],
		Nitrogen:    f[5],
		Potassium:   f[6],
		Phosphorus:  f[7],
		Stage:       v.String("stage", entities.DefaultStage),
	}, v, nil
}

func (h *AdviceCtrl) Predict(c echo.Context) error {
	r, _, err := readReading(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgInvalidInput, "detail": err.Error()})
	}

	res, err := h.svc.Recommend(c.Request().Context(), r)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, res)
	case errors.Is(err, classifier.ErrUnavailable):
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": msgNoModel})
	case errors.Is(err, classifier.ErrUnknownClass):
		return c.JSON(http.StatusBadGateway, echo.Map{"error": fmt.Sprintf("Error during prediction: %v", err)})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": fmt.Sprintf("Error during prediction: %v", err)})
	}
}

// Advise builds decision support for a fertilizer named by the caller.
func (h *AdviceCtrl) Advise(c echo.Context) error {
	r, v, err := readReading(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgInvalidInput, "detail": err.Error()})
	}
	fert := strings.TrimSpace(v.String("fertilizer", ""))
	if fert == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "fertilizer is required"})
	}
	return c.JSON(http.StatusOK, h.svc.Advise(c.Request().Context(), fert, r))
}

func (h *AdviceCtrl) Catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"soils": entities.SoilCatalog(),
		"crops": entities.CropCatalog(),
	})
}
