package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ferti/pkg/history/repository"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type HistoryCtrl struct{ repo repository.HistoryRepository }

func New(repo repository.HistoryRepository) *HistoryCtrl { return &HistoryCtrl{repo: repo} }

// limit reads ?limit=, falling back to the default and capping at maxLimit.
func limit(c echo.Context) (int, error) {
	s := c.QueryParam("limit")
	if s == "" {
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
	}
	return min(n, maxLimit), nil
}

func (h *HistoryCtrl) Recommendations(c echo.Context) error {
	n, err := limit(c)
	if err != nil {
		return err
	}
	items, err := h.repo.RecentRecommendations(n)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

func (h *HistoryCtrl) WaterPlans(c echo.Context) error {
	n, err := limit(c)
	if err != nil {
		return err
	}
	items, err := h.repo.RecentWaterPlans(n)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}
