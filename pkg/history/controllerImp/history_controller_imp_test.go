package controllerImp

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ferti/entities"
)

type fakeRepo struct {
	gotLimit int
	err      error
}

func (r *fakeRepo) CreateRecommendation(*entities.Recommendation) error { return nil }
func (r *fakeRepo) CreateWaterPlan(*entities.WaterPlanLog) error        { return nil }

func (r *fakeRepo) RecentRecommendations(limit int) ([]entities.Recommendation, error) {
	r.gotLimit = limit
	return []entities.Recommendation{{RequestID: "a", Fertilizer: "Urea"}}, r.err
}

func (r *fakeRepo) RecentWaterPlans(limit int) ([]entities.WaterPlanLog, error) {
	r.gotLimit = limit
	return []entities.WaterPlanLog{{RequestID: "b"}, {RequestID: "c"}}, r.err
}

func call(h echo.HandlerFunc, target string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	err := h(e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), rec))
	return rec, err
}

func TestLimit(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 20},
		{"?limit=5", 5},
		{"?limit=100", 100},
		{"?limit=1000", 100},
	}
	for _, tt := range tests {
		repo := &fakeRepo{}
		rec, err := call(New(repo).Recommendations, "/history/recommendations"+tt.query)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, tt.want, repo.gotLimit, tt.query)
	}
}

func TestLimit_Invalid(t *testing.T) {
	for _, q := range []string{"?limit=0", "?limit=-3", "?limit=ten"} {
		_, err := call(New(&fakeRepo{}).WaterPlans, "/history/water_plans"+q)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he, q)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	}
}

func TestWaterPlans(t *testing.T) {
	rec, err := call(New(&fakeRepo{}).WaterPlans, "/history/water_plans")
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `"count":2`)
	assert.Contains(t, rec.Body.String(), `"request_id":"c"`)
}

func TestRepoError(t *testing.T) {
	rec, err := call(New(&fakeRepo{err: errors.New("locked")}).Recommendations, "/history/recommendations")
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "locked")
}
