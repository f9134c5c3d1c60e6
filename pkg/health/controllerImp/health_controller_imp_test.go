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

	"ferti/database"
	"ferti/pkg/classifier"
)

type stubClient struct{}

func (stubClient) Predict(context.Context, classifier.Features) (int, error) { return 0, nil }
func (stubClient) Labels(context.Context) ([]string, error)                  { return nil, nil }

func health(t *testing.T, h *HealthCtrl) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, h.Health(e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)))
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func TestHealth_OK(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	model := classifier.New(stubClient{}, classifier.NewDecoder([]string{"Urea"}))

	code, out := health(t, NewHealthCtrl(db, model))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"ok": true}, out["status"])
}

func TestHealth_ModelMissing(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	var model *classifier.Model

	code, out := health(t, NewHealthCtrl(db, model))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	checks := out["checks"].(map[string]any)
	assert.Equal(t, true, checks["database"].(map[string]any)["ok"])
	assert.Equal(t, "classifier not loaded", checks["classifier"].(map[string]any)["err"])
}

func TestHealth_NoDatabase(t *testing.T) {
	code, out := health(t, NewHealthCtrl(nil, nil))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	checks := out["checks"].(map[string]any)
	assert.Equal(t, "gorm db is nil", checks["database"].(map[string]any)["err"])
}
