package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ferti/database"
	"ferti/entities"
	"ferti/pkg/advice/service"
	"ferti/pkg/classifier"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CLASSIFIER_ENDPOINT", "")
	t.Setenv("RULES_FILE", "")
	t.Setenv("LOG_LEVEL", "error")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPlanCommand(t *testing.T) {
	out, err := execute(t, "plan", "--temp", "35", "--humid", "85", "--soil", "4", "--crop", "1", "--stage", "Flowering", "--fert-type", "Urea")
	require.NoError(t, err)

	var plan entities.IrrigationPlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, 3, plan.IntervalDays)
	assert.Equal(t, 40, plan.DepthMM)
	assert.Equal(t, "Cotton", plan.CropName)
}

func TestAdviseCommand_NamedFertilizer(t *testing.T) {
	out, err := execute(t, "advise", "--temp", "25", "--humid", "78", "--mois", "43", "--soil", "4", "--crop", "1",
		"--nitro", "22", "--pota", "26", "--phos", "38", "--fertilizer", "Urea", "--stage", "Vegetative")
	require.NoError(t, err)

	var res service.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Urea", res.Recommendation)
	assert.Equal(t, 90, *res.Details.QuantityKgPerHa)
	assert.Contains(t, out, "2–3 doses")
}

func TestCheckModels_NoClassifier(t *testing.T) {
	out, err := execute(t, "check-models")
	require.Error(t, err)

	var rep classifier.CheckReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.False(t, rep.OK)
	assert.Equal(t, classifier.ErrUnavailable.Error(), rep.Error)
}

func TestShutdownClosesDatabase(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	require.NoError(t, shutdown(context.Background(), echo.New(), db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.ErrorContains(t, sqlDB.Ping(), "closed")
}
