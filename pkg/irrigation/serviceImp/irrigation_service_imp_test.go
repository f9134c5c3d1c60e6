package serviceImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ferti/database"
	"ferti/pkg/agronomy"
	historyRepo "ferti/pkg/history/repositoryImp"
	"ferti/pkg/irrigation/service"
	"ferti/pkg/requestid"
)

func TestPlan_StoresHistory(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	repo := historyRepo.New(db)
	svc := NewIrrigationService(agronomy.Default(), repo, nil)

	res, err := svc.Plan(context.Background(), service.Input{
		Temperature: 34, Humidity: 85, Soil: 4, Crop: 1,
		Stage: "Flowering", FertilizerType: "Urea",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.RequestID)
	assert.Equal(t, 3, res.Plan.IntervalDays)
	assert.Equal(t, 40, res.Plan.DepthMM)
	assert.Equal(t, "Sandy", res.Plan.SoilName)
	assert.Equal(t, "Cotton", res.Plan.CropName)

	logs, err := repo.RecentWaterPlans(10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, res.RequestID, logs[0].RequestID)
	assert.Equal(t, 4, logs[0].SoilCode)
	assert.Equal(t, res.Plan, logs[0].Plan)
}

func TestPlan_WithoutHistory(t *testing.T) {
	svc := NewIrrigationService(agronomy.Default(), nil, nil)
	res, err := svc.Plan(context.Background(), service.Input{Temperature: 18, Humidity: 85, Soil: 1.7, Crop: 99})
	require.NoError(t, err)
	assert.Equal(t, "Clayey", res.Plan.SoilName)
	assert.Equal(t, "Unknown", res.Plan.CropName)
	assert.Equal(t, "Vegetative", res.Plan.Stage)
	assert.Equal(t, agronomy.DefaultFertilizerType, res.Plan.FertilizerType)
	assert.Equal(t, 10, res.Plan.IntervalDays)
}

func TestPlan_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewIrrigationService(agronomy.Default(), nil, nil).Plan(ctx, service.Input{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlan_ReusesRequestID(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	repo := historyRepo.New(db)

	ctx := requestid.WithID(context.Background(), "req-7")
	res, err := NewIrrigationService(agronomy.Default(), repo, nil).Plan(ctx, service.Input{Temperature: 25, Humidity: 60, Soil: 2, Crop: 3})
	require.NoError(t, err)
	assert.Equal(t, "req-7", res.RequestID)

	logs, err := repo.RecentWaterPlans(1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "req-7", logs[0].RequestID)
}
