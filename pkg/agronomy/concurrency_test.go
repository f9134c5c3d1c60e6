package agronomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestEngineConcurrentUse(t *testing.T) {
	e := Default()
	want := e.Advise(FertilizerInput{FertilizerName: "DAP", Stage: "Flowering", Moisture: 80})
	wantPlan := e.PlanIrrigation(IrrigationInput{Temperature: 35, Humidity: 85, SoilID: 4, Stage: "Flowering"})

	var g errgroup.Group
	got := make([]int, 64)
	for i := range got {
		g.Go(func() error {
			r := e.Advise(FertilizerInput{FertilizerName: "DAP", Stage: "Flowering", Moisture: 80})
			p := e.PlanIrrigation(IrrigationInput{Temperature: 35, Humidity: 85, SoilID: 4, Stage: "Flowering"})
			assert.Equal(t, wantPlan, p)
			got[i] = *r.QuantityKgPerHa
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, q := range got {
		assert.Equal(t, *want.QuantityKgPerHa, q)
	}
}
