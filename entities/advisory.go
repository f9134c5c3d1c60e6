package entities

type NutrientLevel string

const (
	LevelLow    NutrientLevel = "Low"
	LevelMedium NutrientLevel = "Medium"
	LevelHigh   NutrientLevel = "High"
)

type NutrientLevels struct {
	Nitrogen   NutrientLevel `json:"nitrogen"`
	Phosphorus NutrientLevel `json:"phosphorus"`
	Potassium  NutrientLevel `json:"potassium"`
}

// LowCount is the number of deficient nutrients (0-3).
func (n NutrientLevels) LowCount() int {
	c := 0
	for _, l := range []NutrientLevel{n.Nitrogen, n.Phosphorus, n.Potassium} {
		if l == LevelLow {
			c++
		}
	}
	return c
}

type AdvisoryResult struct {
	QuantityKgPerHa          *int           `json:"quantity_kg_per_ha"`
	ApplicationMethod        string         `json:"application_method"`
	BestTime                 string         `json:"best_time"`
	WeatherWarning           *string        `json:"weather_warning"`
	SoilHealth               NutrientLevels `json:"soil_health"`
	CostINR                  *int           `json:"cost_inr"`
	ExpectedYieldIncreasePct int            `json:"expected_yield_increase_pct"`
	SoilName                 string         `json:"soil_name"`
	CropName                 string         `json:"crop_name"`
	Stage                    string         `json:"stage"`
}
