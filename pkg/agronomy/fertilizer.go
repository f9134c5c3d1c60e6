package agronomy

import (
	"math"

	"ferti/entities"
)

// FertilizerInput carries the readings used to build fertilizer advice.
type FertilizerInput struct {
	FertilizerName string
	Temperature    float64
	Humidity       float64
	Moisture       float64
	SoilID         int
	CropID         int
	Nitrogen       float64
	Potassium      float64
	Phosphorus     float64
	Stage          string
}

type threshold struct{ low, high float64 }

var (
	nitrogenRange   = threshold{30, 80}
	phosphorusRange = threshold{20, 60}
	potassiumRange  = threshold{30, 80}
)

const (
	bestTime = "Early morning or evening (avoid strong sun)."

	warnLeaching = "Soil moisture is high — avoid heavy fertilizer today (risk of leaching)."
	warnHumid    = "Hot + very humid — apply in early morning; avoid foliar spray at noon."
	warnHeat     = "Very high temperature — delay application or irrigate before applying."

	reproductiveFactor = 0.8
	baseYieldPct       = 8
	yieldPerDeficiency = 6
)

func level(v float64, t threshold) entities.NutrientLevel {
	if v < t.low {
		return entities.LevelLow
	}
	if v > t.high {
		return entities.LevelHigh
	}
	return entities.LevelMedium
}

func NitrogenLevel(v float64) entities.NutrientLevel   { return level(v, nitrogenRange) }
func PhosphorusLevel(v float64) entities.NutrientLevel { return level(v, phosphorusRange) }
func PotassiumLevel(v float64) entities.NutrientLevel  { return level(v, potassiumRange) }

// SoilHealth classifies the three macro nutrients.
func SoilHealth(nitrogen, phosphorus, potassium float64) entities.NutrientLevels {
	return entities.NutrientLevels{
		Nitrogen:   NitrogenLevel(nitrogen),
		Phosphorus: PhosphorusLevel(phosphorus),
		Potassium:  PotassiumLevel(potassium),
	}
}

// WeatherWarning returns the first applicable application warning, or nil.
func WeatherWarning(temp, humidity, moisture float64) *string {
	var w string
	switch {
	case moisture >= 75:
		w = warnLeaching
	case humidity >= 85 && temp >= 30:
		w = warnHumid
	case temp >= 38:
		w = warnHeat
	default:
		return nil
	}
	return &w
}

// round matches the half-to-even rounding the price sheets were computed with.
func round(v float64) int { return int(math.RoundToEven(v)) }

func (r *rules) Advise(in FertilizerInput) entities.AdvisoryResult {
	d := r.dosage(CategoryOf(in.FertilizerName))
	stage := entities.NormalizeStage(in.Stage)

	qty := d.QuantityKgHa
	if entities.IsReproductive(stage) {
		qty = round(float64(qty) * reproductiveFactor)
	}

	var cost *int
	if c := round(float64(qty) * d.PricePerKg); c > 0 {
		cost = &c
	}

	health := SoilHealth(in.Nitrogen, in.Phosphorus, in.Potassium)
	return entities.AdvisoryResult{
		QuantityKgPerHa:          &qty,
		ApplicationMethod:        d.Method,
		BestTime:                 bestTime,
		WeatherWarning:           WeatherWarning(in.Temperature, in.Humidity, in.Moisture),
		SoilHealth:               health,
		CostINR:                  cost,
		ExpectedYieldIncreasePct: baseYieldPct + yieldPerDeficiency*health.LowCount(),
		SoilName:                 entities.SoilType(in.SoilID).Name(),
		CropName:                 entities.CropType(in.CropID).Name(),
		Stage:                    stage,
	}
}
