package agronomy

import (
	"fmt"
	"strings"

	"ferti/entities"
)

type IrrigationInput struct {
	Temperature    float64
	Humidity       float64
	SoilID         int
	CropID         int
	Stage          string
	FertilizerType string
}

const DefaultFertilizerType = "Balanced NPK"

type Climate string

const (
	ClimateCool     Climate = "cool"
	ClimateModerate Climate = "moderate"
	ClimateHot      Climate = "hot"
)

// ClassifyClimate buckets air temperature (°C).
func ClassifyClimate(temp float64) Climate {
	switch {
	case temp <= 20:
		return ClimateCool
	case temp >= 32:
		return ClimateHot
	default:
		return ClimateModerate
	}
}

var baseInterval = map[Climate]int{
	ClimateCool:     8,
	ClimateModerate: 6,
	ClimateHot:      4,
}

const (
	minInterval = 2
	maxInterval = 10
	minDepthMM  = 25

	noteSandy  = "Sandy soils drain quickly, so irrigate more frequently with smaller doses."
	noteClayey = "Clayey soils hold water longer; avoid waterlogging and give deeper but less frequent irrigations."
	noteLoamy  = "Loamy soils are balanced – follow the base schedule."

	noteChemical = "After applying chemical fertilizers like Urea/DAP/NPK, give a light irrigation within 24 hours to avoid burning and improve uptake."
	noteOrganic  = "With organic fertilizers/compost, keep the soil uniformly moist to help microbes release nutrients."
)

type soilIrrigation struct {
	intervalDelta int
	depthMM       int
	note          string
}

var soilRules = map[entities.SoilType]soilIrrigation{
	entities.SoilSandy:  {-2, 30, noteSandy},
	entities.SoilClayey: {+2, 50, noteClayey},
	entities.SoilLoamy:  {0, 40, noteLoamy},
}

var defaultSoilIrrigation = soilIrrigation{0, 40, ""}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func fertilizerNote(fertType string) string {
	u := strings.ToUpper(fertType)
	for _, k := range []string{"UREA", "DAP", "NPK"} {
		if strings.Contains(u, k) {
			return noteChemical
		}
	}
	if strings.Contains(u, "ORGANIC") || strings.Contains(u, "COMPOST") {
		return noteOrganic
	}
	return ""
}

func (r *rules) PlanIrrigation(in IrrigationInput) entities.IrrigationPlan {
	stage := entities.NormalizeStage(in.Stage)
	fertType := strings.TrimSpace(in.FertilizerType)
	if fertType == "" {
		fertType = DefaultFertilizerType
	}

	climate := ClassifyClimate(in.Temperature)
	soil, ok := soilRules[entities.SoilType(in.SoilID)]
	if !ok {
		soil = defaultSoilIrrigation
	}

	interval := baseInterval[climate] + soil.intervalDelta
	switch {
	case in.Humidity >= 80:
		interval++
	case in.Humidity <= 35:
		interval--
	}
	interval = clamp(interval, minInterval, maxInterval)

	depth := soil.depthMM
	switch climate {
	case ClimateHot:
		depth += 5
	case ClimateCool:
		depth -= 5
	}
	switch entities.StageKey(stage) {
	case entities.StageSowing:
		depth = max(minDepthMM, depth-5)
	case entities.StageFlowering, entities.StageFruiting:
		depth += 5
	}

	notes := []string{}
	if soil.note != "" {
		notes = append(notes, soil.note)
	}
	if n := fertilizerNote(fertType); n != "" {
		notes = append(notes, n)
	}

	return entities.IrrigationPlan{
		SoilName:       entities.SoilType(in.SoilID).Name(),
		CropName:       entities.CropType(in.CropID).Name(),
		Stage:          stage,
		FertilizerType: fertType,
		IntervalDays:   interval,
		DepthMM:        depth,
		ClimateText:    climateText(climate, in.Humidity),
		Notes:          notes,
	}
}

func climateText(c Climate, humidity float64) string {
	name := string(c)
	return fmt.Sprintf("%s%s conditions with relative humidity around %d%%.",
		strings.ToUpper(name[:1]), name[1:], int(humidity))
}
