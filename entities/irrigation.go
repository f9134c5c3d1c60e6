package entities

type IrrigationPlan struct {
	SoilName       string   `json:"soil_name"`
	CropName       string   `json:"crop_name"`
	Stage          string   `json:"stage"`
	FertilizerType string   `json:"fertilizer_type"`
	IntervalDays   int      `json:"interval_days"`
	DepthMM        int      `json:"depth_mm"`
	ClimateText    string   `json:"climate_text"`
	Notes          []string `json:"notes"`
}
