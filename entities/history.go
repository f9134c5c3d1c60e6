package entities

import "time"

// Recommendation is one classifier prediction plus the advice derived from it.
type Recommendation struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	RequestID   string  `gorm:"index" json:"request_id"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Moisture    float64 `json:"moisture"`
	SoilCode    int     `json:"soil_code"`
	CropCode    int     `json:"crop_code"`
	Nitrogen    float64 `json:"nitrogen"`
	Potassium   float64 `json:"potassium"`
	Phosphorus  float64 `json:"phosphorus"`
	ClassIndex  int     `json:"class_index"`
	Fertilizer  string  `gorm:"index" json:"fertilizer"`
	// advice is stored as a JSON blob; it is only ever read back whole
	Details   AdvisoryResult `gorm:"serializer:json" json:"details"`
	CreatedAt time.Time      `json:"created_at"`
}

type WaterPlanLog struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	RequestID   string         `gorm:"index" json:"request_id"`
	Temperature float64        `json:"temperature"`
	Humidity    float64        `json:"humidity"`
	SoilCode    int            `json:"soil_code"`
	CropCode    int            `json:"crop_code"`
	Plan        IrrigationPlan `gorm:"serializer:json" json:"plan"`
	CreatedAt   time.Time      `json:"created_at"`
}
