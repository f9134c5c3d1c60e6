package service

import (
	"context"

	"ferti/entities"
	"ferti/pkg/agronomy"
	"ferti/pkg/classifier"
)

type AdviceService interface {
	// Recommend classifies the reading and derives advice for the predicted fertilizer.
	Recommend(ctx context.Context, r Reading) (*Result, error)
	// Advise skips the classifier and builds advice for a fertilizer the caller already chose.
	Advise(ctx context.Context, fertilizer string, r Reading) *Result
}

// Reading is one set of field observations. Soil and crop are the encoded
// category codes the model was trained on.
type Reading struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Moisture    float64 `json:"moisture"`
	Soil        float64 `json:"soil"`
	Crop        float64 `json:"crop"`
	Nitrogen    float64 `json:"nitrogen"`
	Potassium   float64 `json:"potassium"`
	Phosphorus  float64 `json:"phosphorus"`
	Stage       string  `json:"stage"`
}

func (r Reading) Features() classifier.Features {
	return classifier.NewFeatures(r.Temperature, r.Humidity, r.Moisture, r.Soil, r.Crop, r.Nitrogen, r.Potassium, r.Phosphorus)
}

func (r Reading) FertilizerInput(fertilizer string) agronomy.FertilizerInput {
	return agronomy.FertilizerInput{
		FertilizerName: fertilizer,
		Temperature:    r.Temperature,
		Humidity:       r.Humidity,
		Moisture:       r.Moisture,
		SoilID:         int(r.Soil),
		CropID:         int(r.Crop),
		Nitrogen:       r.Nitrogen,
		Potassium:      r.Potassium,
		Phosphorus:     r.Phosphorus,
		Stage:          r.Stage,
	}
}

type Result struct {
	RequestID      string                  `json:"request_id"`
	Recommendation string                  `json:"recommendation"`
	ClassIndex     *int                    `json:"class_index,omitempty"`
	Category       agronomy.Category       `json:"category"`
	Details        entities.AdvisoryResult `json:"details"`
}
