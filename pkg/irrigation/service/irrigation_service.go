package service

import (
	"context"

	"ferti/entities"
)

type IrrigationService interface {
	Plan(ctx context.Context, in Input) (*Result, error)
}

// Input mirrors the water plan form. Soil and crop are encoded category codes.
type Input struct {
	Temperature    float64 `json:"temperature"`
	Humidity       float64 `json:"humidity"`
	Soil           float64 `json:"soil"`
	Crop           float64 `json:"crop"`
	Stage          string  `json:"stage"`
	FertilizerType string  `json:"fertilizer_type"`
}

type Result struct {
	RequestID string                  `json:"request_id"`
	Plan      entities.IrrigationPlan `json:"plan"`
}
