package classifier

import (
	"context"
	"errors"
)

var (
	ErrUnavailable  = errors.New("classifier unavailable")
	ErrUnknownClass = errors.New("unknown class index")
)

// Features is the model input in training column order: temperature,
// humidity, moisture, soil code, crop code, nitrogen, potassium, phosphorus.
type Features [8]float64

func NewFeatures(temp, humidity, moisture, soil, crop, nitrogen, potassium, phosphorus float64) Features {
	return Features{temp, humidity, moisture, soil, crop, nitrogen, potassium, phosphorus}
}

// Client talks to the model server that hosts the trained classifier.
type Client interface {
	Predict(ctx context.Context, f Features) (int, error)
	// Labels returns the fertilizer names indexed by class.
	Labels(ctx context.Context) ([]string, error)
}
