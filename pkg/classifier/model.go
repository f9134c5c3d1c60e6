package classifier

import (
	"context"
	"errors"
	"fmt"
)

// Model pairs the classifier with its label decoder. It is built once at
// startup and handed to whoever needs predictions.
type Model struct {
	client  Client
	decoder *Decoder
}

type Prediction struct {
	ClassIndex int    `json:"class_index"`
	Label      string `json:"label"`
}

// Load resolves the label set (from labelsFile when given, otherwise from the
// server) and returns a ready Model.
func Load(ctx context.Context, client Client, labelsFile string) (*Model, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: no classifier endpoint configured", ErrUnavailable)
	}
	var (
		dec *Decoder
		err error
	)
	if labelsFile != "" {
		dec, err = LoadLabelsFile(labelsFile)
		if err != nil {
			return nil, fmt.Errorf("load labels: %w", err)
		}
	} else {
		classes, err := client.Labels(ctx)
		if err != nil {
			return nil, err
		}
		if len(classes) == 0 {
			return nil, fmt.Errorf("%w: label set is empty", ErrUnavailable)
		}
		dec = NewDecoder(classes)
	}
	return &Model{client: client, decoder: dec}, nil
}

func New(client Client, dec *Decoder) *Model { return &Model{client: client, decoder: dec} }

// Predict classifies one reading. A nil Model reports ErrUnavailable.
func (m *Model) Predict(ctx context.Context, f Features) (Prediction, error) {
	if m == nil || m.client == nil || m.decoder == nil {
		return Prediction{}, ErrUnavailable
	}
	idx, err := m.client.Predict(ctx, f)
	if err != nil {
		return Prediction{}, err
	}
	label, err := m.decoder.Decode(idx)
	if err != nil {
		return Prediction{ClassIndex: idx}, err
	}
	return Prediction{ClassIndex: idx, Label: label}, nil
}

func (m *Model) Ready() bool { return m != nil && m.client != nil && m.decoder != nil }

// ReferenceFeatures is the smoke-test reading used by Check.
var ReferenceFeatures = Features{25, 78, 43, 4, 1, 22, 26, 38}

type CheckReport struct {
	OK         bool   `json:"ok"`
	ClassIndex int    `json:"class_index"`
	Label      string `json:"label,omitempty"`
	NumClasses int    `json:"num_classes"`
	Error      string `json:"error,omitempty"`
}

// Check runs the reference reading through the model.
func Check(ctx context.Context, m *Model) CheckReport {
	if !m.Ready() {
		return CheckReport{Error: ErrUnavailable.Error()}
	}
	rep := CheckReport{NumClasses: m.decoder.Len()}
	p, err := m.Predict(ctx, ReferenceFeatures)
	rep.ClassIndex = p.ClassIndex
	if err != nil {
		rep.Error = err.Error()
		if errors.Is(err, ErrUnknownClass) {
			rep.Error = fmt.Sprintf("class index %d outside %d labels", p.ClassIndex, rep.NumClasses)
		}
		return rep
	}
	rep.OK = true
	rep.Label = p.Label
	return rep
}
