package serviceImp

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ferti/entities"
	"ferti/pkg/advice/service"
	"ferti/pkg/agronomy"
	"ferti/pkg/classifier"
	"ferti/pkg/history/repository"
	"ferti/pkg/requestid"
)

type AdviceSvc struct {
	model *classifier.Model
	rules agronomy.RulesEngine
	repo  repository.HistoryRepository
	log   *zap.Logger
}

var _ service.AdviceService = (*AdviceSvc)(nil)

// NewAdviceService wires the prediction path. model may be nil when the
// classifier could not be loaded; Recommend then reports it as unavailable.
// repo may be nil to disable history.
func NewAdviceService(model *classifier.Model, rules agronomy.RulesEngine, repo repository.HistoryRepository, log *zap.Logger) *AdviceSvc {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdviceSvc{model: model, rules: rules, repo: repo, log: log.Named("advice")}
}

func (s *AdviceSvc) Recommend(ctx context.Context, r service.Reading) (*service.Result, error) {
	pred, err := s.model.Predict(ctx, r.Features())
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	res := s.Advise(ctx, pred.Label, r)
	idx := pred.ClassIndex
	res.ClassIndex = &idx

	if s.repo != nil {
		rec := &entities.Recommendation{
			RequestID:   res.RequestID,
			Temperature: r.Temperature,
			Humidity:    r.Humidity,
			Moisture:    r.Moisture,
			SoilCode:    int(r.Soil),
			CropCode:    int(r.Crop),
			Nitrogen:    r.Nitrogen,
			Potassium:   r.Potassium,
			Phosphorus:  r.Phosphorus,
			ClassIndex:  idx,
			Fertilizer:  pred.Label,
			Details:     res.Details,
		}
		// history is best effort; the caller still gets the advice
		if err := s.repo.CreateRecommendation(rec); err != nil {
			s.log.Warn("store recommendation", zap.String("request_id", res.RequestID), zap.Error(err))
		}
	}

	s.log.Info("recommendation",
		zap.String("request_id", res.RequestID),
		zap.String("fertilizer", pred.Label),
		zap.Int("class_index", idx),
		zap.Stringer("category", res.Category),
	)
	return res, nil
}

// Advise reuses the request id carried by ctx.
func (s *AdviceSvc) Advise(ctx context.Context, fertilizer string, r service.Reading) *service.Result {
	return &service.Result{
		RequestID:      requestid.Ensure(ctx),
		Recommendation: fertilizer,
		Category:       s.rules.Category(fertilizer),
		Details:        s.rules.Advise(r.FertilizerInput(fertilizer)),
	}
}
