package serviceImp

import (
	"context"

	"go.uber.org/zap"

	"ferti/entities"
	"ferti/pkg/agronomy"
	"ferti/pkg/history/repository"
	"ferti/pkg/irrigation/service"
	"ferti/pkg/requestid"
)

type IrrigationSvc struct {
	rules agronomy.RulesEngine
	repo  repository.HistoryRepository
	log   *zap.Logger
}

var _ service.IrrigationService = (*IrrigationSvc)(nil)

// NewIrrigationService builds the planner. repo may be nil to disable history.
func NewIrrigationService(rules agronomy.RulesEngine, repo repository.HistoryRepository, log *zap.Logger) *IrrigationSvc {
	if log == nil {
		log = zap.NewNop()
	}
	return &IrrigationSvc{rules: rules, repo: repo, log: log.Named("irrigation")}
}

func (s *IrrigationSvc) Plan(ctx context.Context, in service.Input) (*service.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	plan := s.rules.PlanIrrigation(agronomy.IrrigationInput{
		Temperature:    in.Temperature,
		Humidity:       in.Humidity,
		SoilID:         int(in.Soil),
		CropID:         int(in.Crop),
		Stage:          in.Stage,
		FertilizerType: in.FertilizerType,
	})
	res := &service.Result{RequestID: requestid.Ensure(ctx), Plan: plan}

	if s.repo != nil {
		err := s.repo.CreateWaterPlan(&entities.WaterPlanLog{
			RequestID:   res.RequestID,
			Temperature: in.Temperature,
			Humidity:    in.Humidity,
			SoilCode:    int(in.Soil),
			CropCode:    int(in.Crop),
			Plan:        plan,
		})
		if err != nil {
			s.log.Warn("store water plan", zap.String("request_id", res.RequestID), zap.Error(err))
		}
	}

	s.log.Info("water plan",
		zap.String("request_id", res.RequestID),
		zap.String("soil", plan.SoilName),
		zap.String("stage", plan.Stage),
		zap.Int("interval_days", plan.IntervalDays),
		zap.Int("depth_mm", plan.DepthMM),
	)
	return res, nil
}
