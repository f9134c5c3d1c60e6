package repository

import "ferti/entities"

type HistoryRepository interface {
	CreateRecommendation(r *entities.Recommendation) error
	RecentRecommendations(limit int) ([]entities.Recommendation, error)
	CreateWaterPlan(p *entities.WaterPlanLog) error
	RecentWaterPlans(limit int) ([]entities.WaterPlanLog, error)
}
