package repositoryImp

import (
	"ferti/entities"
	"ferti/pkg/history/repository"

	"gorm.io/gorm"
)

type historyRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HistoryRepository { return &historyRepo{db} }

func (r *historyRepo) CreateRecommendation(rec *entities.Recommendation) error {
	return r.db.Create(rec).Error
}

func (r *historyRepo) RecentRecommendations(limit int) ([]entities.Recommendation, error) {
	var out []entities.Recommendation
	if err := r.db.Order("created_at DESC, id DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *historyRepo) CreateWaterPlan(p *entities.WaterPlanLog) error { return r.db.Create(p).Error }

func (r *historyRepo) RecentWaterPlans(limit int) ([]entities.WaterPlanLog, error) {
	var out []entities.WaterPlanLog
	if err := r.db.Order("created_at DESC, id DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
