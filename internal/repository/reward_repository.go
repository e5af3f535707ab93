package repository

import (
	"play_learn_spark_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RewardRepository struct {
	DB *gorm.DB
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{DB: db}
}

// Upsert keeps one grant per learner/content pair; a repeat completion does
// not double the stars.
func (r *RewardRepository) Upsert(grant *model.RewardGrant) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "learner_id"}, {Name: "content_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"stars", "badge"}),
	}).Create(grant).Error
}

func (r *RewardRepository) ListByLearner(learnerID uint) ([]model.RewardGrant, error) {
	var grants []model.RewardGrant
	err := r.DB.Where("learner_id = ?", learnerID).Order("created_at desc").Find(&grants).Error
	return grants, err
}

func (r *RewardRepository) TotalStars(learnerID uint) (int, error) {
	var total int64
	err := r.DB.Model(&model.RewardGrant{}).
		Where("learner_id = ?", learnerID).
		Select("COALESCE(SUM(stars), 0)").
		Scan(&total).Error
	return int(total), err
}
