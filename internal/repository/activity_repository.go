package repository

import (
	"play_learn_spark_backend/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Create(record *model.ActivityRecord) error {
	return r.DB.Create(record).Error
}

// Recent returns the latest records for a learner, newest first.
func (r *ActivityRepository) Recent(learnerID uint, limit int) ([]model.ActivityRecord, error) {
	var records []model.ActivityRecord
	err := r.DB.Where("learner_id = ?", learnerID).
		Order("created_at desc").Limit(limit).
		Find(&records).Error
	return records, err
}

func (r *ActivityRepository) ListByLearner(learnerID uint, page, limit int) ([]model.ActivityRecord, int64, error) {
	var records []model.ActivityRecord
	var total int64

	query := r.DB.Model(&model.ActivityRecord{}).Where("learner_id = ?", learnerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&records).Error
	return records, total, err
}

// CompletedContentIDs returns the ids of catalog items this learner finished.
func (r *ActivityRepository) CompletedContentIDs(learnerID uint) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.ActivityRecord{}).
		Where("learner_id = ? AND completed = ?", learnerID, true).
		Distinct("content_id").
		Pluck("content_id", &ids).Error
	return ids, err
}
