package repository

import (
	"play_learn_spark_backend/internal/model"

	"gorm.io/gorm"
)

type LearnerRepository struct {
	DB *gorm.DB
}

func NewLearnerRepository(db *gorm.DB) *LearnerRepository {
	return &LearnerRepository{DB: db}
}

func (r *LearnerRepository) Create(learner *model.Learner) error {
	return r.DB.Create(learner).Error
}

func (r *LearnerRepository) FindByID(id uint) (*model.Learner, error) {
	var learner model.Learner
	err := r.DB.First(&learner, id).Error
	return &learner, err
}

func (r *LearnerRepository) ListByParent(parentID uint) ([]model.Learner, error) {
	var learners []model.Learner
	err := r.DB.Where("parent_id = ?", parentID).Order("created_at").Find(&learners).Error
	return learners, err
}

func (r *LearnerRepository) Update(learner *model.Learner) error {
	return r.DB.Save(learner).Error
}

func (r *LearnerRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Learner{}, id).Error
}
