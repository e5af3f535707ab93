package repository

import (
	"play_learn_spark_backend/internal/model"

	"gorm.io/gorm"
)

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) Create(item *model.ContentItem) error {
	return r.DB.Create(item).Error
}

func (r *ContentRepository) FindByID(id string) (*model.ContentItem, error) {
	var item model.ContentItem
	err := r.DB.Where("id = ?", id).First(&item).Error
	return &item, err
}

// ListPublished is the learner-facing catalog view.
func (r *ContentRepository) ListPublished() ([]model.ContentItem, error) {
	var items []model.ContentItem
	err := r.DB.Where("published = ?", true).Order("created_at").Find(&items).Error
	return items, err
}

// ListAll includes unpublished items, for admins.
func (r *ContentRepository) ListAll(category string, page, limit int) ([]model.ContentItem, int64, error) {
	var items []model.ContentItem
	var total int64

	query := r.DB.Model(&model.ContentItem{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&items).Error
	return items, total, err
}

func (r *ContentRepository) Update(item *model.ContentItem) error {
	return r.DB.Save(item).Error
}

func (r *ContentRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.ContentItem{}).Error
}
