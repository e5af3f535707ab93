package model

// RewardGrant is stars earned by a learner for completing a content item.
// One grant per learner/content pair.
// swagger:model RewardGrant
type RewardGrant struct {
	BaseModel
	LearnerID uint   `gorm:"uniqueIndex:idx_learner_content;not null" json:"learnerId"`
	ContentID string `gorm:"uniqueIndex:idx_learner_content;size:36;not null" json:"contentId"`
	Stars     int    `gorm:"default:0" json:"stars"`
	Badge     string `gorm:"size:100" json:"badge"`
}

// RewardSummary aggregates a learner's rewards for the dashboard.
// swagger:model RewardSummary
type RewardSummary struct {
	TotalStars     int      `json:"totalStars"`
	CompletedItems int      `json:"completedItems"`
	Badges         []string `json:"badges"`
}

func (RewardGrant) TableName() string {
	return "reward_grants"
}
