package service

import (
	"play_learn_spark_backend/internal/model"
	"play_learn_spark_backend/internal/repository"
)

// Star thresholds for collection badges.
var badgeThresholds = []struct {
	stars int
	name  string
}{
	{250, "Shooting Star"},
	{100, "Star Collector"},
	{50, "Rising Star"},
}

type RewardService struct {
	RewardRepo *repository.RewardRepository
}

func NewRewardService(rewardRepo *repository.RewardRepository) *RewardService {
	return &RewardService{RewardRepo: rewardRepo}
}

// GrantForCompletion awards the item's points as stars. Upsert keeps repeat
// completions from stacking.
func (s *RewardService) GrantForCompletion(learnerID uint, content *model.ContentItem) error {
	return s.RewardRepo.Upsert(&model.RewardGrant{
		LearnerID: learnerID,
		ContentID: content.ID,
		Stars:     content.Points,
	})
}

func (s *RewardService) Summary(learnerID uint) (*model.RewardSummary, error) {
	grants, err := s.RewardRepo.ListByLearner(learnerID)
	if err != nil {
		return nil, err
	}

	summary := &model.RewardSummary{}
	for _, g := range grants {
		summary.TotalStars += g.Stars
		summary.CompletedItems++
		if g.Badge != "" {
			summary.Badges = append(summary.Badges, g.Badge)
		}
	}

	if badge := starBadge(summary.TotalStars); badge != "" {
		summary.Badges = append(summary.Badges, badge)
	}
	return summary, nil
}

func starBadge(total int) string {
	for _, t := range badgeThresholds {
		if total >= t.stars {
			return t.name
		}
	}
	return ""
}
