package service

import (
	"context"

	"play_learn_spark_backend/internal/model"
	"play_learn_spark_backend/internal/repository"
	"play_learn_spark_backend/internal/util"
)

type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
	ContentRepo  *repository.ContentRepository
	RewardSvc    *RewardService
	RecommendSvc *RecommendationService
}

func NewActivityService(
	activityRepo *repository.ActivityRepository,
	contentRepo *repository.ContentRepository,
	rewardSvc *RewardService,
	recommendSvc *RecommendationService,
) *ActivityService {
	return &ActivityService{
		ActivityRepo: activityRepo,
		ContentRepo:  contentRepo,
		RewardSvc:    rewardSvc,
		RecommendSvc: recommendSvc,
	}
}

// RecordActivity stores a session outcome, grants stars for completions, and
// drops the learner's cached recommendations so the next request sees the
// new history.
func (s *ActivityService) RecordActivity(ctx context.Context, record *model.ActivityRecord) error {
	if record.Score < 0 || record.Score > 100 || record.Engagement < 0 || record.Engagement > 100 {
		return util.ErrInvalidSkillLevel
	}

	content, err := s.ContentRepo.FindByID(record.ContentID)
	if err != nil {
		return util.ErrContentNotFound
	}

	if err := s.ActivityRepo.Create(record); err != nil {
		return err
	}

	if record.Completed {
		if err := s.RewardSvc.GrantForCompletion(record.LearnerID, content); err != nil {
			return err
		}
	}

	s.RecommendSvc.Invalidate(ctx, record.LearnerID)
	return nil
}

func (s *ActivityService) ListActivities(learnerID uint, page, limit int) ([]model.ActivityRecord, int64, error) {
	return s.ActivityRepo.ListByLearner(learnerID, page, limit)
}
