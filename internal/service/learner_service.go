package service

import (
	"play_learn_spark_backend/internal/model"
	"play_learn_spark_backend/internal/repository"
	"play_learn_spark_backend/internal/util"
)

type LearnerService struct {
	LearnerRepo *repository.LearnerRepository
}

func NewLearnerService(learnerRepo *repository.LearnerRepository) *LearnerService {
	return &LearnerService{LearnerRepo: learnerRepo}
}

func (s *LearnerService) CreateLearner(learner *model.Learner) error {
	if err := validateLearner(learner); err != nil {
		return err
	}
	return s.LearnerRepo.Create(learner)
}

func (s *LearnerService) GetLearner(id, parentID uint) (*model.Learner, error) {
	learner, err := s.LearnerRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrLearnerNotFound
	}
	if learner.ParentID != parentID {
		return nil, util.ErrPermissionDenied
	}
	return learner, nil
}

func (s *LearnerService) ListLearners(parentID uint) ([]model.Learner, error) {
	return s.LearnerRepo.ListByParent(parentID)
}

func (s *LearnerService) UpdateLearner(id, parentID uint, updates *model.Learner) (*model.Learner, error) {
	existing, err := s.GetLearner(id, parentID)
	if err != nil {
		return nil, err
	}
	if err := validateLearner(updates); err != nil {
		return nil, err
	}

	existing.Name = updates.Name
	existing.AgeMonths = updates.AgeMonths
	existing.SkillLevels = updates.SkillLevels
	existing.Interests = updates.Interests
	existing.LearningStyle = updates.LearningStyle
	existing.PreferredDifficulty = updates.PreferredDifficulty
	existing.StrugglingAreas = updates.StrugglingAreas
	existing.StrengthAreas = updates.StrengthAreas
	existing.AttentionSpan = updates.AttentionSpan
	existing.OptimalSessionLength = updates.OptimalSessionLength
	existing.SocialPreference = updates.SocialPreference
	existing.AvatarColor = updates.AvatarColor

	if err := s.LearnerRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *LearnerService) DeleteLearner(id, parentID uint) error {
	if _, err := s.GetLearner(id, parentID); err != nil {
		return err
	}
	return s.LearnerRepo.Delete(id)
}

func validateLearner(learner *model.Learner) error {
	if learner.AgeMonths < 0 {
		return util.ErrInvalidAgeMonths
	}
	for _, level := range learner.SkillLevels.Data() {
		if level < 0 || level > 100 {
			return util.ErrInvalidSkillLevel
		}
	}
	return nil
}
