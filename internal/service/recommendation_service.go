package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"play_learn_spark_backend/internal/config"
	"play_learn_spark_backend/internal/model"
	"play_learn_spark_backend/internal/recommend"
	"play_learn_spark_backend/internal/repository"
	"play_learn_spark_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
)

// RecommendationService feeds stored learner and catalog data through the
// pure recommendation engine. Scores are never persisted; a short-lived Redis
// cache absorbs repeated dashboard loads and is dropped whenever the learner
// records new activity.
type RecommendationService struct {
	LearnerRepo  *repository.LearnerRepository
	ContentSvc   *ContentService
	ActivityRepo *repository.ActivityRepository
	Redis        *redis.Client
	Cfg          *config.Config
}

func NewRecommendationService(
	learnerRepo *repository.LearnerRepository,
	contentSvc *ContentService,
	activityRepo *repository.ActivityRepository,
	rdb *redis.Client,
	cfg *config.Config,
) *RecommendationService {
	return &RecommendationService{
		LearnerRepo:  learnerRepo,
		ContentSvc:   contentSvc,
		ActivityRepo: activityRepo,
		Redis:        rdb,
		Cfg:          cfg,
	}
}

// BuildProfile maps a stored learner plus their recent activity onto the
// engine's input type. Pure; covered by unit tests.
func BuildProfile(learner *model.Learner, records []model.ActivityRecord) recommend.LearnerProfile {
	performance := make([]recommend.PerformanceRecord, 0, len(records))
	for _, rec := range records {
		performance = append(performance, recommend.PerformanceRecord{
			ContentID:      rec.ContentID,
			Score:          rec.Score,
			Engagement:     rec.Engagement,
			ExcelledSkills: rec.ExcelledSkills,
		})
	}

	return recommend.LearnerProfile{
		AgeMonths:            learner.AgeMonths,
		SkillLevels:          learner.SkillLevels.Data(),
		Interests:            learner.Interests,
		LearningStyle:        recommend.LearningStyle(learner.LearningStyle),
		PreferredDifficulty:  recommend.Difficulty(learner.PreferredDifficulty),
		RecentPerformance:    performance,
		StrugglingAreas:      learner.StrugglingAreas,
		StrengthAreas:        learner.StrengthAreas,
		AttentionSpan:        learner.AttentionSpan,
		OptimalSessionLength: learner.OptimalSessionLength,
		SocialPreference:     recommend.SocialPreference(learner.SocialPreference),
	}
}

// BuildCatalog maps stored catalog items onto the engine's input type,
// marking the ones this learner already finished. Pure; covered by unit
// tests.
func BuildCatalog(items []model.ContentItem, completed map[string]bool) []recommend.ContentItem {
	catalog := make([]recommend.ContentItem, 0, len(items))
	for _, item := range items {
		catalog = append(catalog, recommend.ContentItem{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Type:        recommend.ContentType(item.Type),
			Category:    item.Category,
			Tags:        item.Tags,
			Skills:      item.Skills,
			Difficulty:  recommend.Difficulty(item.Difficulty),
			AgeRange:    item.AgeRange,
			Duration:    item.Duration,
			Completed:   completed[item.ID],
		})
	}
	return catalog
}

// Recommendations returns the scored catalog for a learner, highest first.
func (s *RecommendationService) Recommendations(ctx context.Context, learnerID uint) ([]recommend.ScoredRecommendation, error) {
	cacheKey := fmt.Sprintf("rec:learner:%d", learnerID)

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var recs []recommend.ScoredRecommendation
			if err := json.Unmarshal([]byte(cached), &recs); err == nil {
				monitoring.RecommendationCacheHits.WithLabelValues("hit").Inc()
				return recs, nil
			}
		}
		monitoring.RecommendationCacheHits.WithLabelValues("miss").Inc()
	}

	recs, err := s.compute(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(recs); err == nil {
			ttl := time.Duration(s.Cfg.Recommend.CacheTTLSeconds) * time.Second
			s.Redis.Set(ctx, cacheKey, payload, ttl)
		}
	}
	return recs, nil
}

// LearningPaths derives multi-week paths from the learner's scored catalog.
func (s *RecommendationService) LearningPaths(ctx context.Context, learnerID uint) ([]recommend.LearningPath, error) {
	recs, err := s.Recommendations(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	learner, err := s.LearnerRepo.FindByID(learnerID)
	if err != nil {
		return nil, err
	}
	records, err := s.ActivityRepo.Recent(learnerID, s.Cfg.Recommend.RecentActivities)
	if err != nil {
		return nil, err
	}

	return recommend.Paths(BuildProfile(learner, records), recs), nil
}

// Invalidate drops the learner's cached scores; called after new activity.
func (s *RecommendationService) Invalidate(ctx context.Context, learnerID uint) {
	if s.Redis != nil {
		s.Redis.Del(ctx, fmt.Sprintf("rec:learner:%d", learnerID))
	}
}

func (s *RecommendationService) compute(ctx context.Context, learnerID uint) ([]recommend.ScoredRecommendation, error) {
	learner, err := s.LearnerRepo.FindByID(learnerID)
	if err != nil {
		return nil, err
	}

	records, err := s.ActivityRepo.Recent(learnerID, s.Cfg.Recommend.RecentActivities)
	if err != nil {
		return nil, err
	}

	items, err := s.ContentSvc.PublishedCatalog(ctx)
	if err != nil {
		return nil, err
	}

	completedIDs, err := s.ActivityRepo.CompletedContentIDs(learnerID)
	if err != nil {
		return nil, err
	}
	completed := make(map[string]bool, len(completedIDs))
	for _, id := range completedIDs {
		completed[id] = true
	}

	start := time.Now()
	recs := recommend.Recommend(BuildProfile(learner, records), BuildCatalog(items, completed))
	monitoring.RecommendationDuration.Observe(time.Since(start).Seconds())

	return recs, nil
}
