package service

import (
	"testing"

	"play_learn_spark_backend/internal/model"
	"play_learn_spark_backend/internal/recommend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestBuildProfile(t *testing.T) {
	learner := &model.Learner{
		AgeMonths:            72,
		SkillLevels:          datatypes.NewJSONType(map[string]int{"Counting": 40}),
		Interests:            datatypes.JSONSlice[string]{"Math"},
		LearningStyle:        "visual",
		PreferredDifficulty:  "easy",
		StrugglingAreas:      datatypes.JSONSlice[string]{"Addition"},
		StrengthAreas:        datatypes.JSONSlice[string]{"Counting"},
		AttentionSpan:        12,
		OptimalSessionLength: 18,
		SocialPreference:     "collaborative",
	}
	records := []model.ActivityRecord{
		{ContentID: "c1", Score: 80, Engagement: 90, ExcelledSkills: datatypes.JSONSlice[string]{"Counting"}},
	}

	p := BuildProfile(learner, records)

	assert.Equal(t, 72, p.AgeMonths)
	assert.Equal(t, map[string]int{"Counting": 40}, p.SkillLevels)
	assert.Equal(t, []string{"Math"}, p.Interests)
	assert.Equal(t, recommend.StyleVisual, p.LearningStyle)
	assert.Equal(t, recommend.DifficultyEasy, p.PreferredDifficulty)
	assert.Equal(t, []string{"Addition"}, p.StrugglingAreas)
	assert.Equal(t, 12, p.AttentionSpan)
	assert.Equal(t, 18, p.OptimalSessionLength)
	assert.Equal(t, recommend.SocialCollaborative, p.SocialPreference)

	require.Len(t, p.RecentPerformance, 1)
	assert.Equal(t, "c1", p.RecentPerformance[0].ContentID)
	assert.Equal(t, 80, p.RecentPerformance[0].Score)
	assert.Equal(t, []string{"Counting"}, p.RecentPerformance[0].ExcelledSkills)
}

func TestBuildCatalogMarksCompleted(t *testing.T) {
	items := []model.ContentItem{
		{UUIDBase: model.UUIDBase{ID: "a"}, Title: "A", Type: model.ContentGame, Difficulty: "easy"},
		{UUIDBase: model.UUIDBase{ID: "b"}, Title: "B", Type: model.ContentVideo, Difficulty: "hard"},
	}

	catalog := BuildCatalog(items, map[string]bool{"b": true})
	require.Len(t, catalog, 2)

	assert.False(t, catalog[0].Completed)
	assert.True(t, catalog[1].Completed)
	assert.Equal(t, recommend.TypeGame, catalog[0].Type)
	assert.Equal(t, recommend.DifficultyHard, catalog[1].Difficulty)
}

func TestBuildCatalogRoundTripsThroughEngine(t *testing.T) {
	learner := &model.Learner{
		AgeMonths:   60,
		SkillLevels: datatypes.NewJSONType(map[string]int{"Counting": 50}),
	}
	items := []model.ContentItem{
		{UUIDBase: model.UUIDBase{ID: "a"}, Type: model.ContentGame, AgeRange: "4-6", Difficulty: "easy"},
	}

	recs := recommend.Recommend(BuildProfile(learner, nil), BuildCatalog(items, nil))
	require.Len(t, recs, 1)
	assert.GreaterOrEqual(t, recs[0].Score, 0)
	assert.LessOrEqual(t, recs[0].Score, 100)
}

func TestStarBadgeThresholds(t *testing.T) {
	assert.Equal(t, "", starBadge(49))
	assert.Equal(t, "Rising Star", starBadge(50))
	assert.Equal(t, "Star Collector", starBadge(180))
	assert.Equal(t, "Shooting Star", starBadge(250))
}
