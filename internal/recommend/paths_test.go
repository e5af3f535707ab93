package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id string, skills []string, category string, difficulty Difficulty, duration, score int, completed bool) ScoredRecommendation {
	return ScoredRecommendation{
		ContentItem: ContentItem{
			ID:         id,
			Title:      "Item " + id,
			Skills:     skills,
			Category:   category,
			Difficulty: difficulty,
			Duration:   duration,
			Completed:  completed,
		},
		Score: score,
	}
}

func TestSkillPathMinimumCardinality(t *testing.T) {
	p := LearnerProfile{
		SkillLevels:          map[string]int{"Counting": 20},
		OptimalSessionLength: 20,
	}

	// Only two non-completed items carry the skill: no path.
	recs := []ScoredRecommendation{
		rec("a", []string{"Counting"}, "Math", DifficultyEasy, 10, 90, false),
		rec("b", []string{"Counting"}, "Math", DifficultyMedium, 10, 80, false),
		rec("c", []string{"Counting"}, "Math", DifficultyHard, 10, 70, true),
	}
	assert.Empty(t, Paths(p, recs))

	// A third non-completed item tips it over the minimum.
	recs = append(recs, rec("d", []string{"Counting"}, "Math", DifficultyHard, 10, 60, false))
	paths := Paths(p, recs)
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"Counting"}, paths[0].TargetSkills)
}

func TestSkillPathOrderingAndWeeks(t *testing.T) {
	p := LearnerProfile{
		SkillLevels:          map[string]int{"Counting": 50},
		OptimalSessionLength: 20,
	}
	recs := []ScoredRecommendation{
		rec("hard", []string{"Counting"}, "Math", DifficultyHard, 60, 95, false),
		rec("easy", []string{"Counting"}, "Math", DifficultyEasy, 10, 50, false),
		rec("medium", []string{"Counting"}, "Math", DifficultyMedium, 40, 70, false),
	}

	paths := Paths(p, recs)
	require.Len(t, paths, 1)
	ms := paths[0].Milestones
	require.Len(t, ms, 3)

	// Easy to hard regardless of score.
	assert.Equal(t, []string{"easy"}, ms[0].ContentIDs)
	assert.Equal(t, []string{"medium"}, ms[1].ContentIDs)
	assert.Equal(t, []string{"hard"}, ms[2].ContentIDs)

	// Weeks accumulate by ceil(duration/sessionLength): 1, 1+2, 3+3.
	assert.Equal(t, 1, ms[0].Week)
	assert.Equal(t, 3, ms[1].Week)
	assert.Equal(t, 6, ms[2].Week)
	assert.Equal(t, 6, paths[0].EstimatedWeeks)

	// Proficiency 50 sits between the 30/70 thresholds.
	assert.Equal(t, "intermediate", paths[0].Difficulty)
	// min(95, 60 + 50*0.3) = 75.
	assert.Equal(t, 75, paths[0].SuccessPrediction)
}

func TestSkillPathCapsMilestones(t *testing.T) {
	p := LearnerProfile{
		SkillLevels:          map[string]int{"Reading": 90},
		OptimalSessionLength: 30,
	}
	var recs []ScoredRecommendation
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		recs = append(recs, rec(id, []string{"Reading"}, "Stories", DifficultyEasy, 10, 80, false))
	}

	paths := Paths(p, recs)
	require.Len(t, paths, 1)
	assert.Len(t, paths[0].Milestones, 4)
	assert.Equal(t, "advanced", paths[0].Difficulty)
	// min(95, 60 + 90*0.3) = 87.
	assert.Equal(t, 87, paths[0].SuccessPrediction)
}

func TestInterestPathMinimumCardinality(t *testing.T) {
	p := LearnerProfile{Interests: []string{"Space"}}

	recs := []ScoredRecommendation{
		rec("a", nil, "Space", DifficultyEasy, 10, 90, false),
		rec("b", nil, "Space", DifficultyEasy, 10, 80, false),
		rec("c", nil, "Space", DifficultyEasy, 10, 70, false),
	}
	assert.Empty(t, Paths(p, recs), "three items is below the interest minimum of four")

	recs = append(recs, rec("d", nil, "Space", DifficultyEasy, 10, 60, false))
	paths := Paths(p, recs)
	require.Len(t, paths, 1)
	assert.Equal(t, "intermediate", paths[0].Difficulty)
	assert.Equal(t, 80, paths[0].SuccessPrediction)
}

func TestInterestPathTopFiveByScore(t *testing.T) {
	p := LearnerProfile{Interests: []string{"Space"}}
	var recs []ScoredRecommendation
	scores := []int{40, 90, 60, 85, 70, 55}
	ids := []string{"a", "b", "c", "d", "e", "f"}
	for i := range ids {
		recs = append(recs, rec(ids[i], nil, "Space", DifficultyEasy, 10, scores[i], false))
	}

	paths := Paths(p, recs)
	require.Len(t, paths, 1)
	require.Len(t, paths[0].Milestones, 5)

	// Top five by score, one per week.
	assert.Equal(t, []string{"b", "d", "e", "c", "f"}, paths[0].RecommendedIDs)
	for i, m := range paths[0].Milestones {
		assert.Equal(t, i+1, m.Week)
	}
}

func TestInterestPathTagMatch(t *testing.T) {
	p := LearnerProfile{Interests: []string{"dino"}}
	var recs []ScoredRecommendation
	for _, id := range []string{"a", "b", "c", "d"} {
		item := rec(id, nil, "Animals", DifficultyEasy, 10, 50, false)
		item.Tags = []string{"Dinosaurs", "prehistoric"}
		recs = append(recs, item)
	}

	paths := Paths(p, recs)
	require.Len(t, paths, 1, "tag substring match qualifies items for an interest path")
}

func TestPathsExcludeCompleted(t *testing.T) {
	p := LearnerProfile{
		SkillLevels: map[string]int{"Counting": 10},
		Interests:   []string{"Math"},
	}
	var recs []ScoredRecommendation
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		recs = append(recs, rec(id, []string{"Counting"}, "Math", DifficultyEasy, 10, 80, id == "e"))
	}

	for _, path := range Paths(p, recs) {
		for _, m := range path.Milestones {
			assert.NotContains(t, m.ContentIDs, "e")
		}
		assert.NotContains(t, path.RecommendedIDs, "e")
	}
}

func TestPathsSortedBySuccessPrediction(t *testing.T) {
	// Skill path for a strong skill predicts higher than the fixed 80 of an
	// interest path; both must come out sorted.
	p := LearnerProfile{
		SkillLevels:          map[string]int{"Reading": 90},
		Interests:            []string{"Space"},
		OptimalSessionLength: 20,
	}
	var recs []ScoredRecommendation
	for _, id := range []string{"r1", "r2", "r3"} {
		recs = append(recs, rec(id, []string{"Reading"}, "Stories", DifficultyEasy, 10, 80, false))
	}
	for _, id := range []string{"s1", "s2", "s3", "s4"} {
		recs = append(recs, rec(id, nil, "Space", DifficultyEasy, 10, 70, false))
	}

	paths := Paths(p, recs)
	require.Len(t, paths, 2)
	assert.Equal(t, 87, paths[0].SuccessPrediction)
	assert.Equal(t, 80, paths[1].SuccessPrediction)
	for i := 1; i < len(paths); i++ {
		assert.GreaterOrEqual(t, paths[i-1].SuccessPrediction, paths[i].SuccessPrediction)
	}
}

func TestSameItemMayAppearInMultiplePaths(t *testing.T) {
	p := LearnerProfile{
		SkillLevels: map[string]int{"Counting": 20},
		Interests:   []string{"Math"},
	}
	var recs []ScoredRecommendation
	for _, id := range []string{"a", "b", "c", "d"} {
		recs = append(recs, rec(id, []string{"Counting"}, "Math", DifficultyEasy, 10, 80, false))
	}

	paths := Paths(p, recs)
	require.Len(t, paths, 2)

	seen := map[string]int{}
	for _, path := range paths {
		for _, id := range path.RecommendedIDs {
			seen[id]++
		}
	}
	assert.Greater(t, seen["a"], 1, "no dedup across skill and interest paths")
}
