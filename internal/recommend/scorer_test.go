package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() LearnerProfile {
	return LearnerProfile{
		AgeMonths:            72,
		SkillLevels:          map[string]int{"Addition": 20, "Counting": 55, "Reading": 80},
		Interests:            []string{"Math", "Animals"},
		LearningStyle:        StyleVisual,
		PreferredDifficulty:  DifficultyEasy,
		StrugglingAreas:      []string{"Addition"},
		StrengthAreas:        []string{"Reading"},
		AttentionSpan:        15,
		OptimalSessionLength: 20,
		SocialPreference:     SocialSolo,
	}
}

func sampleItem() ContentItem {
	return ContentItem{
		ID:         "c1",
		Title:      "Counting Safari",
		Type:       TypeGame,
		Category:   "Math",
		Tags:       []string{"animals", "numbers"},
		Skills:     []string{"Counting"},
		Difficulty: DifficultyEasy,
		AgeRange:   "5-7",
		Duration:   10,
	}
}

func TestScoreBounded(t *testing.T) {
	profiles := []LearnerProfile{
		{},
		sampleProfile(),
		{AgeMonths: 300, PreferredDifficulty: DifficultyAdaptive, LearningStyle: StyleKinesthetic},
	}
	items := []ContentItem{
		{},
		sampleItem(),
		{AgeRange: "nonsense", Difficulty: DifficultyHard, Type: TypeVideo, Duration: 120},
		{AgeRange: "10+", Skills: []string{"a", "b", "c"}, Tags: []string{"x"}},
	}
	for _, p := range profiles {
		for _, c := range items {
			s := Score(c, p)
			assert.GreaterOrEqual(t, s, 0)
			assert.LessOrEqual(t, s, 100)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	p, c := sampleProfile(), sampleItem()
	first := Score(c, p)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(c, p))
	}
}

func TestAgeScoreBoundaries(t *testing.T) {
	item := ContentItem{AgeRange: "6-8"}

	tests := []struct {
		name      string
		ageMonths int
		want      float64
	}{
		{"lower boundary exactly", 72, 100},
		{"inside range", 84, 100},
		{"one year below", 60, 75},
		{"two years below", 48, 50},
		{"two years above", 120, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ageScore(item, LearnerProfile{AgeMonths: tt.ageMonths})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAgeScoreOpenRange(t *testing.T) {
	item := ContentItem{AgeRange: "4+"}
	assert.Equal(t, float64(100), ageScore(item, LearnerProfile{AgeMonths: 48}))
	assert.Equal(t, float64(100), ageScore(item, LearnerProfile{AgeMonths: 200}))
	assert.Equal(t, float64(75), ageScore(item, LearnerProfile{AgeMonths: 36}))
}

func TestAgeScoreMalformedFallsBack(t *testing.T) {
	for _, r := range []string{"", "abc", "6-eight", "-", "+", "x+"} {
		got := ageScore(ContentItem{AgeRange: r}, LearnerProfile{AgeMonths: 72})
		assert.Equal(t, defaultAgeScore, got, "ageRange %q", r)
	}
}

func TestSkillScoreEmptySkills(t *testing.T) {
	item := ContentItem{}
	assert.Equal(t, defaultSkillScore, skillScore(item, sampleProfile()))
	assert.Equal(t, defaultSkillScore, skillScore(item, LearnerProfile{}))
}

func TestSkillScoreThresholdCliff(t *testing.T) {
	item := ContentItem{Skills: []string{"Addition", "Counting"}}

	// 20 is below the 30 cliff, 55 above: half the skills count.
	got := skillScore(item, sampleProfile())
	assert.Equal(t, float64(50), got)

	// Exactly 30 does not clear the threshold.
	p := LearnerProfile{SkillLevels: map[string]int{"Addition": 30, "Counting": 31}}
	assert.Equal(t, float64(50), skillScore(item, p))
}

func TestInterestScore(t *testing.T) {
	p := sampleProfile()

	// Category match (50) plus one of two tags matching an interest (25).
	assert.Equal(t, float64(75), interestScore(sampleItem(), p))

	// No declared interests: flat default.
	assert.Equal(t, defaultInterestScore, interestScore(sampleItem(), LearnerProfile{}))

	// Tag-only match, case-insensitive substring in either direction.
	item := ContentItem{Category: "Science", Tags: []string{"MATH puzzles", "space"}}
	assert.Equal(t, float64(25), interestScore(item, p))
}

func TestStyleScore(t *testing.T) {
	p := LearnerProfile{LearningStyle: StyleKinesthetic}
	assert.Equal(t, float64(100), styleScore(ContentItem{Type: TypeGame}, p))
	assert.Equal(t, incompatibleStyleScore, styleScore(ContentItem{Type: TypeVideo}, p))

	mixed := LearnerProfile{LearningStyle: StyleMixed}
	for _, ct := range []ContentType{TypeActivity, TypeStory, TypeGame, TypeVideo, TypeLesson} {
		assert.Equal(t, float64(100), styleScore(ContentItem{Type: ct}, mixed))
	}
}

func TestDifficultyScore(t *testing.T) {
	adaptive := LearnerProfile{PreferredDifficulty: DifficultyAdaptive}
	assert.Equal(t, adaptiveDifficultyScore, difficultyScore(ContentItem{Difficulty: DifficultyHard}, adaptive))

	easy := LearnerProfile{PreferredDifficulty: DifficultyEasy}
	assert.Equal(t, float64(100), difficultyScore(ContentItem{Difficulty: DifficultyEasy}, easy))
	assert.Equal(t, float64(70), difficultyScore(ContentItem{Difficulty: DifficultyMedium}, easy))
	assert.Equal(t, float64(40), difficultyScore(ContentItem{Difficulty: DifficultyHard}, easy))
}

func TestPerformanceScore(t *testing.T) {
	item := ContentItem{Category: "Math", Skills: []string{"Counting"}}

	p := LearnerProfile{RecentPerformance: []PerformanceRecord{
		{ContentID: "a", Score: 80, Engagement: 60, ExcelledSkills: []string{"Counting"}},
		{ContentID: "b", Score: 100, Engagement: 100, ExcelledSkills: []string{"Reading"}},
	}}
	// Only the first record overlaps: (80+60)/2 = 70.
	assert.Equal(t, float64(70), performanceScore(item, p))

	// No overlapping history at all.
	assert.Equal(t, defaultPerformanceScore, performanceScore(item, LearnerProfile{}))
}

func TestEstimateGain(t *testing.T) {
	p := sampleProfile()

	// Addition is struggling: 50+15.
	assert.Equal(t, 65, EstimateGain(ContentItem{Skills: []string{"Addition"}}, p))
	// Reading is a strength: 50-10.
	assert.Equal(t, 40, EstimateGain(ContentItem{Skills: []string{"Reading"}}, p))
	// Neutral skill.
	assert.Equal(t, 50, EstimateGain(ContentItem{Skills: []string{"Counting"}}, p))
}

func TestEstimateGainClamped(t *testing.T) {
	// A skill listed in both sets nets +5; pile up enough to test the clamp.
	skills := make([]string, 12)
	for i := range skills {
		skills[i] = "Shapes"
	}
	p := LearnerProfile{
		StrugglingAreas: []string{"Shapes"},
		StrengthAreas:   []string{"Shapes"},
	}
	got := EstimateGain(ContentItem{Skills: skills}, p)
	assert.GreaterOrEqual(t, got, 0)
	assert.LessOrEqual(t, got, 100)

	many := LearnerProfile{StrengthAreas: []string{"Shapes"}}
	assert.Equal(t, 0, EstimateGain(ContentItem{Skills: skills}, many))
}

func TestExplainThresholdsAndOrder(t *testing.T) {
	p, c := sampleProfile(), sampleItem()
	reasons := Explain(c, p)
	require.NotEmpty(t, reasons)

	// Each reason's strength equals the recomputed sub-score.
	for _, r := range reasons {
		switch r.Type {
		case ReasonAgeMatch:
			assert.Equal(t, int(ageScore(c, p)), r.Strength)
		case ReasonSkillLevel:
			assert.Equal(t, int(skillScore(c, p)), r.Strength)
		case ReasonInterestMatch:
			assert.Equal(t, int(interestScore(c, p)), r.Strength)
		case ReasonLearningStyle:
			assert.Equal(t, int(styleScore(c, p)), r.Strength)
		default:
			t.Fatalf("unexpected reason type %q", r.Type)
		}
	}

	// Sorted descending by strength.
	for i := 1; i < len(reasons); i++ {
		assert.GreaterOrEqual(t, reasons[i-1].Strength, reasons[i].Strength)
	}
}

func TestExplainEmptyIsValid(t *testing.T) {
	// Nothing clears a threshold: wrong age, unknown skills, no interest
	// overlap, incompatible style.
	c := ContentItem{
		Type:       TypeVideo,
		Category:   "Music",
		Tags:       []string{"opera"},
		Skills:     []string{"Rhythm"},
		AgeRange:   "12-14",
		Difficulty: DifficultyHard,
	}
	p := LearnerProfile{
		AgeMonths:     48,
		SkillLevels:   map[string]int{"Rhythm": 5},
		Interests:     []string{"Dinosaurs"},
		LearningStyle: StyleKinesthetic,
	}
	assert.Empty(t, Explain(c, p))
}

func TestRecommendSortedAndComplete(t *testing.T) {
	p := sampleProfile()
	catalog := []ContentItem{
		{ID: "bad", Type: TypeVideo, Category: "Music", AgeRange: "12-14", Difficulty: DifficultyHard, Skills: []string{"Rhythm"}},
		sampleItem(),
		{ID: "mid", Type: TypeStory, Category: "Animals", AgeRange: "5+", Difficulty: DifficultyMedium, Duration: 30},
	}

	recs := Recommend(p, catalog)
	require.Len(t, recs, len(catalog), "no filtering: same cardinality as catalog")

	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
	for _, r := range recs {
		assert.GreaterOrEqual(t, r.Score, 0)
		assert.LessOrEqual(t, r.Score, 100)
	}
}

func TestRecommendAdaptations(t *testing.T) {
	p := LearnerProfile{
		LearningStyle:    StyleKinesthetic,
		AttentionSpan:    10,
		SocialPreference: SocialCollaborative,
	}
	c := ContentItem{ID: "v", Type: TypeVideo, Duration: 25}

	recs := Recommend(p, []ContentItem{c})
	require.Len(t, recs, 1)
	got := recs[0].Adaptations
	require.Len(t, got, 3, "all three rules fire, in rule-check order")
	assert.Contains(t, got[0], "shorter sessions")
	assert.Contains(t, got[1], "hands-on")
	assert.Contains(t, got[2], "Invite")
}

func TestEndToEndExample(t *testing.T) {
	p := LearnerProfile{
		AgeMonths:     72,
		SkillLevels:   map[string]int{"Addition": 20},
		Interests:     []string{"Math"},
		LearningStyle: StyleVisual,
	}
	c := ContentItem{
		ID:         "m1",
		Title:      "Addition Basics",
		Category:   "Math",
		Skills:     []string{"Addition"},
		Type:       TypeVideo,
		Difficulty: DifficultyEasy,
		AgeRange:   "6-8",
		Duration:   10,
	}

	// age=100, skill=0 (20 is under the cliff), interest=50 (category only),
	// style=100, performance=70: a moderate composite.
	recs := Recommend(p, []ContentItem{c})
	require.Len(t, recs, 1)
	r := recs[0]

	assert.GreaterOrEqual(t, r.Score, 55)
	assert.LessOrEqual(t, r.Score, 85)

	var types []string
	for _, reason := range r.Reasons {
		types = append(types, reason.Type)
	}
	assert.Contains(t, types, ReasonAgeMatch)
	assert.NotContains(t, types, ReasonSkillLevel, "20 proficiency does not clear the skill threshold")
}
