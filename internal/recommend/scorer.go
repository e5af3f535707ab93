package recommend

import (
	"math"
	"strconv"
	"strings"
)

// Factor weights. They sum to 1 so the composite stays in 0-100.
const (
	weightAge         = 0.20
	weightSkill       = 0.25
	weightInterest    = 0.20
	weightStyle       = 0.15
	weightDifficulty  = 0.10
	weightPerformance = 0.10
)

// Defaults used when a factor has nothing to go on.
const (
	defaultAgeScore         = 70.0 // unparseable age range
	defaultSkillScore       = 50.0 // item requires no skills
	defaultInterestScore    = 50.0 // learner declared no interests
	defaultPerformanceScore = 70.0 // no overlapping history
	adaptiveDifficultyScore = 85.0
	incompatibleStyleScore  = 60.0
)

// styleTypes maps a learning style to the content types that suit it.
var styleTypes = map[LearningStyle]map[ContentType]bool{
	StyleVisual:      {TypeVideo: true, TypeStory: true, TypeActivity: true},
	StyleAuditory:    {TypeVideo: true, TypeLesson: true, TypeActivity: true},
	StyleKinesthetic: {TypeGame: true, TypeActivity: true},
	StyleMixed:       {TypeActivity: true, TypeStory: true, TypeGame: true, TypeVideo: true, TypeLesson: true},
}

var difficultyRank = map[Difficulty]int{
	DifficultyEasy:   0,
	DifficultyMedium: 1,
	DifficultyHard:   2,
}

// Score computes the weighted match score between a content item and a
// learner profile. Always in [0,100] and never fails: every factor has a
// documented default for missing or malformed data.
func Score(c ContentItem, p LearnerProfile) int {
	sum := weightAge*ageScore(c, p) +
		weightSkill*skillScore(c, p) +
		weightInterest*interestScore(c, p) +
		weightStyle*styleScore(c, p) +
		weightDifficulty*difficultyScore(c, p) +
		weightPerformance*performanceScore(c, p)
	return int(math.Round(sum))
}

// ageScore parses ranges like "6-8" (inclusive) or "4+". A learner inside the
// range scores 100; outside, the score decays 25 points per year of distance
// from the nearest boundary, floored at 0.
func ageScore(c ContentItem, p LearnerProfile) float64 {
	years := p.AgeMonths / 12

	r := strings.TrimSpace(c.AgeRange)
	switch {
	case strings.Contains(r, "-"):
		parts := strings.SplitN(r, "-", 2)
		min, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		max, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil {
			return defaultAgeScore
		}
		if years >= min && years <= max {
			return 100
		}
		dist := min - years
		if years > max {
			dist = years - max
		}
		return clamp(100 - float64(dist)*25)
	case strings.HasSuffix(r, "+"):
		min, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(r, "+")))
		if err != nil {
			return defaultAgeScore
		}
		if years >= min {
			return 100
		}
		return clamp(100 - float64(min-years)*25)
	default:
		return defaultAgeScore
	}
}

// skillScore is the fraction of required skills the learner already holds at
// proficiency above 30, scaled to 0-100. Proficiencies at or below the
// threshold count as unmet, even 29 vs 31 (a sharp cliff, kept as-is).
func skillScore(c ContentItem, p LearnerProfile) float64 {
	if len(c.Skills) == 0 {
		return defaultSkillScore
	}
	met := 0
	for _, skill := range c.Skills {
		if p.SkillLevels[skill] > 30 {
			met++
		}
	}
	return float64(met) / float64(len(c.Skills)) * 100
}

// interestScore grants 50 points for a category the learner declared, plus up
// to 50 more for the share of tags that substring-match an interest in either
// direction, case-insensitively.
func interestScore(c ContentItem, p LearnerProfile) float64 {
	if len(p.Interests) == 0 {
		return defaultInterestScore
	}

	score := 0.0
	for _, interest := range p.Interests {
		if interest == c.Category {
			score += 50
			break
		}
	}

	if len(c.Tags) > 0 {
		matched := 0
		for _, tag := range c.Tags {
			if tagMatchesAny(tag, p.Interests) {
				matched++
			}
		}
		score += float64(matched) / float64(len(c.Tags)) * 50
	}

	return clamp(score)
}

func tagMatchesAny(tag string, interests []string) bool {
	t := strings.ToLower(tag)
	for _, interest := range interests {
		i := strings.ToLower(interest)
		if strings.Contains(t, i) || strings.Contains(i, t) {
			return true
		}
	}
	return false
}

// styleScore is binary: 100 for a content type compatible with the learner's
// style, 60 otherwise.
func styleScore(c ContentItem, p LearnerProfile) float64 {
	if styleTypes[p.LearningStyle][c.Type] {
		return 100
	}
	return incompatibleStyleScore
}

// difficultyScore penalizes 30 points per step of distance on the
// easy/medium/hard scale. Adaptive learners get a flat 85.
func difficultyScore(c ContentItem, p LearnerProfile) float64 {
	if p.PreferredDifficulty == DifficultyAdaptive {
		return adaptiveDifficultyScore
	}
	if p.PreferredDifficulty == c.Difficulty {
		return 100
	}
	dist := difficultyRank[c.Difficulty] - difficultyRank[p.PreferredDifficulty]
	if dist < 0 {
		dist = -dist
	}
	return clamp(100 - float64(dist)*30)
}

// performanceScore averages score and engagement across recent sessions that
// touched this item's skills or category.
func performanceScore(c ContentItem, p LearnerProfile) float64 {
	total, n := 0.0, 0
	for _, rec := range p.RecentPerformance {
		if !recordOverlaps(rec, c) {
			continue
		}
		total += (float64(rec.Score) + float64(rec.Engagement)) / 2
		n++
	}
	if n == 0 {
		return defaultPerformanceScore
	}
	return total / float64(n)
}

func recordOverlaps(rec PerformanceRecord, c ContentItem) bool {
	for _, skill := range rec.ExcelledSkills {
		if skill == c.Category {
			return true
		}
		for _, want := range c.Skills {
			if skill == want {
				return true
			}
		}
	}
	return false
}

// EstimateGain projects how much the learner stands to gain from an item:
// base 50, +15 per skill in a struggling area, -10 per skill already a
// strength, clamped to [0,100].
func EstimateGain(c ContentItem, p LearnerProfile) int {
	gain := 50.0
	for _, skill := range c.Skills {
		if containsString(p.StrugglingAreas, skill) {
			gain += 15
		}
		if containsString(p.StrengthAreas, skill) {
			gain -= 10
		}
	}
	return int(clamp(gain))
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
