package recommend

import (
	"fmt"
	"sort"
	"strings"
)

// Path construction minimums. Below these the path would be too thin to span
// multiple weeks, so none is emitted.
const (
	minSkillPathItems    = 3
	minInterestPathItems = 4
	maxSkillMilestones   = 4
	maxInterestItems     = 5
)

// Paths builds learning-path suggestions from an already-scored
// recommendation list. Two independent strategies run: one path per tracked
// skill with enough non-completed material, and one per declared interest.
// The same item may land in several paths; no dedup across paths. Output is
// sorted by descending success prediction.
func Paths(p LearnerProfile, recs []ScoredRecommendation) []LearningPath {
	available := make([]ScoredRecommendation, 0, len(recs))
	for _, r := range recs {
		if !r.Completed {
			available = append(available, r)
		}
	}

	var paths []LearningPath
	paths = append(paths, skillPaths(p, available)...)
	paths = append(paths, interestPaths(p, available)...)

	sort.SliceStable(paths, func(i, j int) bool {
		return paths[i].SuccessPrediction > paths[j].SuccessPrediction
	})
	return paths
}

func skillPaths(p LearnerProfile, available []ScoredRecommendation) []LearningPath {
	// Map iteration order is random; sort the keys so output is stable.
	skills := make([]string, 0, len(p.SkillLevels))
	for skill := range p.SkillLevels {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	var paths []LearningPath
	for _, skill := range skills {
		var matching []ScoredRecommendation
		for _, r := range available {
			if containsString(r.Skills, skill) {
				matching = append(matching, r)
			}
		}
		if len(matching) < minSkillPathItems {
			continue
		}

		// Easy material first so the path ramps up.
		sort.SliceStable(matching, func(i, j int) bool {
			return difficultyRank[matching[i].Difficulty] < difficultyRank[matching[j].Difficulty]
		})
		if len(matching) > maxSkillMilestones {
			matching = matching[:maxSkillMilestones]
		}

		proficiency := p.SkillLevels[skill]
		milestones := make([]PathMilestone, 0, len(matching))
		contentIDs := make([]string, 0, len(matching))
		week := 1
		for i, r := range matching {
			if i > 0 {
				week += sessionWeeks(r.Duration, p.OptimalSessionLength)
			}
			milestones = append(milestones, PathMilestone{
				Title:       r.Title,
				Description: fmt.Sprintf("Practice %s with %s", skill, r.Title),
				Week:        week,
				Skills:      []string{skill},
				ContentIDs:  []string{r.ID},
				Assessment:  fmt.Sprintf("Completes %s and shows progress in %s", r.Title, skill),
			})
			contentIDs = append(contentIDs, r.ID)
		}

		prediction := 60 + float64(proficiency)*0.3
		if prediction > 95 {
			prediction = 95
		}

		paths = append(paths, LearningPath{
			ID:                "skill-path-" + slug(skill),
			Title:             fmt.Sprintf("Building %s", skill),
			Description:       fmt.Sprintf("A step-by-step path to strengthen %s", skill),
			EstimatedWeeks:    week,
			TargetSkills:      []string{skill},
			Difficulty:        proficiencyLabel(proficiency),
			Milestones:        milestones,
			RecommendedIDs:    contentIDs,
			SuccessPrediction: int(prediction),
		})
	}
	return paths
}

func interestPaths(p LearnerProfile, available []ScoredRecommendation) []LearningPath {
	var paths []LearningPath
	for _, interest := range p.Interests {
		var matching []ScoredRecommendation
		for _, r := range available {
			if r.Category == interest || tagMatchesAny(interest, r.Tags) {
				matching = append(matching, r)
			}
		}
		if len(matching) < minInterestPathItems {
			continue
		}

		sort.SliceStable(matching, func(i, j int) bool {
			return matching[i].Score > matching[j].Score
		})
		if len(matching) > maxInterestItems {
			matching = matching[:maxInterestItems]
		}

		milestones := make([]PathMilestone, 0, len(matching))
		contentIDs := make([]string, 0, len(matching))
		skillSet := make(map[string]bool)
		var targetSkills []string
		for i, r := range matching {
			milestones = append(milestones, PathMilestone{
				Title:       r.Title,
				Description: fmt.Sprintf("Explore %s through %s", interest, r.Title),
				Week:        i + 1,
				Skills:      r.Skills,
				ContentIDs:  []string{r.ID},
				Assessment:  fmt.Sprintf("Engages with %s for a full session", r.Title),
			})
			contentIDs = append(contentIDs, r.ID)
			for _, skill := range r.Skills {
				if !skillSet[skill] {
					skillSet[skill] = true
					targetSkills = append(targetSkills, skill)
				}
			}
		}

		paths = append(paths, LearningPath{
			ID:                "interest-path-" + slug(interest),
			Title:             fmt.Sprintf("Exploring %s", interest),
			Description:       fmt.Sprintf("A weekly journey through your child's favorite topic, %s", interest),
			EstimatedWeeks:    len(milestones),
			TargetSkills:      targetSkills,
			Difficulty:        "intermediate",
			Milestones:        milestones,
			RecommendedIDs:    contentIDs,
			SuccessPrediction: 80,
		})
	}
	return paths
}

// sessionWeeks is how many weeks one item occupies given how long the learner
// can productively work per session.
func sessionWeeks(duration, sessionLength int) int {
	if sessionLength <= 0 {
		return 1
	}
	weeks := (duration + sessionLength - 1) / sessionLength
	if weeks < 1 {
		weeks = 1
	}
	return weeks
}

func proficiencyLabel(proficiency int) string {
	switch {
	case proficiency < 30:
		return "beginner"
	case proficiency < 70:
		return "intermediate"
	default:
		return "advanced"
	}
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
