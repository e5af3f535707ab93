package recommend

import (
	"fmt"
	"sort"
)

// Reason thresholds: a factor only becomes a reason when it is a strong
// signal, so weak matches don't clutter the UI.
const (
	reasonAgeThreshold      = 80
	reasonSkillThreshold    = 70
	reasonInterestThreshold = 75
	reasonStyleThreshold    = 80
)

const (
	ReasonAgeMatch      = "age_match"
	ReasonSkillLevel    = "skill_level"
	ReasonInterestMatch = "interest_match"
	ReasonLearningStyle = "learning_style"
)

// Explain re-derives the four highest-signal factors and returns a reason for
// each one that clears its threshold, sorted by descending strength. An empty
// list is a valid result, not an error.
func Explain(c ContentItem, p LearnerProfile) []Reason {
	reasons := make([]Reason, 0, 4)

	if s := int(ageScore(c, p)); s > reasonAgeThreshold {
		reasons = append(reasons, Reason{
			Type:        ReasonAgeMatch,
			Explanation: fmt.Sprintf("%s fits your child's age group (%s years)", c.Title, c.AgeRange),
			Strength:    s,
		})
	}
	if s := int(skillScore(c, p)); s > reasonSkillThreshold {
		reasons = append(reasons, Reason{
			Type:        ReasonSkillLevel,
			Explanation: fmt.Sprintf("Your child already has the skills %s builds on", c.Title),
			Strength:    s,
		})
	}
	if s := int(interestScore(c, p)); s > reasonInterestThreshold {
		reasons = append(reasons, Reason{
			Type:        ReasonInterestMatch,
			Explanation: fmt.Sprintf("Matches your child's interest in %s", c.Category),
			Strength:    s,
		})
	}
	if s := int(styleScore(c, p)); s > reasonStyleThreshold {
		reasons = append(reasons, Reason{
			Type:        ReasonLearningStyle,
			Explanation: fmt.Sprintf("A good fit for %s learners", p.LearningStyle),
			Strength:    s,
		})
	}

	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].Strength > reasons[j].Strength
	})
	return reasons
}

// adaptations returns free-text hints when an item structurally mismatches
// the learner. Rule order is fixed so output is stable.
func adaptations(c ContentItem, p LearnerProfile) []string {
	var out []string
	if p.AttentionSpan > 0 && p.AttentionSpan < c.Duration {
		out = append(out, fmt.Sprintf("Split into shorter sessions of about %d minutes to match the attention span", p.AttentionSpan))
	}
	if p.LearningStyle == StyleKinesthetic && c.Type == TypeVideo {
		out = append(out, "Add hands-on elements alongside the video, like pausing to act out scenes")
	}
	if p.SocialPreference == SocialCollaborative {
		out = append(out, "Invite a sibling or friend to join this activity")
	}
	return out
}
