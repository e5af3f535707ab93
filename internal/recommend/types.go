package recommend

// Package recommend computes content recommendations and learning paths for a
// single learner. Everything in here is pure computation over the caller's
// inputs: no database access, no caching, no shared state. Callers may invoke
// it from any number of goroutines.

type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleKinesthetic LearningStyle = "kinesthetic"
	StyleMixed       LearningStyle = "mixed"
)

type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyHard     Difficulty = "hard"
	DifficultyAdaptive Difficulty = "adaptive" // preference only, never on content
)

type ContentType string

const (
	TypeActivity ContentType = "activity"
	TypeStory    ContentType = "story"
	TypeGame     ContentType = "game"
	TypeVideo    ContentType = "video"
	TypeLesson   ContentType = "lesson"
)

type SocialPreference string

const (
	SocialSolo          SocialPreference = "solo"
	SocialCollaborative SocialPreference = "collaborative"
	SocialMixed         SocialPreference = "mixed"
)

// PerformanceRecord is one recent learning session outcome.
type PerformanceRecord struct {
	ContentID      string
	Score          int // 0-100
	Engagement     int // 0-100
	ExcelledSkills []string
}

// LearnerProfile is the read-only learner snapshot a caller assembles from
// stored data. Age is kept in months so toddler profiles keep resolution.
type LearnerProfile struct {
	AgeMonths            int
	SkillLevels          map[string]int // skill name -> proficiency 0-100
	Interests            []string
	LearningStyle        LearningStyle
	PreferredDifficulty  Difficulty
	RecentPerformance    []PerformanceRecord
	StrugglingAreas      []string
	StrengthAreas        []string
	AttentionSpan        int // minutes
	OptimalSessionLength int // minutes
	SocialPreference     SocialPreference
}

// ContentItem is one catalog entry as seen by this learner (Completed is
// learner-specific).
type ContentItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        ContentType `json:"type"`
	Category    string      `json:"category"`
	Tags        []string    `json:"tags"`
	Skills      []string    `json:"skills"`
	Difficulty  Difficulty  `json:"difficulty"`
	AgeRange    string      `json:"ageRange"` // "min-max" or "min+", in years
	Duration    int         `json:"duration"` // minutes
	Completed   bool        `json:"completed"`
}

// Reason explains one factor that pushed an item's score up.
type Reason struct {
	Type        string `json:"type"`
	Explanation string `json:"explanation"`
	Strength    int    `json:"strength"`
}

// ScoredRecommendation is a catalog item annotated for one learner. It is
// recomputed on every request and never persisted.
type ScoredRecommendation struct {
	ContentItem
	Score        int      `json:"recommendationScore"`
	Reasons      []Reason `json:"recommendationReasons"`
	LearningGain int      `json:"estimatedLearningGain"`
	Adaptations  []string `json:"adaptationSuggestions"`
}

// PathMilestone is one step of a learning path.
type PathMilestone struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Week        int      `json:"week"`
	Skills      []string `json:"skills"`
	ContentIDs  []string `json:"contentIds"`
	Assessment  string   `json:"assessmentCriteria"`
}

// LearningPath is a multi-week milestone sequence targeting a skill gap or a
// declared interest.
type LearningPath struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	EstimatedWeeks    int             `json:"estimatedWeeks"`
	TargetSkills      []string        `json:"targetSkills"`
	Difficulty        string          `json:"difficulty"` // beginner/intermediate/advanced
	Milestones        []PathMilestone `json:"milestones"`
	RecommendedIDs    []string        `json:"recommendedContent"`
	SuccessPrediction int             `json:"successPrediction"`
}
