package model

import (
	"gorm.io/datatypes"
)

// Learner is a child profile owned by a parent account. Slice and map fields
// are JSON columns; they feed the recommendation engine as-is.
// swagger:model Learner
type Learner struct {
	BaseModel
	ParentID             uint                               `gorm:"index;not null" json:"parentId"`
	Name                 string                             `gorm:"size:100;not null" json:"name"`
	AgeMonths            int                                `gorm:"not null" json:"ageMonths"`
	SkillLevels          datatypes.JSONType[map[string]int] `gorm:"type:json" json:"skillLevels"`
	Interests            datatypes.JSONSlice[string]        `gorm:"type:json" json:"interests"`
	LearningStyle        string                             `gorm:"size:20;default:'mixed'" json:"learningStyle"`
	PreferredDifficulty  string                             `gorm:"size:20;default:'adaptive'" json:"preferredDifficulty"`
	StrugglingAreas      datatypes.JSONSlice[string]        `gorm:"type:json" json:"strugglingAreas"`
	StrengthAreas        datatypes.JSONSlice[string]        `gorm:"type:json" json:"strengthAreas"`
	AttentionSpan        int                                `gorm:"default:15" json:"attentionSpan"`        // minutes
	OptimalSessionLength int                                `gorm:"default:20" json:"optimalSessionLength"` // minutes
	SocialPreference     string                             `gorm:"size:20;default:'mixed'" json:"socialPreference"`
	AvatarColor          string                             `gorm:"size:20" json:"avatarColor"`
}

func (Learner) TableName() string {
	return "learners"
}
