package model

import (
	"gorm.io/datatypes"
)

// ActivityRecord is one finished (or abandoned) session of a learner on a
// content item. Recent records feed the recommendation engine's performance
// factor.
// swagger:model ActivityRecord
type ActivityRecord struct {
	BaseModel
	LearnerID      uint                        `gorm:"index;not null" json:"learnerId"`
	ContentID      string                      `gorm:"size:36;index;not null" json:"contentId"`
	Score          int                         `gorm:"default:0" json:"score"`      // 0-100
	Engagement     int                         `gorm:"default:0" json:"engagement"` // 0-100
	ExcelledSkills datatypes.JSONSlice[string] `gorm:"type:json" json:"excelledSkills"`
	DurationSec    int                         `gorm:"default:0" json:"durationSec"`
	Completed      bool                        `gorm:"default:false" json:"completed"`
}

func (ActivityRecord) TableName() string {
	return "activity_records"
}
