package model

import (
	"gorm.io/datatypes"
)

type ContentType string

const (
	ContentActivity ContentType = "activity"
	ContentStory    ContentType = "story"
	ContentGame     ContentType = "game"
	ContentVideo    ContentType = "video"
	ContentLesson   ContentType = "lesson"
)

// ContentItem is one catalog entry: an activity, story, game, video or
// lesson children can be recommended.
// swagger:model ContentItem
type ContentItem struct {
	UUIDBase
	Title       string                      `gorm:"size:255;not null" json:"title"`
	Description string                      `gorm:"type:text" json:"description"`
	Type        ContentType                 `gorm:"type:enum('activity','story','game','video','lesson');not null" json:"type"`
	Category    string                      `gorm:"size:100;index" json:"category"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:json" json:"tags"`
	Skills      datatypes.JSONSlice[string] `gorm:"type:json" json:"skills"`
	Difficulty  string                      `gorm:"type:enum('easy','medium','hard');default:'easy'" json:"difficulty"`
	AgeRange    string                      `gorm:"size:20" json:"ageRange"`    // "min-max" or "min+", years
	Duration    int                         `gorm:"default:10" json:"duration"` // minutes
	MediaURL    string                      `gorm:"size:255" json:"mediaUrl"`
	Thumbnail   string                      `gorm:"size:255" json:"thumbnail"`
	VideoFormat string                      `gorm:"size:50" json:"videoFormat"`
	MediaSize   int64                       `gorm:"default:0" json:"mediaSize"` // bytes
	Points      int                         `gorm:"default:10" json:"points"`   // stars for completing
	Published   bool                        `gorm:"default:true" json:"published"`
}

func (ContentItem) TableName() string {
	return "content_items"
}
