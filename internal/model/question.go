package model

import "encoding/json"

// QuizQuestion 入学测评题目
type QuizQuestion struct {
	UUIDBase
	Category    string          `gorm:"size:50;index;not null" json:"category"`
	Difficulty  string          `gorm:"size:20;default:'intermediate'" json:"difficulty"` // basic / intermediate / advanced
	Text        string          `gorm:"type:text;not null" json:"text"`
	Options     json.RawMessage `gorm:"type:json" json:"options"` // []scoring.Option（含isCorrect，下发学生端前须脱敏）
	Explanation string          `gorm:"type:text" json:"explanation"`
	Enabled     bool            `gorm:"default:true" json:"enabled"`
	Order       int             `gorm:"default:0" json:"order"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
