package model

import "encoding/json"

// AssessmentSubmission 一次入学测评的提交与评分结果
type AssessmentSubmission struct {
	UUIDBase
	UserID         uint            `gorm:"index;type:bigint unsigned" json:"userId"`
	User           *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Responses      json.RawMessage `gorm:"type:json" json:"responses"`      // []scoring.Response
	CategoryScores json.RawMessage `gorm:"type:json" json:"categoryScores"` // []scoring.CategoryScore
	Results        json.RawMessage `gorm:"type:json" json:"results"`        // []scoring.CategoryResult
	TotalScore     int             `gorm:"default:0" json:"totalScore"`     // 各类别得分均值
	XPAwarded      int             `gorm:"default:0" json:"xpAwarded"`
}

func (AssessmentSubmission) TableName() string {
	return "assessment_submissions"
}
