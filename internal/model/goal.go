package model

import "encoding/json"

// CatalogGoal 学习目标目录条目，前置条件/课程模块/职业方向以JSON存储，
// 评分时反序列化为引擎输入
type CatalogGoal struct {
	UUIDBase
	Title               string          `gorm:"size:255;not null" json:"title"`
	Description         string          `gorm:"type:text" json:"description"`
	Category            string          `gorm:"size:50;index;not null" json:"category"`
	Level               string          `gorm:"size:20;default:'beginner'" json:"level"`
	Prerequisites       json.RawMessage `gorm:"type:json" json:"prerequisites,omitempty"`       // []scoring.PrerequisiteGroup
	Modules             json.RawMessage `gorm:"type:json" json:"modules,omitempty"`             // []scoring.GoalModule
	CareerOpportunities json.RawMessage `gorm:"type:json" json:"careerOpportunities,omitempty"` // []scoring.CareerOpportunity
	Enabled             bool            `gorm:"default:true" json:"enabled"`
	Order               int             `gorm:"default:0" json:"order"`
}

func (CatalogGoal) TableName() string {
	return "catalog_goals"
}
