package model

import "time"

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:enum('student','teacher','admin');default:'student'" json:"role"`
	XP       int      `gorm:"default:0" json:"xp"`
	Avatar   string   `gorm:"size:255" json:"avatar"`
	Disabled bool     `gorm:"default:false" json:"disabled"`

	// 学习者画像，由入学测评回写；Assessed 为 false 时目标推荐走降级路径
	MathLevel        string `gorm:"size:20;default:'beginner'" json:"mathLevel"`
	ProgrammingLevel string `gorm:"size:20;default:'beginner'" json:"programmingLevel"`
	PreferredDomain  string `gorm:"size:50" json:"preferredDomain"`
	Assessed         bool   `gorm:"default:false" json:"assessed"`

	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
