package repository

import (
	"learnsphere_backend/internal/model"

	"gorm.io/gorm"
)

// SubmissionRepository 测评提交记录的数据访问
type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(submission *model.AssessmentSubmission) error {
	return r.DB.Create(submission).Error
}

func (r *SubmissionRepository) Update(submission *model.AssessmentSubmission) error {
	return r.DB.Save(submission).Error
}

func (r *SubmissionRepository) FindByID(id string) (*model.AssessmentSubmission, error) {
	var submission model.AssessmentSubmission
	err := r.DB.Preload("User").Where("id = ?", id).First(&submission).Error
	return &submission, err
}

// FindLatestByUser 取用户最近一次提交
func (r *SubmissionRepository) FindLatestByUser(userID uint) (*model.AssessmentSubmission, error) {
	var submission model.AssessmentSubmission
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").First(&submission).Error
	return &submission, err
}

func (r *SubmissionRepository) FindAll(page, limit int) ([]model.AssessmentSubmission, int64, error) {
	var submissions []model.AssessmentSubmission
	var total int64

	if err := r.DB.Model(&model.AssessmentSubmission{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Preload("User").
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&submissions).Error
	return submissions, total, err
}
