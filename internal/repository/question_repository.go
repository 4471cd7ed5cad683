package repository

import (
	"learnsphere_backend/internal/model"

	"gorm.io/gorm"
)

// QuestionRepository 测评题库的数据访问
type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.QuizQuestion) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) Update(question *model.QuizQuestion) error {
	return r.DB.Save(question).Error
}

func (r *QuestionRepository) Delete(id string) error {
	return r.DB.Delete(&model.QuizQuestion{}, "id = ?", id).Error
}

func (r *QuestionRepository) FindByID(id string) (*model.QuizQuestion, error) {
	var question model.QuizQuestion
	err := r.DB.Where("id = ?", id).First(&question).Error
	return &question, err
}

// FindEnabled 获取启用的题目，按排序字段升序
func (r *QuestionRepository) FindEnabled() ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.DB.Where("enabled = ?", true).Order("`order` asc").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindAll(page, limit int, category string) ([]model.QuizQuestion, int64, error) {
	var questions []model.QuizQuestion
	var total int64

	query := r.DB.Model(&model.QuizQuestion{})
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("`order` asc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&questions).Error
	return questions, total, err
}
