package repository

import (
	"learnsphere_backend/internal/model"

	"gorm.io/gorm"
)

// GoalRepository 学习目标目录的数据访问
type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(goal *model.CatalogGoal) error {
	return r.DB.Create(goal).Error
}

func (r *GoalRepository) Update(goal *model.CatalogGoal) error {
	return r.DB.Save(goal).Error
}

func (r *GoalRepository) Delete(id string) error {
	return r.DB.Delete(&model.CatalogGoal{}, "id = ?", id).Error
}

func (r *GoalRepository) FindByID(id string) (*model.CatalogGoal, error) {
	var goal model.CatalogGoal
	err := r.DB.Where("id = ?", id).First(&goal).Error
	return &goal, err
}

// FindEnabled 获取全部启用的目录条目，按排序字段升序
func (r *GoalRepository) FindEnabled() ([]model.CatalogGoal, error) {
	var goals []model.CatalogGoal
	err := r.DB.Where("enabled = ?", true).Order("`order` asc").Find(&goals).Error
	return goals, err
}

func (r *GoalRepository) FindAll(page, limit int) ([]model.CatalogGoal, int64, error) {
	var goals []model.CatalogGoal
	var total int64

	if err := r.DB.Model(&model.CatalogGoal{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Order("`order` asc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&goals).Error
	return goals, total, err
}
