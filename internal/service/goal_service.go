package service

import (
	"context"
	"encoding/json"
	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/repository"
	"learnsphere_backend/internal/scoring"
	"learnsphere_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	goalCatalogCacheKey = "catalog:goals"
	goalCatalogCacheTTL = 5 * time.Minute
)

// GoalService 学习目标目录的业务逻辑：目录缓存、搜索与个性化推荐
type GoalService struct {
	GoalRepo *repository.GoalRepository
	Redis    *redis.Client
}

func NewGoalService(goalRepo *repository.GoalRepository, rdb *redis.Client) *GoalService {
	return &GoalService{
		GoalRepo: goalRepo,
		Redis:    rdb,
	}
}

// RecommendationResult 推荐接口的响应结构，两组均按匹配分降序
type RecommendationResult struct {
	Recommended []scoring.ScoredGoal `json:"recommended"`
	Others      []scoring.ScoredGoal `json:"others"`
}

// GetRecommendations 按用户画像对目录评分分组；profile 为 nil 时全部进入 others
func (s *GoalService) GetRecommendations(profile *scoring.Profile) (*RecommendationResult, error) {
	goals, err := s.catalogGoals()
	if err != nil {
		return nil, err
	}

	recommended, others := scoring.MatchGoals(goals, profile)
	return &RecommendationResult{
		Recommended: recommended,
		Others:      others,
	}, nil
}

// SearchGoals 关键词/类别/难度过滤，不评分
func (s *GoalService) SearchGoals(query, category, difficulty string) ([]scoring.Goal, error) {
	goals, err := s.catalogGoals()
	if err != nil {
		return nil, err
	}
	return scoring.FilterGoals(goals, query, category, difficulty), nil
}

// catalogGoals 读取目录并转换成引擎输入，优先走Redis缓存
func (s *GoalService) catalogGoals() ([]scoring.Goal, error) {
	ctx := context.Background()

	if cached, err := s.Redis.Get(ctx, goalCatalogCacheKey).Result(); err == nil {
		var goals []scoring.Goal
		if err := json.Unmarshal([]byte(cached), &goals); err == nil {
			return goals, nil
		}
	}

	records, err := s.GoalRepo.FindEnabled()
	if err != nil {
		return nil, err
	}

	goals := make([]scoring.Goal, 0, len(records))
	for i := range records {
		goals = append(goals, toEngineGoal(&records[i]))
	}

	if data, err := json.Marshal(goals); err == nil {
		if err := s.Redis.Set(ctx, goalCatalogCacheKey, data, goalCatalogCacheTTL).Err(); err != nil {
			logger.Log.Warn("failed to cache goal catalog", zap.Error(err))
		}
	}

	return goals, nil
}

func (s *GoalService) invalidateCatalogCache() {
	if err := s.Redis.Del(context.Background(), goalCatalogCacheKey).Err(); err != nil {
		logger.Log.Warn("failed to invalidate goal catalog cache", zap.Error(err))
	}
}

// toEngineGoal JSON列反序列化失败时保留空集合，不中断整个目录
func toEngineGoal(record *model.CatalogGoal) scoring.Goal {
	goal := scoring.Goal{
		ID:          record.ID,
		Title:       record.Title,
		Description: record.Description,
		Category:    record.Category,
		Level:       scoring.ParseLevel(record.Level),
	}

	if len(record.Prerequisites) > 0 {
		if err := json.Unmarshal(record.Prerequisites, &goal.Prerequisites); err != nil {
			logger.Log.Warn("bad prerequisites json", zap.String("goalId", record.ID), zap.Error(err))
		}
	}
	if len(record.Modules) > 0 {
		if err := json.Unmarshal(record.Modules, &goal.Modules); err != nil {
			logger.Log.Warn("bad modules json", zap.String("goalId", record.ID), zap.Error(err))
		}
	}
	if len(record.CareerOpportunities) > 0 {
		if err := json.Unmarshal(record.CareerOpportunities, &goal.CareerOpportunities); err != nil {
			logger.Log.Warn("bad career opportunities json", zap.String("goalId", record.ID), zap.Error(err))
		}
	}

	return goal
}

// CatalogGoalRequest 管理端创建/更新目录条目的请求结构
type CatalogGoalRequest struct {
	Title               string                      `json:"title" binding:"required,max=255"`
	Description         string                      `json:"description" binding:"max=2000"`
	Category            string                      `json:"category" binding:"required,max=50"`
	Level               string                      `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Prerequisites       []scoring.PrerequisiteGroup `json:"prerequisites"`
	Modules             []scoring.GoalModule        `json:"modules"`
	CareerOpportunities []scoring.CareerOpportunity `json:"careerOpportunities"`
	Enabled             *bool                       `json:"enabled"`
	Order               int                         `json:"order"`
}

func (s *GoalService) CreateGoal(req CatalogGoalRequest) (*model.CatalogGoal, error) {
	goal := &model.CatalogGoal{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Level:       string(scoring.ParseLevel(req.Level)),
		Enabled:     true,
		Order:       req.Order,
	}
	if req.Enabled != nil {
		goal.Enabled = *req.Enabled
	}
	if err := marshalGoalColumns(goal, req); err != nil {
		return nil, err
	}

	if err := s.GoalRepo.Create(goal); err != nil {
		return nil, err
	}
	s.invalidateCatalogCache()
	return goal, nil
}

func (s *GoalService) UpdateGoal(id string, req CatalogGoalRequest) (*model.CatalogGoal, error) {
	goal, err := s.GoalRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	goal.Title = req.Title
	goal.Description = req.Description
	goal.Category = req.Category
	goal.Level = string(scoring.ParseLevel(req.Level))
	goal.Order = req.Order
	if req.Enabled != nil {
		goal.Enabled = *req.Enabled
	}
	if err := marshalGoalColumns(goal, req); err != nil {
		return nil, err
	}

	if err := s.GoalRepo.Update(goal); err != nil {
		return nil, err
	}
	s.invalidateCatalogCache()
	return goal, nil
}

func (s *GoalService) DeleteGoal(id string) error {
	if err := s.GoalRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCatalogCache()
	return nil
}

func (s *GoalService) ListGoals(page, limit int) ([]model.CatalogGoal, int64, error) {
	return s.GoalRepo.FindAll(page, limit)
}

func marshalGoalColumns(goal *model.CatalogGoal, req CatalogGoalRequest) error {
	var err error
	if goal.Prerequisites, err = json.Marshal(req.Prerequisites); err != nil {
		return err
	}
	if goal.Modules, err = json.Marshal(req.Modules); err != nil {
		return err
	}
	goal.CareerOpportunities, err = json.Marshal(req.CareerOpportunities)
	return err
}
