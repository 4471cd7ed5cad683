package service

import (
	"context"
	"learnsphere_backend/internal/repository"
	"learnsphere_backend/pkg/logger"
	"strconv"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const leaderboardKey = "leaderboard:xp"

// 每 500 XP 升一级
const xpPerLevel = 500

// GamificationService 经验值、等级与排行榜
type GamificationService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
}

func NewGamificationService(userRepo *repository.UserRepository, rdb *redis.Client) *GamificationService {
	return &GamificationService{
		UserRepo: userRepo,
		Redis:    rdb,
	}
}

// AwardXP 加经验并同步排行榜，排行榜失败不影响主流程
func (s *GamificationService) AwardXP(userID uint, amount int) error {
	if amount <= 0 {
		return nil
	}
	if err := s.UserRepo.AddXP(userID, amount); err != nil {
		return err
	}

	ctx := context.Background()
	if err := s.Redis.ZIncrBy(ctx, leaderboardKey, float64(amount), userKey(userID)).Err(); err != nil {
		logger.Log.Warn("failed to update leaderboard", zap.Uint("userId", userID), zap.Error(err))
	}
	return nil
}

func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/xpPerLevel + 1
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	XP     int    `json:"xp"`
	Level  int    `json:"level"`
}

// Leaderboard 取经验值前 limit 名
func (s *GamificationService) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	ctx := context.Background()
	members, err := s.Redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(members))
	for _, m := range members {
		if id, ok := parseUserKey(m.Member); ok {
			ids = append(ids, id)
		}
	}

	users, err := s.UserRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	userByID := make(map[uint]int, len(users))
	for i, u := range users {
		userByID[u.ID] = i
	}

	entries := make([]LeaderboardEntry, 0, len(members))
	for i, m := range members {
		id, ok := parseUserKey(m.Member)
		if !ok {
			continue
		}
		entry := LeaderboardEntry{
			Rank:   i + 1,
			UserID: id,
			XP:     int(m.Score),
			Level:  LevelForXP(int(m.Score)),
		}
		if idx, ok := userByID[id]; ok {
			entry.Name = users[idx].Name
			entry.Avatar = users[idx].Avatar
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func userKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func parseUserKey(member interface{}) (uint, bool) {
	s, ok := member.(string)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// Rank 查询用户当前排名（从1开始），未上榜返回0
func (s *GamificationService) Rank(userID uint) (int, error) {
	ctx := context.Background()
	rank, err := s.Redis.ZRevRank(ctx, leaderboardKey, userKey(userID)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int(rank) + 1, nil
}
