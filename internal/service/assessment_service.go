package service

import (
	"encoding/json"
	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/repository"
	"learnsphere_backend/internal/scoring"
	"learnsphere_backend/internal/util"
	"learnsphere_backend/pkg/logger"
	"math"
	"strconv"

	"go.uber.org/zap"
)

// AssessmentService 入学测评：下发题目、评分、生成报告并回写用户画像
type AssessmentService struct {
	QuestionRepo   *repository.QuestionRepository
	SubmissionRepo *repository.SubmissionRepository
	UserRepo       *repository.UserRepository
	Gamification   *GamificationService
}

func NewAssessmentService(
	questionRepo *repository.QuestionRepository,
	submissionRepo *repository.SubmissionRepository,
	userRepo *repository.UserRepository,
	gamification *GamificationService,
) *AssessmentService {
	return &AssessmentService{
		QuestionRepo:   questionRepo,
		SubmissionRepo: submissionRepo,
		UserRepo:       userRepo,
		Gamification:   gamification,
	}
}

// StudentOption 学生端选项视图，不含答案标记
type StudentOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// StudentQuestion 学生端题目视图
type StudentQuestion struct {
	ID         string          `json:"id"`
	Category   string          `json:"category"`
	Difficulty string          `json:"difficulty"`
	Text       string          `json:"text"`
	Options    []StudentOption `json:"options"`
}

// GetQuizQuestions 下发启用的测评题，选项脱敏
func (s *AssessmentService) GetQuizQuestions() ([]StudentQuestion, error) {
	records, err := s.QuestionRepo.FindEnabled()
	if err != nil {
		return nil, err
	}

	questions := make([]StudentQuestion, 0, len(records))
	for i := range records {
		q := toEngineQuestion(&records[i])
		sq := StudentQuestion{
			ID:         q.ID,
			Category:   q.Category,
			Difficulty: q.Difficulty,
			Text:       q.Text,
			Options:    make([]StudentOption, 0, len(q.Options)),
		}
		for _, opt := range q.Options {
			sq.Options = append(sq.Options, StudentOption{ID: opt.ID, Text: opt.Text})
		}
		questions = append(questions, sq)
	}
	return questions, nil
}

func toEngineQuestion(record *model.QuizQuestion) scoring.Question {
	q := scoring.Question{
		ID:         record.ID,
		Category:   record.Category,
		Difficulty: record.Difficulty,
		Text:       record.Text,
	}
	if len(record.Options) > 0 {
		if err := json.Unmarshal(record.Options, &q.Options); err != nil {
			logger.Log.Warn("bad options json", zap.String("questionId", record.ID), zap.Error(err))
		}
	}
	return q
}

// SubmitRequest 测评提交请求
type SubmitRequest struct {
	Responses       []scoring.Response `json:"responses" binding:"required"`
	PreferredDomain string             `json:"preferredDomain" binding:"max=50"`
}

// SubmitResult 测评提交的完整反馈
type SubmitResult struct {
	SubmissionID   string                   `json:"submissionId"`
	CategoryScores []scoring.CategoryScore  `json:"categoryScores"`
	Results        []scoring.CategoryResult `json:"results"`
	TotalScore     int                      `json:"totalScore"`
	XPAwarded      int                      `json:"xpAwarded"`
}

// Submit 对一次完整作答评分、持久化并回写画像与经验值
func (s *AssessmentService) Submit(userID uint, req SubmitRequest) (*SubmitResult, error) {
	if len(req.Responses) == 0 {
		return nil, util.ErrEmptySubmission
	}

	records, err := s.QuestionRepo.FindEnabled()
	if err != nil {
		return nil, err
	}
	questions := make([]scoring.Question, 0, len(records))
	for i := range records {
		questions = append(questions, toEngineQuestion(&records[i]))
	}

	categoryScores := scoring.ScoreAssessment(questions, req.Responses)
	results := scoring.BuildRecommendations(categoryScores)

	totalScore := 0
	xp := 0
	if len(categoryScores) > 0 {
		sum := 0
		for _, cs := range categoryScores {
			sum += cs.Score
		}
		totalScore = int(math.Round(float64(sum) / float64(len(categoryScores))))
		xp = sum / 10
	}

	submission := &model.AssessmentSubmission{
		UserID:     userID,
		TotalScore: totalScore,
		XPAwarded:  xp,
	}
	if submission.Responses, err = json.Marshal(req.Responses); err != nil {
		return nil, err
	}
	if submission.CategoryScores, err = json.Marshal(categoryScores); err != nil {
		return nil, err
	}
	if submission.Results, err = json.Marshal(results); err != nil {
		return nil, err
	}

	if err := s.SubmissionRepo.Create(submission); err != nil {
		return nil, err
	}

	s.updateProfile(userID, req.PreferredDomain, results)

	if err := s.Gamification.AwardXP(userID, xp); err != nil {
		logger.Log.Warn("failed to award assessment xp", zap.Uint("userId", userID), zap.Error(err))
	}

	return &SubmitResult{
		SubmissionID:   submission.ID,
		CategoryScores: categoryScores,
		Results:        results,
		TotalScore:     totalScore,
		XPAwarded:      xp,
	}, nil
}

// updateProfile 用math/programming两个类别的测评结论回写三级水平画像
func (s *AssessmentService) updateProfile(userID uint, preferredDomain string, results []scoring.CategoryResult) {
	mathLevel := scoring.LevelBeginner
	programmingLevel := scoring.LevelBeginner
	for _, r := range results {
		switch r.Category {
		case "math":
			mathLevel = r.Level.ToLevel()
		case "programming":
			programmingLevel = r.Level.ToLevel()
		}
	}

	if preferredDomain == "" {
		if user, err := s.UserRepo.FindByID(userID); err == nil {
			preferredDomain = user.PreferredDomain
		}
	}

	if err := s.UserRepo.UpdateProfile(userID, string(mathLevel), string(programmingLevel), preferredDomain); err != nil {
		logger.Log.Error("failed to update learner profile", zap.Uint("userId", userID), zap.Error(err))
	}
}

// Report 用户最近一次测评报告
type Report struct {
	SubmissionID   string                   `json:"submissionId"`
	CategoryScores []scoring.CategoryScore  `json:"categoryScores"`
	Results        []scoring.CategoryResult `json:"results"`
	TotalScore     int                      `json:"totalScore"`
	SubmittedAt    string                   `json:"submittedAt"`
}

func (s *AssessmentService) GetLatestReport(userID uint) (*Report, error) {
	submission, err := s.SubmissionRepo.FindLatestByUser(userID)
	if err != nil {
		return nil, err
	}

	report := &Report{
		SubmissionID: submission.ID,
		TotalScore:   submission.TotalScore,
		SubmittedAt:  submission.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if err := json.Unmarshal(submission.CategoryScores, &report.CategoryScores); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(submission.Results, &report.Results); err != nil {
		return nil, err
	}
	return report, nil
}

// ReportSummary 测评报告的纯文本摘要，用于注入AI助教的上下文
func (s *AssessmentService) ReportSummary(userID uint) string {
	report, err := s.GetLatestReport(userID)
	if err != nil {
		return ""
	}

	summary := "学生最近一次入学测评结果："
	for _, r := range report.Results {
		summary += "\n- " + r.Category + "：" + string(r.Level) + "（" + strconv.Itoa(r.Score) + "分）"
	}
	return summary
}

func (s *AssessmentService) ListSubmissions(page, limit int) ([]model.AssessmentSubmission, int64, error) {
	return s.SubmissionRepo.FindAll(page, limit)
}

// QuestionRequest 管理端题目请求结构
type QuestionRequest struct {
	Category    string           `json:"category" binding:"required,max=50"`
	Difficulty  string           `json:"difficulty" binding:"omitempty,oneof=basic intermediate advanced"`
	Text        string           `json:"text" binding:"required"`
	Options     []scoring.Option `json:"options" binding:"required,min=2"`
	Explanation string           `json:"explanation"`
	Enabled     *bool            `json:"enabled"`
	Order       int              `json:"order"`
}

func (s *AssessmentService) CreateQuestion(req QuestionRequest) (*model.QuizQuestion, error) {
	question := &model.QuizQuestion{
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Text:        req.Text,
		Explanation: req.Explanation,
		Enabled:     true,
		Order:       req.Order,
	}
	if question.Difficulty == "" {
		question.Difficulty = "intermediate"
	}
	if req.Enabled != nil {
		question.Enabled = *req.Enabled
	}

	var err error
	if question.Options, err = json.Marshal(req.Options); err != nil {
		return nil, err
	}

	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *AssessmentService) UpdateQuestion(id string, req QuestionRequest) (*model.QuizQuestion, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	question.Category = req.Category
	if req.Difficulty != "" {
		question.Difficulty = req.Difficulty
	}
	question.Text = req.Text
	question.Explanation = req.Explanation
	question.Order = req.Order
	if req.Enabled != nil {
		question.Enabled = *req.Enabled
	}
	if question.Options, err = json.Marshal(req.Options); err != nil {
		return nil, err
	}

	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *AssessmentService) DeleteQuestion(id string) error {
	return s.QuestionRepo.Delete(id)
}

func (s *AssessmentService) ListQuestions(page, limit int, category string) ([]model.QuizQuestion, int64, error) {
	return s.QuestionRepo.FindAll(page, limit, category)
}
