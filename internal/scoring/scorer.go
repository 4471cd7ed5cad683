package scoring

import "math"

// Option 题目选项
type Option struct {
	ID        string `json:"id"`
	Text      string `json:"text,omitempty"`
	IsCorrect bool   `json:"isCorrect"`
}

// Question 测评题目（只读输入）
type Question struct {
	ID         string   `json:"id"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"` // basic / intermediate / advanced
	Text       string   `json:"text"`
	Options    []Option `json:"options"`
}

// Response 学习者对单题的作答
type Response struct {
	QuestionID       string  `json:"questionId"`
	SelectedOptionID string  `json:"selectedOptionId"`
	TimeSpentSeconds float64 `json:"timeSpentSeconds"`
	// IsCorrect 为空时由引擎根据所选选项推导
	IsCorrect *bool `json:"isCorrect,omitempty"`
}

// QuestionScore 单题得分明细
type QuestionScore struct {
	Score           float64 `json:"score"`
	Correctness     float64 `json:"correctnessScore"`
	TimeEfficiency  float64 `json:"timeEfficiency"`
	DifficultyBonus float64 `json:"difficultyBonus"`
}

// CategoryScore 单个类别的聚合得分，数值均在 [0,100]
type CategoryScore struct {
	Category       string   `json:"category"`
	Score          int      `json:"score"`
	Confidence     int      `json:"confidence"`
	TimeEfficiency int      `json:"timeEfficiency"`
	WeakPoints     []string `json:"weakPoints"`
	StrongPoints   []string `json:"strongPoints"`
}

// 固定权重：正确率 70%，答题速度 20%，难度加成 10%
const (
	weightCorrectness    = 0.70
	weightTimeEfficiency = 0.20
	weightDifficulty     = 0.10

	strongPointThreshold = 70
	weakPointThreshold   = 40
	pointTextLimit       = 50
)

// difficultyParams 返回题目难度对应的时间阈值（秒）与难度系数，
// 未识别的难度按 intermediate 处理
func difficultyParams(difficulty string) (threshold, multiplier float64) {
	switch difficulty {
	case "basic":
		return 45, 1.0
	case "advanced":
		return 90, 1.6
	default:
		return 60, 1.3
	}
}

// ScoreQuestion 计算单题得分：正确率、时间效率与难度加成的加权和
func ScoreQuestion(q Question, r Response, correct bool) QuestionScore {
	threshold, multiplier := difficultyParams(q.Difficulty)

	correctness := 0.0
	if correct {
		correctness = 1.0
	}

	// 恰好用满阈值得 0.5，更快线性加分（封顶1），更慢线性扣分（保底0）
	timeEfficiency := clamp01((threshold-r.TimeSpentSeconds)/threshold + 0.5)

	bonus := 0.0
	if correct {
		bonus = (multiplier - 1) * weightDifficulty
	}

	score := clamp((correctness*weightCorrectness+timeEfficiency*weightTimeEfficiency+bonus)*100, 0, 100)

	return QuestionScore{
		Score:           score,
		Correctness:     correctness,
		TimeEfficiency:  timeEfficiency,
		DifficultyBonus: bonus * 100,
	}
}

type categoryAccumulator struct {
	score          float64
	confidence     float64
	timeEfficiency float64
	count          int
	weakPoints     []string
	strongPoints   []string
}

// ScoreAssessment 聚合一次测评的全部作答，按题目类别输出得分。
// 题目中出现过的每个类别都会产出一条结果，即使该类别没有任何作答。
func ScoreAssessment(questions []Question, responses []Response) []CategoryScore {
	questionByID := make(map[string]Question, len(questions))
	accumulators := make(map[string]*categoryAccumulator)
	categoryOrder := []string{}

	for _, q := range questions {
		questionByID[q.ID] = q
		if _, ok := accumulators[q.Category]; !ok {
			accumulators[q.Category] = &categoryAccumulator{}
			categoryOrder = append(categoryOrder, q.Category)
		}
	}

	for _, r := range responses {
		q, ok := questionByID[r.QuestionID]
		if !ok {
			// 引用不存在题目的作答直接跳过
			continue
		}

		details := ScoreQuestion(q, r, responseCorrect(q, r))
		acc := accumulators[q.Category]
		acc.score += details.Score
		acc.confidence += details.Correctness
		acc.timeEfficiency += details.TimeEfficiency
		acc.count++

		if details.Score > strongPointThreshold {
			acc.strongPoints = append(acc.strongPoints, truncateText(q.Text))
		} else if details.Score < weakPointThreshold {
			acc.weakPoints = append(acc.weakPoints, truncateText(q.Text))
		}
	}

	results := make([]CategoryScore, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		acc := accumulators[category]
		cs := CategoryScore{
			Category:     category,
			WeakPoints:   dedupe(acc.weakPoints),
			StrongPoints: dedupe(acc.strongPoints),
		}
		if acc.count > 0 {
			n := float64(acc.count)
			cs.Score = clampInt(int(math.Round(acc.score/n)), 0, 100)
			cs.Confidence = clampInt(int(math.Round(acc.confidence/n*100)), 0, 100)
			cs.TimeEfficiency = clampInt(int(math.Round(acc.timeEfficiency/n*100)), 0, 100)
		}
		results = append(results, cs)
	}
	return results
}

// responseCorrect 优先使用作答自带的判定，否则查所选选项；查不到按答错处理
func responseCorrect(q Question, r Response) bool {
	if r.IsCorrect != nil {
		return *r.IsCorrect
	}
	for _, opt := range q.Options {
		if opt.ID == r.SelectedOptionID {
			return opt.IsCorrect
		}
	}
	return false
}

func truncateText(text string) string {
	runes := []rune(text)
	if len(runes) > pointTextLimit {
		runes = runes[:pointTextLimit]
	}
	return string(runes) + "..."
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := []string{}
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
