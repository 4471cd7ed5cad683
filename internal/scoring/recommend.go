package scoring

// CategoryResult 单个类别的测评结论，可直接渲染成报告卡片
type CategoryResult struct {
	Category        string           `json:"category"`
	Level           ProficiencyLevel `json:"level"`
	Score           int              `json:"score"`
	Recommendations []string         `json:"recommendations"`
}

const weakPointAdvice = "优先复盘答错的题目，重点攻克薄弱知识点"

// 三档通用建议，互斥且各贡献两条
var (
	lowTierAdvice = []string{
		"从基础教程重新梳理该类别的核心概念",
		"先做入门级练习，循序渐进建立信心",
	}
	midTierAdvice = []string{
		"针对薄弱环节安排专项练习",
		"结合实际案例加深对核心概念的理解",
	}
	highTierAdvice = []string{
		"尝试更高难度的综合题目挑战自己",
		"通过实战项目进一步提升熟练度",
	}
)

// 特定类别在未达标时追加的建议
var categoryAdvice = map[string][]string{
	"math": {
		"巩固线性代数与微积分等数学基础",
		"坚持每天做数学推导练习保持手感",
	},
	"programming": {
		"多写代码，培养调试和阅读代码的能力",
		"刷常见数据结构与算法题打牢编程功底",
	},
	"ml": {
		"系统学习经典机器学习算法的原理",
		"动手复现简单模型，从实践中加深理解",
	},
}

// BuildRecommendations 把类别得分转换为带等级和学习建议的测评结论
func BuildRecommendations(categoryScores []CategoryScore) []CategoryResult {
	results := make([]CategoryResult, 0, len(categoryScores))
	for _, cs := range categoryScores {
		result := CategoryResult{
			Category:        cs.Category,
			Level:           DeriveLevel(cs.Score),
			Score:           cs.Score,
			Recommendations: []string{},
		}

		if len(cs.WeakPoints) > 0 {
			result.Recommendations = append(result.Recommendations, weakPointAdvice)
		}

		switch {
		case cs.Score < 50:
			result.Recommendations = append(result.Recommendations, lowTierAdvice...)
		case cs.Score < 70:
			result.Recommendations = append(result.Recommendations, midTierAdvice...)
		default:
			result.Recommendations = append(result.Recommendations, highTierAdvice...)
		}

		if advice, ok := categoryAdvice[cs.Category]; ok && cs.Score < 70 {
			result.Recommendations = append(result.Recommendations, advice...)
		}

		results = append(results, result)
	}
	return results
}
