package scoring

import (
	"math"
	"sort"
	"strings"
)

// Profile 学习者画像，调用方负责在入口处归一化成该结构
type Profile struct {
	MathLevel        Level  `json:"mathLevel"`
	ProgrammingLevel Level  `json:"programmingLevel"`
	PreferredDomain  string `json:"preferredDomain"`
}

// Skill 前置条件组内的单项技能要求
type Skill struct {
	Name  string `json:"name"`
	Level Level  `json:"level"`
}

// PrerequisiteGroup 一组前置条件，按类别名匹配学习者对应的水平
type PrerequisiteGroup struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

// GoalModule 学习目标下的课程模块，仅参与搜索匹配
type GoalModule struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CareerOpportunity 目标关联的职业方向，仅参与搜索匹配
type CareerOpportunity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Goal 候选学习目标（只读输入）
type Goal struct {
	ID                  string              `json:"id"`
	Title               string              `json:"title"`
	Description         string              `json:"description"`
	Category            string              `json:"category"`
	Level               Level               `json:"level"`
	Prerequisites       []PrerequisiteGroup `json:"prerequisites,omitempty"`
	Modules             []GoalModule        `json:"modules,omitempty"`
	CareerOpportunities []CareerOpportunity `json:"careerOpportunities,omitempty"`
}

// ScoredGoal 附加匹配得分后的目标，评分不修改原始输入
type ScoredGoal struct {
	Goal
	MatchScore  float64 `json:"matchScore"`
	Recommended bool    `json:"isRecommended"`
}

// 匹配规则的加分常量
const (
	mathBootstrapScore    = 50
	progBootstrapScore    = 45
	domainMatchScore      = 40
	prerequisiteScore     = 25
	difficultyExactScore  = 30
	difficultyCloseScore  = 20
	recommendThreshold    = 70
)

// MatchGoals 为每个目标计算匹配分并划分为推荐/其他两组。
// profile 为 nil 时不做任何评分，全部目标按原顺序进入 others。
func MatchGoals(goals []Goal, profile *Profile) (recommended, others []ScoredGoal) {
	recommended = []ScoredGoal{}
	others = []ScoredGoal{}

	if profile == nil {
		for _, g := range goals {
			others = append(others, ScoredGoal{Goal: g})
		}
		return recommended, others
	}

	scored := make([]ScoredGoal, 0, len(goals))
	for _, g := range goals {
		scored = append(scored, scoreGoal(g, profile))
	}

	// 整体按得分降序排序，再按推荐标记划分，两组内部保持降序
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	for _, sg := range scored {
		if sg.Recommended {
			recommended = append(recommended, sg)
		} else {
			others = append(others, sg)
		}
	}
	return recommended, others
}

func scoreGoal(g Goal, p *Profile) ScoredGoal {
	sg := ScoredGoal{Goal: g}

	// 规则1：数学零基础优先补数学
	if p.MathLevel == LevelBeginner && g.Category == "math" {
		sg.MatchScore += mathBootstrapScore
		sg.Recommended = true
	}

	// 规则2：编程零基础优先补编程
	if p.ProgrammingLevel == LevelBeginner && g.Category == "programming" {
		sg.MatchScore += progBootstrapScore
		sg.Recommended = true
	}

	// 规则3：基础扎实时匹配偏好方向
	solidBasics := p.MathLevel != LevelBeginner && p.ProgrammingLevel != LevelBeginner
	if solidBasics && g.Category == p.PreferredDomain {
		sg.MatchScore += domainMatchScore
		sg.Recommended = true
	}

	// 规则4：前置条件满足加分，不满足则一票否决推荐标记（得分保留）
	if meetsPrerequisites(g.Prerequisites, p) {
		sg.MatchScore += prerequisiteScore
	} else {
		sg.Recommended = false
	}

	// 规则5：目标难度与用户平均水平的贴合度
	avg := (float64(p.MathLevel.Ordinal()) + float64(p.ProgrammingLevel.Ordinal())) / 2
	diff := math.Abs(float64(g.Level.Ordinal()) - avg)
	switch {
	case diff == 0:
		sg.MatchScore += difficultyExactScore
	case diff <= 1:
		sg.MatchScore += difficultyCloseScore
	}

	// 规则6：必须同时命中推荐规则且总分超过阈值
	sg.Recommended = sg.Recommended && sg.MatchScore > recommendThreshold
	return sg
}

// meetsPrerequisites 所有前置条件组都满足才算通过，空列表视为满足
func meetsPrerequisites(groups []PrerequisiteGroup, p *Profile) bool {
	for _, group := range groups {
		category := strings.ToLower(group.Category)
		switch {
		case strings.Contains(category, "math"):
			if p.MathLevel.Ordinal() < maxSkillLevel(group.Skills) {
				return false
			}
		case strings.Contains(category, "programming"):
			if p.ProgrammingLevel.Ordinal() < maxSkillLevel(group.Skills) {
				return false
			}
		}
		// 其他类别的前置条件视为天然满足
	}
	return true
}

func maxSkillLevel(skills []Skill) int {
	required := 0
	for _, s := range skills {
		if ord := s.Level.Ordinal(); ord > required {
			required = ord
		}
	}
	return required
}

// FilterGoals 按关键词/类别/难度过滤目标，纯过滤不评分，保持输入顺序。
// category 或 difficulty 为 "all"（或空）时不限制对应维度。
func FilterGoals(goals []Goal, query, category, difficulty string) []Goal {
	q := strings.ToLower(strings.TrimSpace(query))
	matched := []Goal{}
	for _, g := range goals {
		if category != "" && category != "all" && g.Category != category {
			continue
		}
		if difficulty != "" && difficulty != "all" && string(g.Level) != difficulty {
			continue
		}
		if q != "" && !goalMatchesQuery(g, q) {
			continue
		}
		matched = append(matched, g)
	}
	return matched
}

func goalMatchesQuery(g Goal, q string) bool {
	if strings.Contains(strings.ToLower(g.Title), q) ||
		strings.Contains(strings.ToLower(g.Description), q) {
		return true
	}
	for _, m := range g.Modules {
		if strings.Contains(strings.ToLower(m.Title), q) ||
			strings.Contains(strings.ToLower(m.Description), q) {
			return true
		}
	}
	for _, c := range g.CareerOpportunities {
		if strings.Contains(strings.ToLower(c.Title), q) ||
			strings.Contains(strings.ToLower(c.Description), q) {
			return true
		}
	}
	return false
}
