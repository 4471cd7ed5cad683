package scoring

// Level 三级水平标签（学习者属性与目标/前置要求共用）
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Ordinal 返回水平的序号，beginner < intermediate < advanced。
// 未识别的字符串按最低档处理，保证比较行为保守而不中断评分。
func (l Level) Ordinal() int {
	switch l {
	case LevelIntermediate:
		return 1
	case LevelAdvanced:
		return 2
	default:
		return 0
	}
}

// ParseLevel 归一化外部输入的水平字符串，未知值回落到 beginner
func ParseLevel(s string) Level {
	switch Level(s) {
	case LevelIntermediate:
		return LevelIntermediate
	case LevelAdvanced:
		return LevelAdvanced
	default:
		return LevelBeginner
	}
}

// ProficiencyLevel 评估报告使用的四级熟练度，与 Level 是两套独立的枚举
type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "beginner"
	ProficiencyIntermediate ProficiencyLevel = "intermediate"
	ProficiencyAdvanced     ProficiencyLevel = "advanced"
	ProficiencyExpert       ProficiencyLevel = "expert"
)

// DeriveLevel 按分数阈值推导熟练度等级
func DeriveLevel(score int) ProficiencyLevel {
	switch {
	case score >= 85:
		return ProficiencyExpert
	case score >= 70:
		return ProficiencyAdvanced
	case score >= 50:
		return ProficiencyIntermediate
	default:
		return ProficiencyBeginner
	}
}

// ToLevel 将四级熟练度映射回三级水平，用于回写用户档案
func (p ProficiencyLevel) ToLevel() Level {
	switch p {
	case ProficiencyExpert, ProficiencyAdvanced:
		return LevelAdvanced
	case ProficiencyIntermediate:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}
