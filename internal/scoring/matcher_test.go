package scoring

import "testing"

func TestMatchGoalsNilProfile(t *testing.T) {
	goals := []Goal{
		{ID: "g1", Category: "math", Level: LevelBeginner},
		{ID: "g2", Category: "ml", Level: LevelAdvanced},
	}

	recommended, others := MatchGoals(goals, nil)

	if len(recommended) != 0 {
		t.Errorf("expected no recommendations without a profile, got %d", len(recommended))
	}
	if len(others) != len(goals) {
		t.Fatalf("expected %d goals in others, got %d", len(goals), len(others))
	}
	for i, sg := range others {
		if sg.ID != goals[i].ID {
			t.Errorf("others[%d].ID = %q, want %q (input order preserved)", i, sg.ID, goals[i].ID)
		}
		if sg.MatchScore != 0 || sg.Recommended {
			t.Errorf("goal %q should be unscored, got score=%v recommended=%v", sg.ID, sg.MatchScore, sg.Recommended)
		}
	}
}

func TestMatchGoalsBeginnerMathBootstrap(t *testing.T) {
	profile := &Profile{
		MathLevel:        LevelBeginner,
		ProgrammingLevel: LevelIntermediate,
		PreferredDomain:  "ml",
	}
	goals := []Goal{{ID: "math101", Category: "math", Level: LevelBeginner}}

	recommended, others := MatchGoals(goals, profile)

	if len(recommended) != 1 || len(others) != 0 {
		t.Fatalf("expected the math goal recommended, got recommended=%d others=%d", len(recommended), len(others))
	}
	// 规则1 +50，空前置 +25，难度差 0.5 +20
	if got := recommended[0].MatchScore; got != 95 {
		t.Errorf("MatchScore = %v, want 95", got)
	}
}

func TestMatchGoalsUnmetPrerequisites(t *testing.T) {
	profile := &Profile{
		MathLevel:        LevelBeginner,
		ProgrammingLevel: LevelIntermediate,
		PreferredDomain:  "ml",
	}
	goals := []Goal{{
		ID:       "nlp-adv",
		Category: "nlp",
		Level:    LevelAdvanced,
		Prerequisites: []PrerequisiteGroup{
			{Category: "math", Skills: []Skill{{Name: "calculus", Level: LevelAdvanced}}},
		},
	}}

	recommended, others := MatchGoals(goals, profile)

	if len(recommended) != 0 {
		t.Fatalf("goal with unmet prerequisites must not be recommended")
	}
	if len(others) != 1 {
		t.Fatalf("expected 1 goal in others, got %d", len(others))
	}
	if got := others[0].MatchScore; got != 0 {
		t.Errorf("MatchScore = %v, want 0 (no rule fires, difficulty gap 1.5)", got)
	}
}

func TestMatchGoalsPrerequisiteVeto(t *testing.T) {
	// 规则1命中拿到高分，但前置不满足必须否决推荐标记
	profile := &Profile{
		MathLevel:        LevelBeginner,
		ProgrammingLevel: LevelBeginner,
		PreferredDomain:  "math",
	}
	goals := []Goal{{
		ID:       "math-deep",
		Category: "math",
		Level:    LevelBeginner,
		Prerequisites: []PrerequisiteGroup{
			{Category: "programming basics", Skills: []Skill{{Name: "python", Level: LevelIntermediate}}},
		},
	}}

	recommended, others := MatchGoals(goals, profile)

	if len(recommended) != 0 {
		t.Fatal("veto must override the bootstrap recommendation")
	}
	// 规则1 +50，前置失败无 +25，难度差 0 +30
	if got := others[0].MatchScore; got != 80 {
		t.Errorf("MatchScore = %v, want 80 (score survives the veto)", got)
	}
	if others[0].Recommended {
		t.Error("Recommended must be false after the veto")
	}
}

func TestMatchGoalsDomainPreference(t *testing.T) {
	profile := &Profile{
		MathLevel:        LevelIntermediate,
		ProgrammingLevel: LevelAdvanced,
		PreferredDomain:  "dl",
	}
	goals := []Goal{
		{ID: "dl-goal", Category: "dl", Level: LevelIntermediate},
		{ID: "nlp-goal", Category: "nlp", Level: LevelIntermediate},
	}

	recommended, others := MatchGoals(goals, profile)

	if len(recommended) != 1 || recommended[0].ID != "dl-goal" {
		t.Fatalf("expected only the preferred-domain goal recommended, got %+v", recommended)
	}
	// 规则3 +40，空前置 +25，avg=1.5 与 intermediate 差 0.5 +20
	if got := recommended[0].MatchScore; got != 85 {
		t.Errorf("MatchScore = %v, want 85", got)
	}
	if len(others) != 1 || others[0].ID != "nlp-goal" {
		t.Fatalf("expected the non-preferred goal in others, got %+v", others)
	}
}

func TestMatchGoalsPartitionAndOrder(t *testing.T) {
	profile := &Profile{
		MathLevel:        LevelBeginner,
		ProgrammingLevel: LevelBeginner,
		PreferredDomain:  "ml",
	}
	goals := []Goal{
		{ID: "a", Category: "nlp", Level: LevelAdvanced},
		{ID: "b", Category: "math", Level: LevelBeginner},
		{ID: "c", Category: "programming", Level: LevelBeginner},
		{ID: "d", Category: "dl", Level: LevelIntermediate},
	}

	recommended, others := MatchGoals(goals, profile)

	seen := map[string]int{}
	for _, sg := range recommended {
		seen[sg.ID]++
	}
	for _, sg := range others {
		seen[sg.ID]++
	}
	if len(seen) != len(goals) {
		t.Errorf("partition lost goals: got %d distinct, want %d", len(seen), len(goals))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("goal %q appears %d times across partitions", id, n)
		}
	}

	for _, list := range [][]ScoredGoal{recommended, others} {
		for i := 1; i < len(list); i++ {
			if list[i].MatchScore > list[i-1].MatchScore {
				t.Errorf("scores not descending: %v before %v", list[i-1].MatchScore, list[i].MatchScore)
			}
		}
	}
}

func TestFilterGoals(t *testing.T) {
	goals := []Goal{
		{
			ID:       "ml-basics",
			Title:    "机器学习入门",
			Category: "ml",
			Level:    LevelBeginner,
			Modules:  []GoalModule{{Title: "线性回归", Description: "最小二乘法与梯度下降"}},
		},
		{
			ID:       "nlp-path",
			Title:    "自然语言处理",
			Category: "nlp",
			Level:    LevelAdvanced,
			CareerOpportunities: []CareerOpportunity{
				{Title: "NLP算法工程师", Description: "文本挖掘与对话系统"},
			},
		},
	}

	tests := []struct {
		name       string
		query      string
		category   string
		difficulty string
		wantIDs    []string
	}{
		{"empty query matches all", "", "all", "all", []string{"ml-basics", "nlp-path"}},
		{"title match", "机器学习", "all", "all", []string{"ml-basics"}},
		{"module description match", "梯度下降", "all", "all", []string{"ml-basics"}},
		{"career match case-insensitive", "nlp算法", "all", "all", []string{"nlp-path"}},
		{"category filter", "", "nlp", "all", []string{"nlp-path"}},
		{"difficulty filter", "", "all", "beginner", []string{"ml-basics"}},
		{"combined no match", "机器学习", "nlp", "all", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterGoals(goals, tt.query, tt.category, tt.difficulty)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d goals, want %d", len(got), len(tt.wantIDs))
			}
			for i, g := range got {
				if g.ID != tt.wantIDs[i] {
					t.Errorf("result[%d].ID = %q, want %q", i, g.ID, tt.wantIDs[i])
				}
			}
		})
	}
}
