package scoring

import (
	"math"
	"strings"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreQuestionWeightedBlend(t *testing.T) {
	question := Question{ID: "q1", Category: "ml", Difficulty: "basic", Text: "什么是监督学习"}
	response := Response{QuestionID: "q1", TimeSpentSeconds: 20}

	got := ScoreQuestion(question, response, true)

	// (45-20)/45+0.5 = 1.056，封顶为 1
	if got.TimeEfficiency != 1 {
		t.Errorf("TimeEfficiency = %v, want 1", got.TimeEfficiency)
	}
	// (1*0.7 + 1*0.2 + 0*0.1) * 100
	if !almostEqual(got.Score, 90) {
		t.Errorf("Score = %v, want 90", got.Score)
	}
	if got.DifficultyBonus != 0 {
		t.Errorf("DifficultyBonus = %v, want 0 for basic difficulty", got.DifficultyBonus)
	}
}

func TestScoreQuestionTimeEfficiencyExtremes(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
		timeSpent  float64
		want       float64
	}{
		{"instant answer clamps to 1", "basic", 0, 1},
		{"double threshold clamps to 0", "basic", 90, 0},
		{"exactly at threshold", "intermediate", 60, 0.5},
		{"advanced double threshold", "advanced", 180, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{ID: "q", Difficulty: tt.difficulty}
			r := Response{QuestionID: "q", TimeSpentSeconds: tt.timeSpent}
			got := ScoreQuestion(q, r, true)
			if got.TimeEfficiency != tt.want {
				t.Errorf("TimeEfficiency = %v, want %v", got.TimeEfficiency, tt.want)
			}
		})
	}
}

func TestScoreQuestionClamped(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
		timeSpent  float64
		correct    bool
	}{
		{"fast correct advanced", "advanced", 0, true},
		{"slow incorrect basic", "basic", 500, false},
		{"unknown difficulty", "weird", 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{ID: "q", Difficulty: tt.difficulty}
			r := Response{QuestionID: "q", TimeSpentSeconds: tt.timeSpent}
			got := ScoreQuestion(q, r, tt.correct)
			if got.Score < 0 || got.Score > 100 {
				t.Errorf("Score = %v, out of [0,100]", got.Score)
			}
		})
	}
}

func TestScoreQuestionDifficultyBonusOnlyWhenCorrect(t *testing.T) {
	q := Question{ID: "q", Difficulty: "advanced"}
	r := Response{QuestionID: "q", TimeSpentSeconds: 45}

	correct := ScoreQuestion(q, r, true)
	incorrect := ScoreQuestion(q, r, false)

	// (1.6-1) * 0.10 * 100 = 6
	if !almostEqual(correct.DifficultyBonus, 6) {
		t.Errorf("DifficultyBonus = %v, want 6", correct.DifficultyBonus)
	}
	if incorrect.DifficultyBonus != 0 {
		t.Errorf("DifficultyBonus = %v, want 0 when incorrect", incorrect.DifficultyBonus)
	}
}

func TestScoreAssessmentSingleCategory(t *testing.T) {
	questions := []Question{{
		ID:         "q1",
		Category:   "ml",
		Difficulty: "basic",
		Text:       "以下哪个属于监督学习算法",
		Options: []Option{
			{ID: "a", IsCorrect: true},
			{ID: "b", IsCorrect: false},
		},
	}}
	responses := []Response{{QuestionID: "q1", SelectedOptionID: "a", TimeSpentSeconds: 20}}

	results := ScoreAssessment(questions, responses)

	if len(results) != 1 {
		t.Fatalf("expected 1 category, got %d", len(results))
	}
	cs := results[0]
	if cs.Category != "ml" {
		t.Errorf("Category = %q, want ml", cs.Category)
	}
	if cs.Score != 90 || cs.Confidence != 100 || cs.TimeEfficiency != 100 {
		t.Errorf("got score=%d confidence=%d timeEfficiency=%d, want 90/100/100", cs.Score, cs.Confidence, cs.TimeEfficiency)
	}
	if len(cs.StrongPoints) != 1 || !strings.HasSuffix(cs.StrongPoints[0], "...") {
		t.Errorf("expected one truncated strong point, got %v", cs.StrongPoints)
	}
	if len(cs.WeakPoints) != 0 {
		t.Errorf("expected no weak points, got %v", cs.WeakPoints)
	}
}

func TestScoreAssessmentInitializesAllCategories(t *testing.T) {
	questions := []Question{
		{ID: "q1", Category: "math", Difficulty: "basic"},
		{ID: "q2", Category: "programming", Difficulty: "basic"},
		{ID: "q3", Category: "math", Difficulty: "advanced"},
	}
	// 只作答 math
	responses := []Response{{QuestionID: "q1", IsCorrect: boolPtr(true), TimeSpentSeconds: 10}}

	results := ScoreAssessment(questions, responses)

	if len(results) != 2 {
		t.Fatalf("expected one result per distinct category, got %d", len(results))
	}
	byCategory := map[string]CategoryScore{}
	for _, cs := range results {
		byCategory[cs.Category] = cs
	}
	prog, ok := byCategory["programming"]
	if !ok {
		t.Fatal("missing zero-response category programming")
	}
	if prog.Score != 0 || prog.Confidence != 0 || prog.TimeEfficiency != 0 {
		t.Errorf("unanswered category must be zero-valued, got %+v", prog)
	}
}

func TestScoreAssessmentSkipsUnknownQuestion(t *testing.T) {
	questions := []Question{{ID: "q1", Category: "math", Difficulty: "basic"}}
	responses := []Response{
		{QuestionID: "ghost", IsCorrect: boolPtr(true), TimeSpentSeconds: 5},
		{QuestionID: "q1", IsCorrect: boolPtr(true), TimeSpentSeconds: 45},
	}

	results := ScoreAssessment(questions, responses)

	if len(results) != 1 {
		t.Fatalf("expected 1 category, got %d", len(results))
	}
	// 未知题目的作答不参与计数：confidence = 1/1 * 100
	if results[0].Confidence != 100 {
		t.Errorf("Confidence = %d, want 100 (ghost response ignored)", results[0].Confidence)
	}
}

func TestScoreAssessmentUnknownOptionCountsIncorrect(t *testing.T) {
	questions := []Question{{
		ID:         "q1",
		Category:   "math",
		Difficulty: "basic",
		Options:    []Option{{ID: "a", IsCorrect: true}},
	}}
	responses := []Response{{QuestionID: "q1", SelectedOptionID: "missing", TimeSpentSeconds: 45}}

	results := ScoreAssessment(questions, responses)

	if results[0].Confidence != 0 {
		t.Errorf("Confidence = %d, want 0 for unmatched option", results[0].Confidence)
	}
}

func TestScoreAssessmentExplicitCorrectnessWins(t *testing.T) {
	questions := []Question{{
		ID:         "q1",
		Category:   "math",
		Difficulty: "basic",
		Options:    []Option{{ID: "a", IsCorrect: false}},
	}}
	// 选项判定为错，但显式 isCorrect 优先
	responses := []Response{{QuestionID: "q1", SelectedOptionID: "a", IsCorrect: boolPtr(true), TimeSpentSeconds: 45}}

	results := ScoreAssessment(questions, responses)

	if results[0].Confidence != 100 {
		t.Errorf("Confidence = %d, want 100 (explicit isCorrect wins)", results[0].Confidence)
	}
}

func TestScoreAssessmentDeduplicatesPoints(t *testing.T) {
	questions := []Question{
		{ID: "q1", Category: "math", Difficulty: "basic", Text: "同一道题干"},
		{ID: "q2", Category: "math", Difficulty: "basic", Text: "同一道题干"},
	}
	responses := []Response{
		{QuestionID: "q1", IsCorrect: boolPtr(false), TimeSpentSeconds: 90},
		{QuestionID: "q2", IsCorrect: boolPtr(false), TimeSpentSeconds: 90},
	}

	results := ScoreAssessment(questions, responses)

	if len(results[0].WeakPoints) != 1 {
		t.Errorf("expected deduplicated weak points, got %v", results[0].WeakPoints)
	}
}

func TestScoreAssessmentEmptyInputs(t *testing.T) {
	if got := ScoreAssessment(nil, nil); len(got) != 0 {
		t.Errorf("expected empty result for empty inputs, got %v", got)
	}
}
