package scoring

import "testing"

func TestBuildRecommendationsTiers(t *testing.T) {
	tests := []struct {
		name      string
		score     int
		wantLevel ProficiencyLevel
		wantCount int // 非特定类别、无薄弱点：只有两条档位建议
	}{
		{"low tier", 30, ProficiencyBeginner, 2},
		{"mid tier", 60, ProficiencyIntermediate, 2},
		{"high tier", 75, ProficiencyAdvanced, 2},
		{"expert tier", 90, ProficiencyExpert, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := BuildRecommendations([]CategoryScore{{Category: "dl", Score: tt.score}})
			if len(results) != 1 {
				t.Fatalf("expected 1 result, got %d", len(results))
			}
			r := results[0]
			if r.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", r.Level, tt.wantLevel)
			}
			if r.Score != tt.score {
				t.Errorf("Score = %d, want %d", r.Score, tt.score)
			}
			if len(r.Recommendations) != tt.wantCount {
				t.Errorf("got %d recommendations %v, want %d", len(r.Recommendations), r.Recommendations, tt.wantCount)
			}
		})
	}
}

func TestBuildRecommendationsWeakPointNotice(t *testing.T) {
	results := BuildRecommendations([]CategoryScore{{
		Category:   "dl",
		Score:      80,
		WeakPoints: []string{"反向传播的推导..."},
	}})

	recs := results[0].Recommendations
	if len(recs) != 3 {
		t.Fatalf("expected weak-point notice plus two tier strings, got %v", recs)
	}
	if recs[0] != weakPointAdvice {
		t.Errorf("first recommendation = %q, want the weak-point notice", recs[0])
	}
}

func TestBuildRecommendationsCategoryAdvice(t *testing.T) {
	tests := []struct {
		category  string
		score     int
		wantCount int
	}{
		{"math", 40, 4},        // 两条档位 + 两条类别建议
		{"programming", 65, 4}, // 同上
		{"ml", 69, 4},
		{"math", 70, 2}, // 达标后不再追加类别建议
		{"nlp", 40, 2},  // 非特定类别
	}

	for _, tt := range tests {
		results := BuildRecommendations([]CategoryScore{{Category: tt.category, Score: tt.score}})
		recs := results[0].Recommendations
		if len(recs) != tt.wantCount {
			t.Errorf("category %q score %d: got %d recommendations %v, want %d",
				tt.category, tt.score, len(recs), recs, tt.wantCount)
		}
	}
}

func TestBuildRecommendationsEmpty(t *testing.T) {
	if got := BuildRecommendations(nil); len(got) != 0 {
		t.Errorf("expected empty results, got %v", got)
	}
}
