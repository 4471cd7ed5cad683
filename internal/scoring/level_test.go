package scoring

import "testing"

func TestLevelOrdinal(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{LevelBeginner, 0},
		{LevelIntermediate, 1},
		{LevelAdvanced, 2},
		{Level("unknown"), 0},
		{Level(""), 0},
	}

	for _, tt := range tests {
		if got := tt.level.Ordinal(); got != tt.want {
			t.Errorf("Level(%q).Ordinal() = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"beginner", LevelBeginner},
		{"intermediate", LevelIntermediate},
		{"advanced", LevelAdvanced},
		{"expert", LevelBeginner},
		{"", LevelBeginner},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDeriveLevel(t *testing.T) {
	tests := []struct {
		score int
		want  ProficiencyLevel
	}{
		{100, ProficiencyExpert},
		{85, ProficiencyExpert},
		{84, ProficiencyAdvanced},
		{70, ProficiencyAdvanced},
		{69, ProficiencyIntermediate},
		{50, ProficiencyIntermediate},
		{49, ProficiencyBeginner},
		{0, ProficiencyBeginner},
	}

	for _, tt := range tests {
		if got := DeriveLevel(tt.score); got != tt.want {
			t.Errorf("DeriveLevel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestProficiencyToLevel(t *testing.T) {
	tests := []struct {
		proficiency ProficiencyLevel
		want        Level
	}{
		{ProficiencyExpert, LevelAdvanced},
		{ProficiencyAdvanced, LevelAdvanced},
		{ProficiencyIntermediate, LevelIntermediate},
		{ProficiencyBeginner, LevelBeginner},
	}

	for _, tt := range tests {
		if got := tt.proficiency.ToLevel(); got != tt.want {
			t.Errorf("ProficiencyLevel(%q).ToLevel() = %q, want %q", tt.proficiency, got, tt.want)
		}
	}
}
