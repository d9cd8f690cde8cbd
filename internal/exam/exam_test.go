package exam

import "testing"

func TestTypeFromLabel(t *testing.T) {
	tests := []struct {
		label string
		want  QuestionType
	}{
		{"單選題", SingleChoice},
		{"複選題", MultipleChoice},
		{"單選題多答", MultiAnswerSingle},
		{"是非題", SingleChoice}, // unknown labels fall back to single-choice
		{"", SingleChoice},
	}

	for _, tt := range tests {
		if got := TypeFromLabel(tt.label); got != tt.want {
			t.Errorf("TypeFromLabel(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestQuestionTypeMulti(t *testing.T) {
	if SingleChoice.Multi() {
		t.Error("SingleChoice should not render multi-select inputs")
	}
	if !MultipleChoice.Multi() {
		t.Error("MultipleChoice should render multi-select inputs")
	}
	if !MultiAnswerSingle.Multi() {
		t.Error("MultiAnswerSingle should render multi-select inputs")
	}
}

func TestInfoLabel(t *testing.T) {
	info := Info{ID: "11201", Name: "航海人員測驗", File: "11201.json"}
	if got := info.Label(); got != "11201-航海人員測驗" {
		t.Errorf("Label = %q", got)
	}
}

func TestSplitOption(t *testing.T) {
	tests := []struct {
		text  string
		label string
		body  string
	}{
		{"A使用雷達", "A", "使用雷達"},
		{"1全部皆是", "1", "全部皆是"},
		{"甲如下圖", "甲", "如下圖"},
		{"", "", ""},
	}

	for _, tt := range tests {
		label, body := splitOption(tt.text)
		if label != tt.label || body != tt.body {
			t.Errorf("splitOption(%q) = (%q, %q), want (%q, %q)",
				tt.text, label, body, tt.label, tt.body)
		}
	}
}
