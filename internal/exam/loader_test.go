package exam

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeFile(t, "exams.json", `[
		{"id": "11201", "name": "一等航行員", "file": "11201.json"},
		{"id": "11202", "name": "二等航行員", "file": "11202.json"}
	]`)

	infos, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	require.Equal(t, "11201-一等航行員", infos[0].Label())
	require.Equal(t, "11202.json", infos[1].File)
}

func TestLoadCatalog_Missing(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "exams.json"))
	require.Error(t, err)

	var loadErr *CatalogLoadError
	require.True(t, errors.As(err, &loadErr))
	require.Contains(t, loadErr.Error(), "exams.json")
}

func TestLoadQuestions(t *testing.T) {
	path := writeFile(t, "q.json", `[
		{
			"question": "下列何者正確？",
			"question_images": ["img/q1.png"],
			"type": "單選題",
			"options": [
				{"text": "A第一項", "images": []},
				{"text": "B第二項", "images": ["img/b.png"]}
			],
			"answer": "B"
		},
		{
			"question": "複選：下列何者正確？",
			"question_images": [],
			"type": "複選題",
			"options": [
				{"text": "A甲", "images": []},
				{"text": "B乙", "images": []},
				{"text": "C丙", "images": []}
			],
			"answer": ["C", "A"]
		}
	]`)

	qs, err := LoadQuestions(path)
	require.NoError(t, err)
	require.Len(t, qs, 2)

	q1 := qs[0]
	require.Equal(t, SingleChoice, q1.Type)
	require.Equal(t, []string{"img/q1.png"}, q1.PromptImages)
	require.Equal(t, "A", q1.Options[0].Label)
	require.Equal(t, "第一項", q1.Options[0].Text)
	require.Equal(t, []string{"B"}, q1.Answer)

	q2 := qs[1]
	require.Equal(t, MultipleChoice, q2.Type)
	// Answer keys are normalized to sorted sets at load time.
	require.Equal(t, []string{"A", "C"}, q2.Answer)
}

func TestLoadQuestions_Missing(t *testing.T) {
	_, err := LoadQuestions(filepath.Join(t.TempDir(), "nope.json"))

	var loadErr *QuizLoadError
	require.True(t, errors.As(err, &loadErr))
	require.Contains(t, loadErr.Error(), "nope.json")
}

func TestLoadQuestions_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not an array", `{"question": "?"}`},
		{"missing answer", `[{"question": "?", "type": "單選題", "options": [{"text": "A甲"}]}]`},
		{"empty options", `[{"question": "?", "type": "單選題", "options": [], "answer": "A"}]`},
		{"empty option text", `[{"question": "?", "type": "單選題", "options": [{"text": ""}], "answer": "A"}]`},
		{"numeric answer", `[{"question": "?", "type": "單選題", "options": [{"text": "A甲"}], "answer": 3}]`},
		{"invalid JSON", `[{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.json", tt.content)
			_, err := LoadQuestions(path)

			var malformed *MalformedQuestionError
			require.True(t, errors.As(err, &malformed), "want MalformedQuestionError, got %v", err)
		})
	}
}

func TestLoadQuestions_DuplicateLabels(t *testing.T) {
	path := writeFile(t, "dup.json", `[
		{
			"question": "?",
			"type": "單選題",
			"options": [{"text": "A甲"}, {"text": "A乙"}],
			"answer": "A"
		}
	]`)

	_, err := LoadQuestions(path)
	var malformed *MalformedQuestionError
	require.True(t, errors.As(err, &malformed))
	require.Contains(t, err.Error(), "duplicate option label")
}
