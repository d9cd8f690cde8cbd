package exam

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// CatalogFile is the well-known catalog file name inside an exam directory.
const CatalogFile = "exams.json"

type rawOption struct {
	Text   string   `json:"text"`
	Images []string `json:"images"`
}

type rawQuestion struct {
	Question       string          `json:"question"`
	QuestionImages []string        `json:"question_images"`
	Type           string          `json:"type"`
	Options        []rawOption     `json:"options"`
	Answer         json.RawMessage `json:"answer"`
}

// LoadCatalog reads the exam catalog at path. It is fetched once at
// startup; failure is terminal for the picker only.
func LoadCatalog(path string) ([]Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CatalogLoadError{Path: path, Err: err}
	}
	var infos []Info
	if err := json.Unmarshal(data, &infos); err != nil {
		return nil, &CatalogLoadError{Path: path, Err: err}
	}
	return infos, nil
}

// LoadQuestions reads and validates a question-set file. The returned
// questions have normalized answer sets and derived option labels. A
// failed load never mutates any session state; callers swap sessions
// only after a successful return.
func LoadQuestions(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &QuizLoadError{Path: path, Err: err}
	}

	if err := validateQuestionSet(data); err != nil {
		return nil, &MalformedQuestionError{Path: path, Err: err}
	}

	var raws []rawQuestion
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, &MalformedQuestionError{Path: path, Err: err}
	}

	questions := make([]Question, 0, len(raws))
	for i, r := range raws {
		q, err := buildQuestion(r)
		if err != nil {
			return nil, &MalformedQuestionError{Path: path, Err: fmt.Errorf("question %d: %w", i+1, err)}
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func buildQuestion(r rawQuestion) (Question, error) {
	q := Question{
		Prompt:       r.Question,
		PromptImages: r.QuestionImages,
		Type:         TypeFromLabel(r.Type),
	}

	seen := make(map[string]bool, len(r.Options))
	for _, ro := range r.Options {
		label, body := splitOption(ro.Text)
		if seen[label] {
			return Question{}, fmt.Errorf("duplicate option label %q", label)
		}
		seen[label] = true
		q.Options = append(q.Options, Option{Label: label, Text: body, Images: ro.Images})
	}

	answer, err := parseAnswer(r.Answer)
	if err != nil {
		return Question{}, err
	}
	q.Answer = answer
	return q, nil
}

// parseAnswer accepts either a single label or a set of labels and
// normalizes to a sorted slice.
func parseAnswer(raw json.RawMessage) ([]string, error) {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}, nil
	}
	var set []string
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("answer must be a label or a list of labels: %w", err)
	}
	sort.Strings(set)
	return set, nil
}
