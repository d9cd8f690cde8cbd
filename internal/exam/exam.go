package exam

// Info describes one selectable exam from the catalog.
type Info struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	File string `json:"file"`
}

// Label returns the display label used in the exam picker.
func (i Info) Label() string {
	return i.ID + "-" + i.Name
}

// QuestionType classifies how a question is answered.
type QuestionType int

const (
	// SingleChoice questions take exactly one answer.
	SingleChoice QuestionType = iota
	// MultipleChoice questions take a set of answers.
	MultipleChoice
	// MultiAnswerSingle is a single-select question whose answer key is a
	// set. It renders multi-select inputs and scores like MultipleChoice.
	MultiAnswerSingle
)

// Raw type labels as they appear in question-set files.
const (
	labelSingleChoice      = "單選題"
	labelMultipleChoice    = "複選題"
	labelMultiAnswerSingle = "單選題多答"
)

// TypeFromLabel maps a raw source label to a QuestionType.
// Unknown labels are treated as single-choice.
func TypeFromLabel(s string) QuestionType {
	switch s {
	case labelMultipleChoice:
		return MultipleChoice
	case labelMultiAnswerSingle:
		return MultiAnswerSingle
	default:
		return SingleChoice
	}
}

// String returns the raw source label for display.
func (t QuestionType) String() string {
	switch t {
	case MultipleChoice:
		return labelMultipleChoice
	case MultiAnswerSingle:
		return labelMultiAnswerSingle
	default:
		return labelSingleChoice
	}
}

// Multi reports whether the question renders multi-select inputs.
func (t QuestionType) Multi() bool {
	return t == MultipleChoice || t == MultiAnswerSingle
}

// Option is one selectable answer within a question. Label is the first
// rune of the raw option text; Text is the remainder. Labels are unique
// within a question but are not guaranteed to be letters.
type Option struct {
	Label  string
	Text   string
	Images []string
}

// Question is an immutable exam question. Answer is normalized to a
// sorted set of option labels at load time.
type Question struct {
	Prompt       string
	PromptImages []string
	Type         QuestionType
	Options      []Option
	Answer       []string
}

// splitOption derives the option label from the first rune of the raw
// text, with the remainder as the display body.
func splitOption(text string) (label, body string) {
	r := []rune(text)
	if len(r) == 0 {
		return "", ""
	}
	return string(r[0]), string(r[1:])
}
