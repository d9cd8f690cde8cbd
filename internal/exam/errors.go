package exam

import "fmt"

// CatalogLoadError indicates the exam catalog could not be read or parsed.
type CatalogLoadError struct {
	Path string
	Err  error
}

func (e *CatalogLoadError) Error() string {
	return fmt.Sprintf("load exam catalog %s: %v", e.Path, e.Err)
}

func (e *CatalogLoadError) Unwrap() error { return e.Err }

// QuizLoadError indicates a question-set file could not be read.
type QuizLoadError struct {
	Path string
	Err  error
}

func (e *QuizLoadError) Error() string {
	return fmt.Sprintf("load question set %s: %v", e.Path, e.Err)
}

func (e *QuizLoadError) Unwrap() error { return e.Err }

// MalformedQuestionError indicates a question-set file was readable but
// its content failed schema or invariant checks.
type MalformedQuestionError struct {
	Path string
	Err  error
}

func (e *MalformedQuestionError) Error() string {
	return fmt.Sprintf("malformed question set %s: %v", e.Path, e.Err)
}

func (e *MalformedQuestionError) Unwrap() error { return e.Err }
