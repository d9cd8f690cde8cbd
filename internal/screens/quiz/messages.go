package quiz

// attemptSavedMsg reports the outcome of persisting a submitted attempt.
// Recording is best-effort; failures never block the feedback display.
type attemptSavedMsg struct {
	Err error
}
