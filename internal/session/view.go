package session

// View-model projections. These are pure derivations of session state
// so renderers stay free of bookkeeping and the projections stay
// testable without a rendered surface.

// SidebarRowSize is the number of question cells per sidebar row.
const SidebarRowSize = 5

// SidebarEntry is the derived display state of one sidebar cell.
type SidebarEntry struct {
	Number   int // 1-based question number
	Answered bool
	Marked   bool
	Current  bool
}

// SidebarEntries projects every question's answered/marked/current
// status in question order.
func (s *Session) SidebarEntries() []SidebarEntry {
	entries := make([]SidebarEntry, len(s.Questions))
	for i := range s.Questions {
		entries[i] = SidebarEntry{
			Number:   i + 1,
			Answered: s.Answered(i),
			Marked:   s.Marked(i),
			Current:  i == s.current,
		}
	}
	return entries
}

// SidebarRows groups entries into rows of SidebarRowSize.
func SidebarRows(entries []SidebarEntry) [][]SidebarEntry {
	var rows [][]SidebarEntry
	for start := 0; start < len(entries); start += SidebarRowSize {
		end := start + SidebarRowSize
		if end > len(entries) {
			end = len(entries)
		}
		rows = append(rows, entries[start:end])
	}
	return rows
}

// OptionState is the derived display state of one option input.
type OptionState struct {
	Label   string
	Text    string
	Images  []string
	Checked bool
	Multi   bool // checkbox when true, radio otherwise
}

// OptionStates projects the options of question i with their checked
// state, so a previously answered question re-renders its selections.
func (s *Session) OptionStates(i int) []OptionState {
	if i < 0 || i >= len(s.Questions) {
		return nil
	}
	q := s.Questions[i]

	selected := make(map[string]bool, len(s.answers[i]))
	for _, l := range s.answers[i] {
		selected[l] = true
	}

	states := make([]OptionState, len(q.Options))
	for j, opt := range q.Options {
		states[j] = OptionState{
			Label:   opt.Label,
			Text:    opt.Text,
			Images:  opt.Images,
			Checked: selected[opt.Label],
			Multi:   q.Type.Multi(),
		}
	}
	return states
}
