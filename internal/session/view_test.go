package session

import "testing"

func TestSidebarEntries(t *testing.T) {
	s := testSession(singleQ("A"), singleQ("B"), singleQ("C"))
	s.Record(1, []string{"B"})
	s.ToggleMark(2)
	s.GoTo(1)

	entries := s.SidebarEntries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries", len(entries))
	}

	if entries[0].Answered || entries[0].Marked || entries[0].Current {
		t.Errorf("entry 0 = %+v, want all false", entries[0])
	}
	if !entries[1].Answered || !entries[1].Current {
		t.Errorf("entry 1 = %+v, want answered+current", entries[1])
	}
	if !entries[2].Marked || entries[2].Answered {
		t.Errorf("entry 2 = %+v, want marked only", entries[2])
	}
	if entries[1].Number != 2 {
		t.Errorf("numbers are 1-based, got %d", entries[1].Number)
	}
}

func TestSidebarRows_GroupsOfFive(t *testing.T) {
	qs := make([]SidebarEntry, 12)
	rows := SidebarRows(qs)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if len(rows[0]) != 5 || len(rows[1]) != 5 || len(rows[2]) != 2 {
		t.Errorf("row sizes = %d/%d/%d, want 5/5/2",
			len(rows[0]), len(rows[1]), len(rows[2]))
	}
}

func TestOptionStates(t *testing.T) {
	s := testSession(multiQ("A", "C"))
	s.Record(0, []string{"C", "A"})

	states := s.OptionStates(0)
	if len(states) != 4 {
		t.Fatalf("got %d states", len(states))
	}
	for _, st := range states {
		if !st.Multi {
			t.Errorf("option %s should render as checkbox", st.Label)
		}
		wantChecked := st.Label == "A" || st.Label == "C"
		if st.Checked != wantChecked {
			t.Errorf("option %s checked = %v, want %v", st.Label, st.Checked, wantChecked)
		}
	}
}

func TestOptionStates_OutOfRange(t *testing.T) {
	s := testSession(singleQ("A"))
	if got := s.OptionStates(3); got != nil {
		t.Errorf("OptionStates(3) = %v, want nil", got)
	}
}
