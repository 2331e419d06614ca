package main

import "testing"

func TestCodeMatcher(t *testing.T) {
	var m = NewCodeMatcher("QABCD")
	var tests = []struct {
		in   string
		want string
	}{
		{"/QABCD/QABCD001A1", "QABCD001A1"},
		{"QABCDENTITY-1", "QABCDENTITY-1"},
		{"QABCD001AXYZ12345", "QABCD001AXYZ123"},
		{"QABCD001A_b", "QABCD001A_"},
		{"parent: QABCD002A2, QABCD003A3", "QABCD002A2"},
		{"QABCD01", ""},
		{"qabcd001a1", ""},
		{"QXYZW001A1", ""},
		{"", ""},
	}
	for _, tt := range tests {
		got := m.Match(tt.in)
		if got != tt.want {
			t.Errorf("Match(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if again := m.Match(got); again != got {
			t.Errorf("Match(Match(%q)) = %q, want %q", tt.in, again, got)
		}
	}
}

func TestCodeMatcherQuotesProject(t *testing.T) {
	var m = NewCodeMatcher("Q.B")
	if got := m.Match("QXB001A"); got != "" {
		t.Errorf("project code must match literally, got %q", got)
	}
	if got := m.Match("Q.B001A"); got != "Q.B001A" {
		t.Errorf("Match = %q, want Q.B001A", got)
	}
}
