package main

import "regexp"

// CodeMatcher finds project sample codes in free-text parent references.
type CodeMatcher struct {
	Project string
	pattern *regexp.Regexp
}

func NewCodeMatcher(project string) *CodeMatcher {
	return &CodeMatcher{
		Project: project,
		pattern: regexp.MustCompile(regexp.QuoteMeta(project) + `[A-Z0-9]{4}[A-Z0-9_-]{0,6}`),
	}
}

// Match returns the first code in s, or "" if there is none.
func (m *CodeMatcher) Match(s string) string {
	return m.pattern.FindString(s)
}
