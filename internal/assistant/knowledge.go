package assistant

import "strings"

// Match is one knowledge line containing a search term.
type Match struct {
	Line int // 1-based line number
	Text string
}

// SearchKnowledge returns every knowledge line containing term, ignoring
// case. Surrounding whitespace in term is ignored; an empty term matches
// nothing.
func (a *Assistant) SearchKnowledge(term string) []Match {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	var matches []Match
	for i, line := range strings.Split(a.knowledge, "\n") {
		if strings.Contains(strings.ToLower(line), term) {
			matches = append(matches, Match{Line: i + 1, Text: strings.TrimRight(line, "\r")})
		}
	}
	return matches
}
