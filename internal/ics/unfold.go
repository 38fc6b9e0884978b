package ics

import "strings"

// lineBreaks covers the separator variants seen in real feeds: CRLF, bare CR,
// bare LF. splitLines normalizes all three.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// Unfold rejoins folded content lines (RFC 5545 §3.1): a physical line that
// starts with a space or horizontal tab continues the previous logical line.
// The continuation marker is stripped and the rest appended without a
// separator. The very first line can never be a continuation, so a stray
// marker at position zero stays literal content. Output uses "\n" separators.
func Unfold(doc string) string {
	lines := splitLines(doc)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if len(out) > 0 && (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) {
			out[len(out)-1] += line[1:]
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
