package ics

import "strings"

const (
	beginMarker = "BEGIN:VEVENT"
	endMarker   = "END:VEVENT"
)

// Blocks returns the non-overlapping VEVENT blocks of an (unfolded) calendar
// document in document order, each including its BEGIN/END markers. Scanning
// stops when no further begin marker exists, or when a begin marker has no
// matching end marker — the latter is not an error, the blocks collected so
// far are returned. The scan position advances one byte past each end marker,
// so degenerate input cannot stall the loop.
func Blocks(doc string) []string {
	var blocks []string
	pos := 0
	for {
		begin := strings.Index(doc[pos:], beginMarker)
		if begin < 0 {
			break
		}
		begin += pos
		end := strings.Index(doc[begin:], endMarker)
		if end < 0 {
			break
		}
		end += begin
		blocks = append(blocks, doc[begin:end+len(endMarker)])
		pos = end + 1
	}
	return blocks
}
