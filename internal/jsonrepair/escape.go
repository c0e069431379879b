package jsonrepair

import "strings"

// scanState tracks where the escaper is inside the document.
type scanState int

const (
	// stateOutside means the scanner is between string literals.
	stateOutside scanState = iota

	// stateInString means the scanner is inside a double-quoted string.
	stateInString

	// stateEscape means the previous character inside a string was a
	// backslash, so the next character is taken verbatim.
	stateEscape
)

// escapeStringBreaks rewrites literal line breaks that occur inside
// double-quoted string literals to the two-character sequence \n, leaving
// breaks outside strings untouched. Models frequently emit real newlines
// inside string values ("stage_reason": "first line
// second line"), which strict JSON rejects. CRLF and bare CR both collapse
// to a single \n.
func escapeStringBreaks(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	state := stateOutside
	for i := 0; i < len(s); i++ {
		c := s[i]

		switch state {
		case stateOutside:
			if c == '"' {
				state = stateInString
			}
			b.WriteByte(c)

		case stateInString:
			switch c {
			case '\\':
				state = stateEscape
				b.WriteByte(c)
			case '"':
				state = stateOutside
				b.WriteByte(c)
			case '\r':
				b.WriteString(`\n`)
				// Swallow the LF of a CRLF pair.
				if i+1 < len(s) && s[i+1] == '\n' {
					i++
				}
			case '\n':
				b.WriteString(`\n`)
			default:
				b.WriteByte(c)
			}

		case stateEscape:
			state = stateInString
			b.WriteByte(c)
		}
	}

	return b.String()
}
