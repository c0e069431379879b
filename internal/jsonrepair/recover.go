package jsonrepair

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrExhausted indicates that every repair strategy in the cascade failed.
// It wraps the parse failure of the final, most aggressive attempt.
type ErrExhausted struct {
	Err error
}

func (e *ErrExhausted) Error() string {
	return fmt.Sprintf("json recovery exhausted: %v", e.Err)
}

func (e *ErrExhausted) Unwrap() error { return e.Err }

// Recover extracts a parsed JSON value from free-form model output. The
// input may be a clean JSON document, or JSON buried in prose, wrapped in a
// markdown fence, typeset with curly quotes, or littered with raw control
// characters and trailing commas.
//
// Repair strategies are ordered cheapest-first so a well-formed payload is
// never mangled by an aggressive transform. The first strategy that parses
// wins. Each strategy gets a string-break escaping pre-pass before falling
// back to a raw parse of its candidate text.
func Recover(text string) (any, error) {
	// In-string line breaks are the most common defect, so try that
	// repair before anything else, then the text untouched.
	if v, ok := tryParse(escapeStringBreaks(text)); ok {
		return v, nil
	}
	if v, ok := tryParse(text); ok {
		return v, nil
	}

	// Narrow the working text to the JSON-looking region: the body of a
	// markdown fence if one exists, otherwise the outermost braces.
	work := text
	if inner, ok := stripFence(work); ok {
		work = inner
		if v, ok := tryParse(escapeStringBreaks(work)); ok {
			return v, nil
		}
		if v, ok := tryParse(work); ok {
			return v, nil
		}
	}
	if slice, ok := sliceBraces(work); ok {
		work = slice
		if v, ok := tryParse(escapeStringBreaks(work)); ok {
			return v, nil
		}
		if v, ok := tryParse(work); ok {
			return v, nil
		}
	}

	// Character-level repairs on the narrowed text, applied cumulatively.
	work = normalizeQuotes(work)
	if v, ok := tryParse(escapeStringBreaks(work)); ok {
		return v, nil
	}
	if v, ok := tryParse(work); ok {
		return v, nil
	}

	work = stripTrailingCommas(work)
	if v, ok := tryParse(escapeStringBreaks(work)); ok {
		return v, nil
	}
	if v, ok := tryParse(work); ok {
		return v, nil
	}

	// Last resort: flatten every remaining raw break and tab, even outside
	// strings. Destructive, but by now nothing gentler has worked.
	work = collapseControls(work)
	v, err := parse(work)
	if err != nil {
		return nil, &ErrExhausted{Err: err}
	}
	return v, nil
}

func parse(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return v, nil
}

func tryParse(s string) (any, bool) {
	v, err := parse(s)
	if err != nil {
		return nil, false
	}
	return v, true
}

// stripFence returns the body of the first triple-backtick code block,
// tolerating an optional language tag ("```json").
func stripFence(s string) (string, bool) {
	const fence = "```"

	start := strings.Index(s, fence)
	if start < 0 {
		return "", false
	}
	body := s[start+len(fence):]

	// Drop the language tag up to the first newline, if any.
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		tag := strings.TrimSpace(body[:nl])
		if tag == "" || strings.EqualFold(tag, "json") {
			body = body[nl+1:]
		}
	}

	end := strings.LastIndex(body, fence)
	if end < 0 {
		return strings.TrimSpace(body), true
	}
	return strings.TrimSpace(body[:end]), true
}

// sliceBraces returns the inclusive text between the first '{' and the
// last '}', the usual envelope when the model wraps JSON in prose.
func sliceBraces(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

var quoteReplacer = strings.NewReplacer(
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
)

// normalizeQuotes rewrites typographic quotation marks to plain ASCII.
func normalizeQuotes(s string) string {
	return quoteReplacer.Replace(s)
}

// stripTrailingCommas removes commas that sit directly before a closing
// brace or bracket, ignoring intervening whitespace. Loops until stable so
// nested occurrences are handled without a regex.
func stripTrailingCommas(s string) string {
	for {
		var b strings.Builder
		b.Grow(len(s))
		changed := false

		for i := 0; i < len(s); i++ {
			if s[i] == ',' {
				j := i + 1
				for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\r' || s[j] == '\n') {
					j++
				}
				if j < len(s) && (s[j] == '}' || s[j] == ']') {
					changed = true
					continue
				}
			}
			b.WriteByte(s[i])
		}

		if !changed {
			return s
		}
		s = b.String()
	}
}

var controlReplacer = strings.NewReplacer(
	"\r\n", `\n`,
	"\r", `\n`,
	"\n", `\n`,
	"\t", `\t`,
)

// collapseControls escapes every remaining raw line break and tab,
// regardless of string boundaries.
func collapseControls(s string) string {
	return controlReplacer.Replace(s)
}
