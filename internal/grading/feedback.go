package grading

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Verdict is the binary outcome of grading one answer.
type Verdict string

const (
	Correct   Verdict = "correct"
	Incorrect Verdict = "incorrect"
)

const (
	// MaxRationaleLen caps the rationale body, counted in characters.
	MaxRationaleLen = 200

	correctMarker   = "O"
	incorrectMarker = "X"
	ellipsis        = "…"

	// FailureRationale is returned when there was no model output at all.
	FailureRationale = "X: 피드백 생성 실패"
)

// FeedbackRecord is the normalized result of grading one answer.
// Rationale keeps its "O: " / "X: " prefix so stored text can be classified again later.
type FeedbackRecord struct {
	Verdict   Verdict `json:"verdict"`
	Rationale string  `json:"rationale"`
}

// IsCorrect reports whether the record carries a passing verdict.
func (r FeedbackRecord) IsCorrect() bool {
	return r.Verdict == Correct
}

// Normalize coerces raw model output into a FeedbackRecord.
//
// Only the first line is considered. A leading "O" or "X" is taken as the verdict marker
// (uppercase only) and anything without a marker is graded Incorrect.
func Normalize(raw string) FeedbackRecord {
	text := strings.TrimFunc(raw, isBlank)
	if text == "" {
		return FeedbackRecord{Verdict: Incorrect, Rationale: FailureRationale}
	}

	line := firstLine(text)
	line = canonicalMarker(line, correctMarker)
	line = canonicalMarker(line, incorrectMarker)
	if !strings.HasPrefix(line, correctMarker+":") && !strings.HasPrefix(line, incorrectMarker+":") {
		line = incorrectMarker + ": " + line
	}

	head, body, _ := strings.Cut(line, ":")
	head = strings.TrimSpace(head)
	body = truncate(strings.TrimSpace(body), MaxRationaleLen)

	verdict := Incorrect
	if head == correctMarker {
		verdict = Correct
	}
	return FeedbackRecord{Verdict: verdict, Rationale: head + ": " + body}
}

// ParseStored classifies feedback text that was already normalized and persisted.
// Missing text counts as Incorrect.
func ParseStored(text string) FeedbackRecord {
	if strings.HasPrefix(text, correctMarker+":") {
		return FeedbackRecord{Verdict: Correct, Rationale: text}
	}
	return FeedbackRecord{Verdict: Incorrect, Rationale: text}
}

func firstLine(text string) string {
	if i := strings.IndexFunc(text, isLineBreak); i >= 0 {
		text = text[:i]
	}
	return strings.TrimFunc(text, isBlank)
}

func isBlank(r rune) bool {
	return unicode.IsSpace(r) || isLineBreak(r)
}

// isLineBreak matches every line boundary, including the Unicode and ASCII separators.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// canonicalMarker rewrites "O rest" / "O:: rest" style prefixes into "O: rest".
func canonicalMarker(line, marker string) string {
	if !strings.HasPrefix(line, marker) || strings.HasPrefix(line, marker+":") {
		return line
	}
	rest := strings.TrimLeft(line[len(marker):], ": ")
	return marker + ": " + strings.TrimSpace(rest)
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + ellipsis
}
