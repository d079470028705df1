package protocol

import (
	"fmt"

	"codesearch/internal/message"
)

var textRangeType = message.NewRecordType("TextRange", message.Fields{
	"start_line":   message.Int,
	"start_column": message.Int,
	"end_line":     message.Int,
	"end_column":   message.Int,
})

// TextRange is a range inside a source file. All indices are 1-based and
// inclusive.
type TextRange struct {
	StartLine   int `json:"start_line"`
	StartColumn int `json:"start_column"`
	EndLine     int `json:"end_line"`
	EndColumn   int `json:"end_column"`
}

func (TextRange) Descriptor() *message.RecordType { return textRangeType }

// Contains reports whether the position line:column falls inside r.
func (r TextRange) Contains(line, column int) bool {
	return !(line < r.StartLine || line > r.EndLine ||
		(line == r.StartLine && column < r.StartColumn) ||
		(line == r.EndLine && column > r.EndColumn))
}

// rangeOverlap reports whether the inclusive ranges [s1,e1] and [s2,e2]
// intersect. Inverted ranges never intersect.
func rangeOverlap(s1, e1, s2, e2 int) bool {
	return s1 <= e1 && s2 <= e2 && !(e1 < s2 || e2 < s1)
}

// Overlaps reports whether r and other share at least one character.
// Invalid ranges overlap nothing.
func (r TextRange) Overlaps(other TextRange) bool {
	if !r.IsValid() || !other.IsValid() {
		return false
	}
	if !rangeOverlap(r.StartLine, r.EndLine, other.StartLine, other.EndLine) {
		return false
	}
	if rangeOverlap(r.StartLine+1, r.EndLine-1, other.StartLine+1, other.EndLine-1) {
		return true
	}
	if r.EndLine == other.StartLine && r.EndColumn < other.StartColumn {
		return false
	}
	if other.EndLine == r.StartLine && other.EndColumn < r.StartColumn {
		return false
	}
	return true
}

// OverlapsLines reports whether the line spans of r and other intersect,
// ignoring columns.
func (r TextRange) OverlapsLines(other TextRange) bool {
	return !(r.EndLine < other.StartLine || r.StartLine > other.EndLine)
}

// IsValid reports whether any bound of r is set.
func (r TextRange) IsValid() bool {
	return r.StartLine != 0 || r.StartColumn != 0 || r.EndLine != 0 || r.EndColumn != 0
}

func (r TextRange) Empty() bool { return !r.IsValid() }

// Equal reports whether r and other are both valid and span the same
// characters.
func (r TextRange) Equal(other TextRange) bool {
	return r.IsValid() && other.IsValid() && r == other
}

func (r TextRange) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", r.StartLine, r.StartColumn, r.EndLine, r.EndColumn)
}

// ParseTextRange parses the "L:C-L:C" form produced by String.
func ParseTextRange(s string) (TextRange, error) {
	var r TextRange
	n, err := fmt.Sscanf(s, "%d:%d-%d:%d", &r.StartLine, &r.StartColumn, &r.EndLine, &r.EndColumn)
	if err != nil || n != 4 {
		return TextRange{}, fmt.Errorf("invalid range %q, want L:C-L:C", s)
	}
	return r, nil
}
