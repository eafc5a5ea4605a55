// Package stylesheet merges import directives and @theme blocks into
// Tailwind-style stylesheets.
//
// Every operation takes the stylesheet as text and returns new text. Nothing
// is cached or shared between calls, so all functions in this package are
// safe for concurrent use. Content the merge does not touch (comments, blank
// lines, unrelated rules, line endings) is preserved byte for byte.
package stylesheet

import (
	"strings"
)

// Document is a stylesheet split into lines. It is immutable; editing
// operations return a new Document.
type Document struct {
	raw   string
	lines []string
	code  []string
	eol   string
}

// Parse builds a Document from text. Lines are split on "\n" and keep any
// trailing "\r", so String reproduces text exactly.
func Parse(text string) *Document {
	eol := "\n"
	if strings.Contains(text, "\r\n") {
		eol = "\r\n"
	}

	lines := strings.Split(text, "\n")

	return &Document{
		raw:   text,
		lines: lines,
		code:  maskComments(lines),
		eol:   eol,
	}
}

// String returns the document text.
func (d *Document) String() string {
	return d.raw
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns line i without its line terminator.
func (d *Document) Line(i int) string {
	return strings.TrimSuffix(d.lines[i], "\r")
}

// CodeLine returns line i with block comments blanked out. Columns line up
// with Line.
func (d *Document) CodeLine(i int) string {
	return strings.TrimSuffix(d.code[i], "\r")
}

// EOL returns the line ending used by the document.
func (d *Document) EOL() string {
	return d.eol
}

// IsBlank reports whether the document holds only whitespace.
func (d *Document) IsBlank() bool {
	return strings.TrimSpace(strings.TrimPrefix(d.raw, "\ufeff")) == ""
}

// InsertLine returns a document with line inserted so that it becomes line
// index. Inserting past the last line terminates both the previous last
// line and the new one.
func (d *Document) InsertLine(index int, line string) *Document {
	if index < 0 {
		index = 0
	}
	if index > len(d.lines) {
		index = len(d.lines)
	}

	cr := ""
	if d.eol == "\r\n" {
		cr = "\r"
	}

	lines := make([]string, 0, len(d.lines)+2)
	lines = append(lines, d.lines[:index]...)

	if index == len(d.lines) {
		if index > 0 && cr != "" && !strings.HasSuffix(lines[index-1], cr) {
			lines[index-1] += cr
		}
		lines = append(lines, line+cr, "")
	} else {
		lines = append(lines, line+cr)
		lines = append(lines, d.lines[index:]...)
	}

	return Parse(strings.Join(lines, "\n"))
}

// Span is a byte range inside a document: from column StartCol of line
// StartLine up to, but not including, column EndCol of line EndLine.
type Span struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// ReplaceSpan returns a document with span replaced by content. Text before
// the span on its first line and after it on its last line is kept. When
// content is empty and the span occupied whole lines, those lines are
// removed entirely.
func (d *Document) ReplaceSpan(span Span, content string) *Document {
	prefix := d.lines[span.StartLine][:span.StartCol]
	suffix := d.lines[span.EndLine][span.EndCol:]

	lines := make([]string, 0, len(d.lines))
	lines = append(lines, d.lines[:span.StartLine]...)

	merged := prefix + content + suffix
	if content != "" || strings.TrimSpace(merged) != "" {
		lines = append(lines, strings.Split(merged, "\n")...)
	} else if span.EndLine == len(d.lines)-1 && span.StartLine > 0 {
		// The span ran to the end of the text without a final newline;
		// keep the newline that ended the previous line.
		lines = append(lines, "")
	}

	lines = append(lines, d.lines[span.EndLine+1:]...)

	return Parse(strings.Join(lines, "\n"))
}

// maskComments replaces the contents of /* */ comments with spaces so
// directive scanning ignores commented-out code. Comment openers inside
// quoted strings are not treated as comments.
func maskComments(lines []string) []string {
	masked := make([]string, len(lines))
	inComment := false

	for i, line := range lines {
		b := []byte(line)
		var quote byte

		if i == 0 && strings.HasPrefix(line, "\ufeff") {
			copy(b, "   ")
		}

		for j := 0; j < len(b); j++ {
			switch {
			case inComment:
				if b[j] == '*' && j+1 < len(b) && b[j+1] == '/' {
					b[j], b[j+1] = ' ', ' '
					j++
					inComment = false
					continue
				}
				if b[j] != '\r' {
					b[j] = ' '
				}
			case quote != 0:
				if b[j] == '\\' {
					j++
				} else if b[j] == quote {
					quote = 0
				}
			case b[j] == '"' || b[j] == '\'':
				quote = b[j]
			case b[j] == '/' && j+1 < len(b) && b[j+1] == '*':
				b[j], b[j+1] = ' ', ' '
				j++
				inComment = true
			}
		}

		masked[i] = string(b)
	}

	return masked
}
