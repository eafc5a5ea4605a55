package stylesheet

import (
	"strings"
)

// DirectiveKind classifies a stylesheet line by its leading at-rule.
type DirectiveKind int

const (
	DirectiveOther DirectiveKind = iota
	DirectiveImport
	DirectiveSource
	DirectivePlugin
	DirectiveCustomVariant
	DirectiveTheme
)

// String returns the at-rule keyword for the kind.
func (k DirectiveKind) String() string {
	switch k {
	case DirectiveImport:
		return "@import"
	case DirectiveSource:
		return "@source"
	case DirectivePlugin:
		return "@plugin"
	case DirectiveCustomVariant:
		return "@custom-variant"
	case DirectiveTheme:
		return "@theme"
	default:
		return "other"
	}
}

var directiveKeywords = []struct {
	keyword string
	kind    DirectiveKind
}{
	{"@import", DirectiveImport},
	{"@source", DirectiveSource},
	{"@plugin", DirectivePlugin},
	{"@custom-variant", DirectiveCustomVariant},
	{"@theme", DirectiveTheme},
}

// Directive is a classified line.
type Directive struct {
	Line int
	Kind DirectiveKind
}

// ClassifyLine returns the directive kind of a single line. Keywords match
// case-insensitively after leading whitespace and must end at a word
// boundary, so "@imports" is DirectiveOther.
func ClassifyLine(line string) DirectiveKind {
	trimmed := strings.TrimLeft(line, " \t\ufeff")
	if !strings.HasPrefix(trimmed, "@") {
		return DirectiveOther
	}

	for _, d := range directiveKeywords {
		if len(trimmed) < len(d.keyword) {
			continue
		}
		if !strings.EqualFold(trimmed[:len(d.keyword)], d.keyword) {
			continue
		}
		if endsKeyword(trimmed[len(d.keyword):]) {
			return d.kind
		}
	}

	return DirectiveOther
}

func endsKeyword(rest string) bool {
	if rest == "" {
		return true
	}
	switch rest[0] {
	case ' ', '\t', '\r', '"', '\'', '(', '{', ';':
		return true
	}
	return false
}

// Directives lists every recognized directive in document order. Lines
// inside block comments are skipped.
func Directives(doc *Document) []Directive {
	var out []Directive
	for i := 0; i < doc.Len(); i++ {
		if kind := ClassifyLine(doc.CodeLine(i)); kind != DirectiveOther {
			out = append(out, Directive{Line: i, Kind: kind})
		}
	}
	return out
}

// statementEnd returns the last line of the statement starting on line
// start: the line on which every (, [ and { opened since start is closed.
// Unbalanced statements end on their first line.
func statementEnd(doc *Document, start int) int {
	depth := 0
	for i := start; i < doc.Len(); i++ {
		var quote byte
		line := doc.CodeLine(i)
		for j := 0; j < len(line); j++ {
			c := line[j]
			switch {
			case quote != 0:
				if c == '\\' {
					j++
				} else if c == quote {
					quote = 0
				}
			case c == '"' || c == '\'':
				quote = c
			case c == '(' || c == '[' || c == '{':
				depth++
			case c == ')' || c == ']' || c == '}':
				depth--
			}
		}
		if depth <= 0 {
			return i
		}
	}
	return start
}
