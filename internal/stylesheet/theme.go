package stylesheet

import (
	"strings"
)

const themeKeyword = "@theme"

// ThemeBlock locates a @theme block: from the @theme keyword to just past
// its matching closing brace.
type ThemeBlock struct {
	Span
}

// Text returns the block's source text.
func (b ThemeBlock) Text(doc *Document) string {
	if b.StartLine == b.EndLine {
		return doc.Line(b.StartLine)[b.StartCol:b.EndCol]
	}

	var sb strings.Builder
	sb.WriteString(doc.Line(b.StartLine)[b.StartCol:])
	for i := b.StartLine + 1; i < b.EndLine; i++ {
		sb.WriteString("\n")
		sb.WriteString(doc.Line(i))
	}
	sb.WriteString("\n")
	sb.WriteString(doc.Line(b.EndLine)[:b.EndCol])

	return sb.String()
}

// LocateThemeBlock returns the first complete @theme block of doc.
func LocateThemeBlock(doc *Document) (ThemeBlock, bool) {
	blocks, _ := scanThemeBlocks(doc)
	if len(blocks) == 0 {
		return ThemeBlock{}, false
	}
	return blocks[0], true
}

// scanThemeBlocks returns every complete @theme block and the lines of any
// @theme whose brace is never closed. Statement forms without a block, such
// as "@theme reference;", are skipped.
func scanThemeBlocks(doc *Document) ([]ThemeBlock, []int) {
	var (
		blocks   []ThemeBlock
		unclosed []int
	)

	for i := 0; i < doc.Len(); i++ {
		line := doc.CodeLine(i)
		if ClassifyLine(line) != DirectiveTheme {
			continue
		}

		col := strings.Index(line, "@")
		span, found, statement := matchBraces(doc, i, col, col+len(themeKeyword))
		switch {
		case statement:
			continue
		case !found:
			unclosed = append(unclosed, i)
			return blocks, unclosed
		}

		blocks = append(blocks, ThemeBlock{Span: span})
		i = span.EndLine
	}

	return blocks, unclosed
}

// matchBraces counts { and } from column from of line start onward and
// returns the span that ends where the depth returns to zero. Parentheses
// and brackets are not counted, and braces inside quoted strings are
// ignored. statement is true when a ';' ends the at-rule before any brace
// opens.
func matchBraces(doc *Document, start, keywordCol, from int) (span Span, found, statement bool) {
	depth := 0
	opened := false

	for l := start; l < doc.Len(); l++ {
		text := doc.CodeLine(l)
		j := 0
		if l == start {
			j = from
		}

		var quote byte
		for ; j < len(text); j++ {
			c := text[j]
			switch {
			case quote != 0:
				if c == '\\' {
					j++
				} else if c == quote {
					quote = 0
				}
			case c == '"' || c == '\'':
				quote = c
			case c == '{':
				depth++
				opened = true
			case c == '}' && opened:
				depth--
				if depth == 0 {
					return Span{
						StartLine: start,
						StartCol:  keywordCol,
						EndLine:   l,
						EndCol:    j + 1,
					}, true, false
				}
			case c == ';' && !opened:
				return Span{}, false, true
			}
		}
	}

	return Span{}, false, false
}

// ReplaceThemeBlock replaces the first @theme block of text with content,
// or appends content when text has no block. Content is trimmed and written
// with the document's line endings. Empty content removes an existing block.
//
// The replaced range runs from the @theme keyword to its matching '}', not
// over whole lines: text sharing the first or last line with the block,
// such as indentation or a rule after the closing brace, is kept.
func ReplaceThemeBlock(text, content string) string {
	doc := Parse(text)
	content = withEOL(strings.TrimSpace(content), doc.EOL())

	if block, ok := LocateThemeBlock(doc); ok {
		return doc.ReplaceSpan(block.Span, content).String()
	}

	if content == "" {
		return text
	}

	return appendBlock(doc, content)
}

// appendBlock adds content to the end of doc after one blank line.
func appendBlock(doc *Document, content string) string {
	eol := doc.EOL()
	if doc.IsBlank() {
		return content + eol
	}

	var b strings.Builder
	b.WriteString(doc.String())
	if !strings.HasSuffix(doc.String(), "\n") {
		b.WriteString(eol)
	}
	if !endsWithBlankLine(b.String()) {
		b.WriteString(eol)
	}
	b.WriteString(content)
	b.WriteString(eol)

	return b.String()
}

func endsWithBlankLine(s string) bool {
	rest := strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")
	return strings.HasSuffix(rest, "\n")
}

func withEOL(s, eol string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if eol == "\n" {
		return s
	}
	return strings.ReplaceAll(s, "\n", eol)
}
