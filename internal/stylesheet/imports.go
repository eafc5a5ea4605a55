package stylesheet

import (
	"path"
	"regexp"
	"sort"
	"strings"
)

// importForm is one accepted spelling of an @import statement. The first
// capture group of pattern is the import target, with quote and backslash
// escapes still in place. Patterns are matched at the start of a statement
// (line start, or after ';' or '}') and ignore anything after the target,
// such as layer(...), source(...) or media queries.
type importForm struct {
	name    string
	pattern *regexp.Regexp
}

// importForms is the complete set of recognized @import spellings. Adding a
// new accepted form only requires a new entry here.
var importForms = []importForm{
	{"url-double", regexp.MustCompile(`(?i)(?:^|[;}])[ \t]*@import[ \t]+url\([ \t]*"((?:[^"\\\n]|\\.)*)"[ \t]*\)`)},
	{"url-single", regexp.MustCompile(`(?i)(?:^|[;}])[ \t]*@import[ \t]+url\([ \t]*'((?:[^'\\\n]|\\.)*)'[ \t]*\)`)},
	{"url-bare", regexp.MustCompile(`(?i)(?:^|[;}])[ \t]*@import[ \t]+url\([ \t]*([^"'()\s]+)[ \t]*\)`)},
	{"double", regexp.MustCompile(`(?i)(?:^|[;}])[ \t]*@import[ \t]*"((?:[^"\\\n]|\\.)*)"`)},
	{"single", regexp.MustCompile(`(?i)(?:^|[;}])[ \t]*@import[ \t]*'((?:[^'\\\n]|\\.)*)'`)},
}

// ImportRef is an @import statement found in a document.
type ImportRef struct {
	Line       int
	Column     int
	Target     string
	Normalized string
	Form       string
}

// FrameworkImport is the bare target of the base framework stylesheet. It
// must stay the first import of a document.
const FrameworkImport = "tailwindcss"

// NormalizeTarget returns the comparison form of an import target: trimmed,
// backslashes turned into slashes and the path cleaned, so that
// "../vendor//a.css" and "../vendor/./a.css" compare equal. A URL scheme is
// kept intact.
func NormalizeTarget(target string) string {
	t := strings.TrimSpace(target)
	if t == "" {
		return ""
	}
	t = strings.ReplaceAll(t, `\`, "/")

	scheme := ""
	if i := strings.Index(t, "://"); i > 0 {
		scheme, t = t[:i+3], t[i+3:]
	}
	if t == "" {
		return scheme
	}

	return scheme + path.Clean(t)
}

// FindImports returns every recognized @import in document order.
// Malformed statements, such as an unterminated quote, are not reported.
func FindImports(doc *Document) []ImportRef {
	var refs []ImportRef

	for i := 0; i < doc.Len(); i++ {
		line := doc.CodeLine(i)
		if !strings.Contains(strings.ToLower(line), "@import") {
			continue
		}

		var found []ImportRef
		for _, form := range importForms {
			for _, m := range form.pattern.FindAllStringSubmatchIndex(line, -1) {
				target := unescapeQuotes(line[m[2]:m[3]])
				found = append(found, ImportRef{
					Line:       i,
					Column:     m[0],
					Target:     target,
					Normalized: NormalizeTarget(target),
					Form:       form.name,
				})
			}
		}

		sort.Slice(found, func(a, b int) bool {
			return found[a].Column < found[b].Column
		})
		refs = append(refs, found...)
	}

	return refs
}

// HasImport reports whether text already imports target in any of the
// recognized forms.
func HasImport(text, target string) bool {
	want := NormalizeTarget(target)
	if want == "" {
		return false
	}

	for _, ref := range FindImports(Parse(text)) {
		if ref.Normalized == want {
			return true
		}
	}

	return false
}

// ImportStatement renders the @import line for target. A target whose
// quotes would otherwise be read back differently, such as one holding both
// quote characters, is written double-quoted with escapes.
func ImportStatement(target string) string {
	t := strings.TrimSpace(target)
	hasDouble := strings.Contains(t, `"`)
	hasSingle := strings.Contains(t, "'")
	hasBackslash := strings.Contains(t, `\`)

	switch {
	case !hasDouble && !(hasSingle && hasBackslash):
		return `@import "` + t + `";`
	case !hasSingle && !hasBackslash:
		return "@import '" + t + "';"
	default:
		return `@import "` + quoteEscaper.Replace(t) + `";`
	}
}

var (
	quoteEscaper   = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	quoteUnescaper = strings.NewReplacer(`\\`, `\`, `\"`, `"`, `\'`, `'`)
)

// unescapeQuotes resolves escaped quotes and backslashes in a quoted
// target. Other backslashes are kept, so Windows-style separators still
// reach NormalizeTarget.
func unescapeQuotes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return quoteUnescaper.Replace(s)
}
