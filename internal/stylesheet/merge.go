package stylesheet

import (
	"context"
	"strings"

	"github.com/conneroisu/stylekit/internal/logging"
)

const byteOrderMark = "\ufeff"

// Status tags the outcome of a merge.
type Status int

const (
	StatusAdded Status = iota + 1
	StatusAlreadyExists
	StatusSuccess
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusAdded:
		return "added"
	case StatusAlreadyExists:
		return "already_exists"
	case StatusSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Result is the outcome of a merge. Text is always the complete document to
// use from now on; it equals the input when nothing changed.
type Result struct {
	Status Status
	Text   string

	// Import is the outcome of the import step of EnsureImportAndTheme.
	Import Status
}

// EnsureImport adds an @import of target unless text already imports it.
// The new line goes after the last @import, else the last @source, else
// the last @plugin/@custom-variant, else at the top followed by a blank
// line. A blank target leaves text unchanged.
func EnsureImport(text, target string) Result {
	if strings.TrimSpace(target) == "" || HasImport(text, target) {
		return Result{Status: StatusAlreadyExists, Text: text}
	}

	doc := Parse(text)
	statement := ImportStatement(target)

	// A byte order mark stays the first thing in the file.
	bom := ""
	if strings.HasPrefix(text, byteOrderMark) {
		bom = byteOrderMark
	}

	if doc.IsBlank() {
		return Result{Status: StatusAdded, Text: bom + statement + doc.EOL()}
	}

	anchor := ResolveImportAnchor(doc)
	if anchor.AtTop() {
		eol := doc.EOL()
		return Result{Status: StatusAdded, Text: bom + statement + eol + eol + text[len(bom):]}
	}

	return Result{
		Status: StatusAdded,
		Text:   doc.InsertLine(anchor.Line+1, statement).String(),
	}
}

// EnsureImportAndTheme applies EnsureImport and then replaces, or appends,
// the @theme block with themeContent. The theme is refreshed every time.
func EnsureImportAndTheme(text, target, themeContent string) Result {
	imported := EnsureImport(text, target)

	return Result{
		Status: StatusSuccess,
		Text:   ReplaceThemeBlock(imported.Text, themeContent),
		Import: imported.Status,
	}
}

// Merger runs merges with debug logging of each decision.
type Merger struct {
	logger logging.Logger
}

// NewMerger creates a Merger. A nil logger discards output.
func NewMerger(logger logging.Logger) *Merger {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Merger{logger: logger.WithComponent("stylesheet")}
}

// EnsureImport is EnsureImport with logging.
func (m *Merger) EnsureImport(ctx context.Context, text, target string) Result {
	result := EnsureImport(text, target)

	fields := []interface{}{"target", target, "status", result.Status.String()}
	if result.Status == StatusAdded {
		anchor := ResolveImportAnchor(Parse(text))
		fields = append(fields, "anchor_line", anchor.Line+1, "anchor_kind", anchor.Kind.String())
	}
	m.logger.Debug(ctx, "ensure import", fields...)

	return result
}

// EnsureImportAndTheme is EnsureImportAndTheme with logging.
func (m *Merger) EnsureImportAndTheme(ctx context.Context, text, target, themeContent string) Result {
	imported := m.EnsureImport(ctx, text, target)

	_, replaced := LocateThemeBlock(Parse(imported.Text))
	merged := ReplaceThemeBlock(imported.Text, themeContent)

	m.logger.Debug(ctx, "refresh theme",
		"replaced_existing", replaced,
		"changed", merged != imported.Text,
	)

	return Result{
		Status: StatusSuccess,
		Text:   merged,
		Import: imported.Status,
	}
}
