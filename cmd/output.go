package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/conneroisu/stylekit/internal/services"
	"github.com/conneroisu/stylekit/internal/stylesheet"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// printReport writes the human summary of an install run.
func printReport(w io.Writer, report *services.InstallReport, showDiff bool) {
	switch {
	case !report.Changed:
		fmt.Fprintln(w, successStyle.Render("✓")+" "+report.Path+" is up to date")
		return
	case !report.Written:
		fmt.Fprintln(w, warningStyle.Render("~")+" "+report.Path+" would change (dry run)")
	case report.Created:
		fmt.Fprintln(w, successStyle.Render("✓")+" created "+report.Path)
	default:
		fmt.Fprintln(w, successStyle.Render("✓")+" updated "+report.Path)
	}

	fmt.Fprintln(w, mutedStyle.Render("  import: "+report.ImportStatus.String()))
	if report.ThemeApplied {
		fmt.Fprintln(w, mutedStyle.Render("  theme: refreshed"))
	}
	if report.BackupPath != "" {
		fmt.Fprintln(w, mutedStyle.Render("  backup: "+report.BackupPath))
	}

	if showDiff || !report.Written {
		fmt.Fprintln(w)
		fmt.Fprint(w, renderDiff(report.Diff))
	}
}

// renderDiff colours added and removed lines of a unified diff.
func renderDiff(diff string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		text := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(text, "+++"), strings.HasPrefix(text, "---"):
			b.WriteString(headerStyle.Render(text))
		case strings.HasPrefix(text, "+"):
			b.WriteString(addedStyle.Render(text))
		case strings.HasPrefix(text, "-"):
			b.WriteString(removedStyle.Render(text))
		case strings.HasPrefix(text, "@@"):
			b.WriteString(mutedStyle.Render(text))
		default:
			b.WriteString(text)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderImports lays out imports as an aligned table.
func renderImports(refs []stylesheet.ImportRef) string {
	if len(refs) == 0 {
		return mutedStyle.Render("no @import statements") + "\n"
	}

	lineWidth := len("LINE")
	formWidth := len("FORM")
	for _, ref := range refs {
		if n := len(strconv.Itoa(ref.Line + 1)); n > lineWidth {
			lineWidth = n
		}
		if n := len(ref.Form); n > formWidth {
			formWidth = n
		}
	}

	lineCol := lipgloss.NewStyle().Width(lineWidth + 2)
	formCol := lipgloss.NewStyle().Width(formWidth + 2)

	rows := []string{
		headerStyle.Render(lineCol.Render("LINE") + formCol.Render("FORM") + "TARGET"),
	}
	for _, ref := range refs {
		target := ref.Target
		if ref.Normalized != strings.TrimSpace(ref.Target) {
			target += mutedStyle.Render(" (" + ref.Normalized + ")")
		}
		rows = append(rows, lineCol.Render(strconv.Itoa(ref.Line+1))+formCol.Render(ref.Form)+target)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

// renderFindings lists validation findings.
func renderFindings(path string, findings []string) string {
	if len(findings) == 0 {
		return successStyle.Render("✓") + " " + path + " is structurally sound\n"
	}

	var b strings.Builder
	b.WriteString(errorStyle.Render("✗") + " " + path + "\n")
	for _, f := range findings {
		b.WriteString("  - " + f + "\n")
	}
	return b.String()
}
