package stylesheet

import (
	"fmt"
)

// ValidateStructure reports structural problems of a stylesheet as
// human-readable findings. It never modifies text; an empty result means
// the document is sound.
//
// Checks:
//   - the framework import must be the first @import
//   - a target must not be imported twice
//   - at most one @theme block
//   - every @theme block must be closed
func ValidateStructure(text string) []string {
	doc := Parse(text)
	var findings []string

	imports := FindImports(doc)
	for i, ref := range imports {
		if ref.Normalized != FrameworkImport {
			continue
		}
		if i > 0 {
			findings = append(findings, fmt.Sprintf(
				"framework import %q should come before other imports (line %d, first import on line %d)",
				FrameworkImport, ref.Line+1, imports[0].Line+1))
		}
		break
	}

	firstSeen := make(map[string]int, len(imports))
	for _, ref := range imports {
		if first, ok := firstSeen[ref.Normalized]; ok {
			findings = append(findings, fmt.Sprintf(
				"duplicate import of %q on lines %d and %d", ref.Target, first+1, ref.Line+1))
			continue
		}
		firstSeen[ref.Normalized] = ref.Line
	}

	blocks, unclosed := scanThemeBlocks(doc)
	if len(blocks) > 1 {
		findings = append(findings, fmt.Sprintf(
			"found %d @theme blocks, expected at most one", len(blocks)))
	}
	for _, line := range unclosed {
		findings = append(findings, fmt.Sprintf(
			"@theme block opened on line %d is not closed", line+1))
	}

	return findings
}
