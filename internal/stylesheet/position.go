package stylesheet

// Anchor is the line after which a new @import is inserted. Line is -1 when
// the import belongs at the top of the document; Kind names the directive
// the anchor was chosen from.
type Anchor struct {
	Line int
	Kind DirectiveKind
}

// AtTop reports whether the import goes before all other content.
func (a Anchor) AtTop() bool {
	return a.Line < 0
}

// ResolveImportAnchor picks where a new @import goes, first rule wins:
//
//  1. after the last @import
//  2. after the last @source
//  3. after the last @plugin or @custom-variant
//  4. at the top of the document
//
// Existing imports are never reordered; in particular an @import of the
// framework stylesheet stays where it is. When the anchor directive spans
// several lines (a @plugin with an options block, say) the anchor is its
// last line.
func ResolveImportAnchor(doc *Document) Anchor {
	lastImport, lastSource, lastPreamble := -1, -1, -1
	preambleKind := DirectiveOther

	for _, d := range Directives(doc) {
		switch d.Kind {
		case DirectiveImport:
			lastImport = d.Line
		case DirectiveSource:
			lastSource = d.Line
		case DirectivePlugin, DirectiveCustomVariant:
			lastPreamble = d.Line
			preambleKind = d.Kind
		}
	}

	switch {
	case lastImport >= 0:
		return Anchor{Line: statementEnd(doc, lastImport), Kind: DirectiveImport}
	case lastSource >= 0:
		return Anchor{Line: statementEnd(doc, lastSource), Kind: DirectiveSource}
	case lastPreamble >= 0:
		return Anchor{Line: statementEnd(doc, lastPreamble), Kind: preambleKind}
	default:
		return Anchor{Line: -1, Kind: DirectiveOther}
	}
}
