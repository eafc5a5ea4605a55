// Package cmd provides the command-line interface for stylekit.
//
// stylekit keeps a Tailwind-style stylesheet wired to a component library:
// it makes sure the library's @import is present in the right place and that
// the stylesheet's @theme block matches the library's theme file.
//
// # Available Commands
//
//   - init: write a .stylekit.yml and optional starter files
//   - css install: ensure the import and refresh the @theme block
//   - css ensure-import: ensure only the import
//   - css validate: report structural problems in a stylesheet
//   - css imports: list the @import statements of a stylesheet
//   - css watch: re-run install whenever the theme or stylesheet changes
//   - config validate: check the configuration against the file system
//   - config show: print the resolved configuration
//   - version: show build information
//
// # Command Examples
//
//	// Preview what install would change
//	stylekit css install --dry-run
//
//	// Use a different stylesheet and import target
//	stylekit css install --stylesheet web/app.css --import ../deps/ui.css
//
//	// Keep the theme in sync while editing it
//	stylekit css watch --debounce 500ms
package cmd
