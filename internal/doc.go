// Package internal contains the core implementation packages for stylekit.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the stylekit CLI tool.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - stylesheet: Directive classification, import detection, anchor
//     resolution, @theme block replacement and the merge operations
//   - services: Install, validate and init flows on top of the engine
//   - config: Configuration loading and validation
//   - errors: Structured errors with codes, types and locations
//   - fsutil: Text decoding, atomic writes and backups
//   - logging: Structured logging with component scoping
//   - watcher: File system monitoring with debouncing
//   - version: Build information
//
// # Data Flow
//
// A command loads the configuration, builds a logger and hands both to a
// service. The install service reads the theme file first, then the
// stylesheet, runs the merge and writes the result atomically only when the
// text changed. The stylesheet package never touches the file system
// except through LoadThemeContent.
//
// # Testing Strategy
//
//   - Table-driven unit tests next to each package
//   - Property tests behind the "property" build tag
//   - Command tests that execute the cobra tree in a temporary directory
//
// For detailed documentation, see the individual package documentation.
package internal
