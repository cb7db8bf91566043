// Package render formats listings for terminal output.
//
// It is shared by the CLI, the interactive shell and the TUI so that every
// surface shows salaries and snippets the same way.
package render
