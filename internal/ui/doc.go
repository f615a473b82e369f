// Package ui provides terminal color themes shared by the CLI demos and
// the interactive demo browser. ANSI themes style plain console output;
// TUI themes provide the matching lipgloss palette.
package ui
