// Package tui runs the Navigator inside a bubbletea program and draws
// engine Layouts with lipgloss.
package tui
