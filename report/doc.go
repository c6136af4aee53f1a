// Package report renders harness results as plain-text tables for the CLI.
//
// Tables are drawn with lipgloss; colour is applied only when the output
// profile supports it, so the same functions produce stable text in tests
// and pipes.
package report
