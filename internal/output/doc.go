// Package output holds the lipgloss styles and small render helpers used by
// the capsule CLI.
package output
