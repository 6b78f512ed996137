// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (letters, shares, proofs) and contracts (interfaces) only,
// plus the sentinel errors every layer agrees on.
package domain
