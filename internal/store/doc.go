// Package store provides file-based persistence for timecapsule’s data.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking, and writes go through a temp file plus rename. Stored
// files live under the configured home directory.
//
// The package includes stores for:
//   - Sealed letters and their proofs (LetterFileStore)
//   - Server shares held in custody, encrypted at rest (ShareFileStore)
package store
