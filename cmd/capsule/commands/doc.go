// Package commands defines the capsule CLI and wires dependencies for subcommands.
//
// Commands
//
//   - seal           Encrypt a letter until an unlock time and print its share link
//   - open           Open a letter from its share link once unlocked
//   - list           List stored letters and their unlock times
//   - combine        Recover a key from a client and a server share
//   - check-shares   Report whether two shares combine
//   - split          Split a base64url secret into 2-of-n shares
//   - hash           Print the SHA-256 of text, a file or base64 input
//   - proof create   Build a proof record for base64 ciphertext
//   - proof verify   Check base64 ciphertext against an expected hash
//   - config show    Print the effective configuration
//
// # Implementation
//
// The root command loads configuration (config.yaml, CAPSULE_* env, flags)
// and builds the dependency graph (stores, custodian, services) before any
// subcommand runs, so handlers share one wire.
package commands
