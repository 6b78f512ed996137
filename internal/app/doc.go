// Package app wires application dependencies for the CLI and key server.
//
// Config is loaded from config.yaml in the home directory, then CAPSULE_*
// environment variables, then command-line flags. NewWire builds the
// concrete stores, the custodian (local or remote) and the high-level
// services from Config, exposing them via the Wire struct for commands.
package app
