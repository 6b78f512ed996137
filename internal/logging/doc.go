// Package logging provides leveled, colourised logging for the capsule CLI
// and the key server.
//
// # Verbosity Levels
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors are always shown.
//
// # Usage
//
//	log := logging.Logger{Verbose: verbose, Debug: debug}
//	log.Infof("sealed letter %s", id)
//
// Output goes to W, or os.Stderr when W is nil. Colour follows
// github.com/fatih/color, which honours NO_COLOR and non-terminal output.
package logging
