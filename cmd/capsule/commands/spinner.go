package commands

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// withSpinner runs fn while a spinner with msg is shown on stderr. The
// spinner stays silent when stderr is not a terminal.
func withSpinner(msg string, fn func() error) error {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + msg
	s.Start()
	defer s.Stop()
	return fn()
}
