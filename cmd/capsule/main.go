package main

import (
	"os"

	"timecapsule/cmd/capsule/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
