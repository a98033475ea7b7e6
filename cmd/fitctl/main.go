package main

import (
	"os"

	"github.com/2beens/fittracker/cmd/fitctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
