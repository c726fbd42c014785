package main

import (
	"os"

	"github.com/mfekete/roomctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
