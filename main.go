package main

import (
	"os"

	"github.com/lernbox/lernbox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
