package main

import (
	"os"

	"github.com/prepgenius/prepgenius/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
