package main

import (
	"os"

	"github.com/jaemin/readcoach/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
