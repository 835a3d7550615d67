package main

import (
	"os"

	"github.com/abhisek/kanacards/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
