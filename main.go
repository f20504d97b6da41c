package main

import (
	"os"

	"github.com/samko5sam/webapps/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
