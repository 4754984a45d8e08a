package main

import (
	"fmt"
	"os"
)

func main() {
	app := NewApp()
	if err := app.CreateRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
