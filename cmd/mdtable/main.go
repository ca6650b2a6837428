package main

import (
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	// Set UTF-8 as fallback encoding so wide table content draws in the preview
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	cmd := newRootCommand(newEnvironment(os.Stdin, os.Stdout, os.Stderr))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
