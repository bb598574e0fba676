package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/diinject/pkg/style"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Notice("Error: "+err.Error()))
		os.Exit(1)
	}
}
