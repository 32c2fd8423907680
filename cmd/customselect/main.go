// Package main provides the entry point for the customselect demo form.
//
// customselect renders a form of dropdowns described by a JSON config. Each
// dropdown shows its current selection and opens a modal option list on
// enter or mouse click.
//
// Usage:
//
//	customselect [--config path] [--save] [--log-file path] [--log-level level]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
