// Package main is the entry point for the calculo CLI.
package main

import "gooze.dev/pkg/calculo/cmd"

func main() {
	cmd.Execute()
}
