// Package main is the entry point for immowatch.
package main

import (
	"github.com/kakwa/immowatch/cmd/immowatch/cmd"
)

func main() {
	cmd.Execute()
}
