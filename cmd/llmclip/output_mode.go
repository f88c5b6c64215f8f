package main

import "fmt"

const (
	echoQuiet = "quiet"
	echoPrint = "print"
)

// resolveEchoMode turns the --quiet/--print flags into an echo mode.
// Quiet is the default; asking for both explicitly is an error rather
// than silently preferring one.
func resolveEchoMode(quietFlag, printFlag bool) (string, error) {
	if quietFlag && printFlag {
		return "", fmt.Errorf("only one of --quiet or --print may be set")
	}
	if printFlag {
		return echoPrint, nil
	}
	return echoQuiet, nil
}

// runConfig carries the per-invocation output settings through the
// pipeline instead of ambient package state.
type runConfig struct {
	echo     string
	treeOnly bool
}
