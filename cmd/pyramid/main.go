// SPDX-License-Identifier: MIT

// Package main provides the pyramid CLI: it feeds integer triangles to the
// streaming solver and prints the maximum parity-alternating path.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command tree and maps the outcome to an exit code.
func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Failed:", err)

		return exitCode(err)
	}

	return exitSuccess
}

// exitCode separates bad input from failures of the environment.
func exitCode(err error) int {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return exitSysError
	}

	return exitUserError
}
