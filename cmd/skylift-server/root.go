// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package main is the skylift-server binary's command tree, grounded on
// _examples/open-policy-agent-opa/cmd/commands.go's pattern of a single
// shared rootCommand with one init* function per subcommand.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCommand = &cobra.Command{
	Use:   "skylift-server",
	Short: "Remote WebAssembly AOT compilation service",
	Long: `skylift-server exposes the Skylift compiler over gRPC.

A client opens a session with NewBuilder, configures a target triple and
compiler settings, transitions the session to a Compiler with Build, and
submits wasm modules to the compile pipeline with BuildModule.`,
}

func init() {
	initRun(rootCommand)
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
