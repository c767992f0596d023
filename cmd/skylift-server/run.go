// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skylift/skylift/internal/cache"
	"github.com/skylift/skylift/internal/config"
	"github.com/skylift/skylift/internal/logging"
	"github.com/skylift/skylift/internal/server"
)

// initRun registers the run subcommand onto root, the Go analogue of
// _examples/open-policy-agent-opa/cmd/run.go's initCommand pattern: build a
// Config, bind it to flags, and start a long-running server in Run.
func initRun(root *cobra.Command) {
	cfg := config.Default()

	runCommand := &cobra.Command{
		Use:   "run",
		Short: "Start the Skylift compiler server",
		RunE: func(*cobra.Command, []string) error {
			return runServer(cfg)
		},
	}
	cfg.AddFlags(runCommand.Flags())
	root.AddCommand(runCommand)
}

func runServer(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel)
	logging.SetDefault(logger)

	var store cache.Store = cache.Disabled{}
	if cfg.CacheEnabled {
		fileStore, err := cache.NewFileStore(cfg.CacheDir)
		if err != nil {
			return fmt.Errorf("opening artifact cache: %w", err)
		}
		store = fileStore
	}

	lis, err := net.Listen("tcp", cfg.Host)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.Host, err)
	}

	srv := server.New(logger, store)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("shutting down")
		srv.GracefulStop()
	}()

	logger.WithField("addr", cfg.Host).Info("skylift-server listening")
	return server.Serve(srv, lis)
}
