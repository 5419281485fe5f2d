package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gcloudgt/contacto/internal/logger"
	"github.com/gcloudgt/contacto/internal/mcpserver"
	"github.com/spf13/cobra"
)

var mcpFlags struct {
	port int
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the contact tools over MCP (streamable HTTP)",
	RunE:  runMCP,
}

func init() {
	mcpCmd.Flags().IntVarP(&mcpFlags.port, "port", "p", 0, "Port to listen on (default: random free port)")
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, closeFn, err := openMCPStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeFn() }()
	if !cfg.Persist {
		logger.Warn("persistence is off: submissions are acknowledged but not stored")
		fmt.Fprintln(cmd.ErrOrStderr(), "Persistence is off: inquiries will not be stored.")
	}

	srv := mcpserver.New(store, mcpFlags.port)
	if _, err := srv.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = srv.Stop() }()

	fmt.Fprintf(cmd.OutOrStdout(), "MCP endpoint: %s\n", srv.URL())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		logger.Info("received %s, shutting down", sig)
	case <-ctx.Done():
	}
	return nil
}
