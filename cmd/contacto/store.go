package main

import (
	"context"
	"fmt"

	"github.com/gcloudgt/contacto/internal/config"
	"github.com/gcloudgt/contacto/internal/inquiry"
	"github.com/gcloudgt/contacto/internal/intake"
	"github.com/gcloudgt/contacto/internal/mcpserver"
)

// openStore opens the inquiry store described by cfg.
func openStore(ctx context.Context, cfg *config.Config) (*intake.Store, error) {
	var opts []intake.Option
	if cfg.ExportDir != "" {
		opts = append(opts, intake.WithExporter(intake.NewExporter(cfg.ExportDir)))
	}
	store, err := intake.Open(ctx, cfg.DataDir, opts...)
	if err != nil {
		return nil, fmt.Errorf("opening inquiry store in %s: %w", cfg.DataDir, err)
	}
	return store, nil
}

// openSubmitter returns where submissions go and a func that releases it.
// With persistence off every submission is only acknowledged.
func openSubmitter(ctx context.Context, cfg *config.Config) (inquiry.Submitter, func() error, error) {
	if !cfg.Persist {
		return inquiry.Discard, func() error { return nil }, nil
	}
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return store, store.Close, nil
}

// openMCPStore is openSubmitter for the MCP tools, which also list what was
// received.
func openMCPStore(ctx context.Context, cfg *config.Config) (mcpserver.Store, func() error, error) {
	if !cfg.Persist {
		return mcpserver.Discard, func() error { return nil }, nil
	}
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return store, store.Close, nil
}
