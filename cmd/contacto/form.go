package main

import (
	"github.com/gcloudgt/contacto/internal/tui/contact"
	"github.com/spf13/cobra"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the interactive contact form (default)",
	RunE:  runForm,
}

func runForm(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	submitter, closeFn, err := openSubmitter(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeFn() }()

	return contact.Run(ctx, cfg, submitter)
}
