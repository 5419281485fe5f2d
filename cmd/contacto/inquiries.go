package main

import (
	"fmt"
	"strings"

	"github.com/gcloudgt/contacto/internal/intake"
	"github.com/gcloudgt/contacto/internal/tui"
	"github.com/spf13/cobra"
)

var inquiriesFlags struct {
	raw   bool
	width int
}

var inquiriesCmd = &cobra.Command{
	Use:   "inquiries",
	Short: "List received inquiries",
	RunE:  runInquiries,
}

func init() {
	inquiriesCmd.Flags().BoolVar(&inquiriesFlags.raw, "raw", false, "Print markdown without rendering")
	inquiriesCmd.Flags().IntVarP(&inquiriesFlags.width, "width", "w", 100, "Wrap width for rendered output")
}

func runInquiries(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	inquiries, err := store.List(ctx)
	if err != nil {
		return err
	}

	md := intake.MarkdownList(inquiries)
	if !inquiriesFlags.raw {
		md = tui.RenderMarkdown(md, inquiriesFlags.width)
	}
	if !strings.HasSuffix(md, "\n") {
		md += "\n"
	}
	fmt.Fprint(cmd.OutOrStdout(), md)
	return nil
}
