package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/gcloudgt/contacto/internal/config"
	"github.com/gcloudgt/contacto/internal/logger"
	"github.com/gcloudgt/contacto/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀▀ █▀█ █▄ █ ▀█▀ ▄▀█ █▀▀ ▀█▀ █▀█"
	logoText2 = "█▄▄ █▄█ █ ▀█  █  █▀█ █▄▄  █  █▄█"
)

// Version set via ldflags during build
var version = "dev"

// cfg is loaded before any subcommand runs.
var cfg *config.Config

var rootFlags struct {
	dataDir   string
	exportDir string
	logLevel  string
	noPersist bool
}

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "contacto",
	Short:             "Multi-step contact form for the terminal",
	PersistentPreRunE: loadConfig,
	RunE:              runForm,
	SilenceUsage:      true,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

contacto collects project inquiries in three steps: what you want to build,
your budget, and how to reach you. Submissions are stored in an embedded
NATS JetStream stream and can be listed, exported to markdown, or received
from agents over MCP.`

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.dataDir, "data-dir", "", "Data directory for inquiry storage")
	pf.StringVar(&rootFlags.exportDir, "export-dir", "", "Also write each inquiry as markdown into this directory")
	pf.StringVar(&rootFlags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.BoolVar(&rootFlags.noPersist, "no-persist", false, "Acknowledge submissions without storing them")

	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(inquiriesCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(setupCmd)
}

// loadConfig resolves configuration and applies CLI flags on top of it.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		loaded.DataDir = rootFlags.dataDir
	}
	if flags.Changed("export-dir") {
		loaded.ExportDir = rootFlags.exportDir
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = rootFlags.logLevel
	}
	if rootFlags.noPersist {
		loaded.Persist = false
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	if err := logger.Configure(loaded.LogLevel, loaded.LogFile); err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	cfg = loaded
	logger.Debug("config loaded (data_dir=%s persist=%t export_dir=%q)", cfg.DataDir, cfg.Persist, cfg.ExportDir)
	return nil
}
