// Package cli provides the command-line interface for rulelint.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/promptstack/rulelint/internal/cli/commands"
	"github.com/promptstack/rulelint/internal/cli/output"
	"github.com/promptstack/rulelint/internal/config"
)

var cfgFile string

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rulelint",
		Short: "rulelint - Rule Document Validator",
		Long: `rulelint validates rule documents: YAML frontmatter against a JSON
schema and semantic rules, required body sections, and (in strict mode)
the '{type}-{slug}' filename convention with optional auto-rename.`,
		Version: commands.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Format))
			cmd.SetContext(commands.WithCommandContext(cmd.Context(), &commands.CommandContext{
				Cfg:      cfg,
				Renderer: renderer,
				Log:      logger,
			}))

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./rulelint.yaml)")
	rootCmd.PersistentFlags().String("rules-dir", "", "Rules directory (default: .cursor/rules)")
	rootCmd.PersistentFlags().String("extension", "", "Rule document extension (default: .md)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		commands.NewValidateCommand(),
		commands.NewRulesCommand(),
		commands.NewVersionCommand(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
