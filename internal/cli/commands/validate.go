package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/promptstack/rulelint/internal/cli/output"
	"github.com/promptstack/rulelint/internal/config"
	"github.com/promptstack/rulelint/pkg/validate"

	_ "github.com/promptstack/rulelint/pkg/lint/rules" // register frontmatter rules
)

// ValidateOptions holds options for the validate command.
type ValidateOptions struct {
	Schema     string   // Path to a JSON schema overriding the embedded one
	Strict     bool     // Enforce filename conventions and style escalation
	Fix        bool     // Auto-rename files to the expected name
	ReportJSON string   // Write a JSON report to this path
	Disable    []string // Rule IDs to disable
	Format     string   // Output format: text, markdown, json
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	opts := &ValidateOptions{}
	cmd := &cobra.Command{
		Use:   "validate [paths...]",
		Short: "Validate rule document frontmatter and structure",
		Long: `Validate rule documents against the frontmatter schema, semantic
rules, and required body sections.

Targets are explicit files or directories scanned recursively for rule
documents (default: the configured rules directory). Documents without
frontmatter produce a warning, not a failure. The command exits non-zero
when any document produced findings.

In --strict mode filenames must follow the '{type}-{slug}' convention
derived from the frontmatter type and the document title; --fix renames
files to their expected name, refusing when the target already exists.`,
		Example: `  # Validate the default rules directory
  rulelint validate

  # Validate specific paths
  rulelint validate docs/rules extra-rule.md

  # Enforce filename conventions and auto-rename
  rulelint validate --strict --fix

  # Write a machine-readable report
  rulelint validate --report-json findings.json

  # Disable specific rules
  rulelint validate --disable GL01,TG01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Schema, "schema", "", "Path to JSON schema for frontmatter (default: embedded)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Enforce filename conventions and style escalation")
	cmd.Flags().BoolVar(&opts.Fix, "fix", false, "Auto-rename files to the expected '{type}-{slug}' name (implies --strict)")
	cmd.Flags().StringVar(&opts.ReportJSON, "report-json", "", "Write a JSON report of findings to this path")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

func runValidate(cmd *cobra.Command, opts *ValidateOptions, args []string) error {
	cmdCtx := FromContext(cmd.Context())
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	runOpts := buildRunOptions(cfg, opts, args)
	runOpts.Logger = cmdCtx.Log

	runner, err := validate.New(runOpts)
	if err != nil {
		return err
	}
	report, err := runner.Run()
	if err != nil {
		return err
	}

	if len(report.Files) == 0 {
		r.Println("No rule documents found to validate.")
		return nil
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		if err := r.JSON(report); err != nil {
			return err
		}
	case output.ModeMarkdown:
		renderReportMarkdown(r, report)
	default:
		renderReportText(r, report)
	}

	reportFailed := false
	reportPath := opts.ReportJSON
	if reportPath == "" {
		reportPath = cfg.Report
	}
	if reportPath != "" {
		if err := report.WriteJSON(reportPath); err != nil {
			r.Errorf("ERROR: %v\n", err)
			reportFailed = true
		}
	}

	if report.Failed() || reportFailed {
		return fmt.Errorf("validation failed: %d finding(s) across %d document(s)",
			report.FindingCount(), len(report.Files))
	}
	return nil
}

// buildRunOptions merges project config with command flags; flags win.
func buildRunOptions(cfg *config.Config, opts *ValidateOptions, args []string) validate.Options {
	runOpts := validate.Options{
		Paths:     args,
		RulesDir:  cfg.RulesDir,
		Extension: cfg.Extension,
		Strict:    cfg.Strict || opts.Strict,
		Fix:       cfg.Fix || opts.Fix,
	}
	runOpts.SchemaPath = cfg.Schema
	if opts.Schema != "" {
		runOpts.SchemaPath = opts.Schema
	}
	runOpts.Disable = append(runOpts.Disable, cfg.Disable...)
	runOpts.Disable = append(runOpts.Disable, opts.Disable...)
	return runOpts
}

// renderReportText prints per-document lines followed by a summary
// table.
func renderReportText(r *output.Renderer, report *validate.Report) {
	styles := r.Styles()

	warnings := 0
	for i := range report.Files {
		f := &report.Files[i]
		warnings += len(f.Warnings)

		for _, fix := range f.Fixes {
			r.Printf("%s %s -> %s\n", styles.Success.Render("FIX: renamed"), fix.From, fix.To)
		}
		if f.Error != "" {
			r.Printf("%s: %s %s\n", f.Path, styles.Error.Render("ERROR:"), f.Error)
			continue
		}
		for _, w := range f.Warnings {
			r.Printf("%s: %s %s\n", f.Path, styles.Warning.Render("WARNING:"), w)
		}
		for _, finding := range f.Findings {
			r.Printf("%s: %s\n", f.Path, styles.Error.Render(finding.String()))
		}
		if f.OK() {
			r.Printf("%s: %s\n", f.Path, styles.Success.Render("OK"))
		}
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Documents", "Findings", "Warnings", "Fixes"})
	t.AppendRow(table.Row{len(report.Files), report.FindingCount(), warnings, report.FixCount()})
	r.Println("")
	r.Println(t.Render())
}

// renderReportMarkdown prints the same content without styling.
func renderReportMarkdown(r *output.Renderer, report *validate.Report) {
	for i := range report.Files {
		f := &report.Files[i]
		for _, fix := range f.Fixes {
			r.Printf("- FIX: renamed `%s` -> `%s`\n", fix.From, fix.To)
		}
		if f.Error != "" {
			r.Printf("- `%s`: ERROR: %s\n", f.Path, f.Error)
			continue
		}
		for _, w := range f.Warnings {
			r.Printf("- `%s`: WARNING: %s\n", f.Path, w)
		}
		for _, finding := range f.Findings {
			r.Printf("- `%s`: %s\n", f.Path, finding.String())
		}
		if f.OK() {
			r.Printf("- `%s`: OK\n", f.Path)
		}
	}
}
