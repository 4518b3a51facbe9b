package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptstack/rulelint/internal/cli/output"
	"github.com/promptstack/rulelint/pkg/lint"

	_ "github.com/promptstack/rulelint/pkg/lint/rules" // register frontmatter rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available frontmatter rules",
		Long: `List all registered frontmatter rules with their documentation.

Rules are organized by group (severity, globs, ruletype, tags). Use
--verbose to see full documentation including examples and fix guidance.`,
		Example: `  # List all rules
  rulelint rules

  # Show details for a specific rule
  rulelint rules RT01

  # List rules in the globs group
  rulelint rules --group globs

  # Output as JSON
  rulelint rules --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := rendererFor(cmd, opts.Format)

	defs := lint.GetAll()
	if opts.Group != "" {
		defs = lint.GetByGroup(opts.Group)
	}
	infos := make([]lint.RuleInfo, 0, len(defs))
	for _, d := range defs {
		infos = append(infos, d.Info())
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(infos)
	case output.ModeMarkdown:
		return listRulesMarkdown(r, infos, opts.Verbose)
	default:
		return listRulesText(r, infos, opts.Verbose)
	}
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	r := rendererFor(cmd, opts.Format)

	def, ok := lint.GetByID(ruleID)
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}
	info := def.Info()

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(info)
	}

	styles := r.Styles()
	r.Println("")
	r.Println(styles.Header.Render(fmt.Sprintf("%s - %s", info.ID, info.Name)))
	r.Println("")
	r.Println(info.Description)
	r.Printf("\nGroup: %s\nCategory: %s\n", info.Group, info.Category)
	if info.Rationale != "" {
		r.Println("")
		r.Println(styles.Bold.Render("Why"))
		r.Println(info.Rationale)
	}
	if info.BadExample != "" {
		r.Println("")
		r.Println(styles.Bold.Render("Bad"))
		r.Println(info.BadExample)
	}
	if info.GoodExample != "" {
		r.Println("")
		r.Println(styles.Bold.Render("Good"))
		r.Println(info.GoodExample)
	}
	if info.Fix != "" {
		r.Println("")
		r.Println(styles.Bold.Render("Fix"))
		r.Println(info.Fix)
	}
	r.Println("")
	return nil
}

func listRulesText(r *output.Renderer, infos []lint.RuleInfo, verbose bool) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header.Render(fmt.Sprintf("Frontmatter Rules (%d)", len(infos))))
	r.Println("")

	currentGroup := ""
	for _, info := range infos {
		if info.Group != currentGroup {
			currentGroup = info.Group
			r.Println(styles.Bold.Render("  " + currentGroup))
		}
		r.Printf("    %s  %s - %s\n",
			styles.Muted.Render(info.ID),
			info.Name,
			string(info.Category),
		)
		if verbose {
			r.Println(styles.Muted.Render("        " + info.Description))
			r.Println("")
		}
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'rulelint rules <rule-id>' for detailed documentation"))
	r.Println("")
	return nil
}

func listRulesMarkdown(r *output.Renderer, infos []lint.RuleInfo, verbose bool) error {
	r.Println("# Frontmatter Rules")
	r.Println("")

	currentGroup := ""
	for _, info := range infos {
		if info.Group != currentGroup {
			currentGroup = info.Group
			r.Println("## " + currentGroup)
			r.Println("")
		}
		r.Printf("- **%s** - %s (`%s`)\n", info.ID, info.Name, info.Category)
		if verbose {
			r.Println("  " + info.Description)
		}
	}
	return nil
}

// rendererFor returns the context renderer, overridden when a format
// flag was set.
func rendererFor(cmd *cobra.Command, format string) *output.Renderer {
	if format != "" {
		return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format))
	}
	return FromContext(cmd.Context()).Renderer
}
