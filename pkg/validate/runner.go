// Package validate orchestrates the validation pipeline: document
// discovery, per-document checks in a fixed order, and report
// aggregation.
package validate

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/promptstack/rulelint/pkg/document"
	"github.com/promptstack/rulelint/pkg/filename"
	"github.com/promptstack/rulelint/pkg/lint"
	"github.com/promptstack/rulelint/pkg/schema"
)

// noFrontmatterWarning is recorded for documents without a frontmatter
// block. It is a warning, not a finding; it never fails the run.
const noFrontmatterWarning = "No frontmatter found; skipping validation"

// Options configures a validation run.
type Options struct {
	// Paths are explicit files or directories to scan. Empty means
	// the rules directory.
	Paths []string
	// RulesDir scopes the filename policy and is the default scan
	// target.
	RulesDir string
	// Extension selects files during directory scans.
	Extension string
	// SchemaPath overrides the embedded frontmatter schema.
	SchemaPath string
	// Strict enables filename-convention enforcement and style
	// escalation.
	Strict bool
	// Fix enables auto-rename to the canonical filename. Implies
	// Strict.
	Fix bool
	// Disable lists rule IDs to skip.
	Disable []string
	// Logger receives debug output; nil discards it.
	Logger *slog.Logger
}

// Runner executes the pipeline over a discovered document set. A
// Runner is single-use per call to Run; documents are processed
// strictly sequentially so that rename conflict checks observe the
// post-rename state of earlier documents.
type Runner struct {
	opts      Options
	validator *schema.Validator
	analyzer  *lint.Analyzer
	policy    *filename.Policy
	log       *slog.Logger
}

// New builds a Runner, compiling the schema up front. A schema that
// fails to load or compile is a configuration error, not a per-document
// finding.
func New(opts Options) (*Runner, error) {
	if opts.RulesDir == "" {
		opts.RulesDir = filename.DefaultRulesDir
	}
	if opts.Extension == "" {
		opts.Extension = filename.DefaultExtension
	}
	if opts.Fix {
		opts.Strict = true
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}

	var validator *schema.Validator
	var err error
	if opts.SchemaPath != "" {
		validator, err = schema.LoadFile(opts.SchemaPath)
	} else {
		validator, err = schema.NewDefault()
	}
	if err != nil {
		return nil, err
	}

	lintCfg := lint.NewConfig()
	for _, id := range opts.Disable {
		lintCfg.Disable(id)
	}

	return &Runner{
		opts:      opts,
		validator: validator,
		analyzer:  lint.NewAnalyzer(lintCfg),
		policy:    &filename.Policy{RulesDir: opts.RulesDir, Extension: opts.Extension},
		log:       opts.Logger,
	}, nil
}

// Discover resolves the configured paths to a de-duplicated, sorted
// list of target documents. Directories are walked recursively for
// files with the configured extension; explicit file paths are taken
// as-is.
func (r *Runner) Discover() ([]string, error) {
	paths := r.opts.Paths
	if len(paths) == 0 {
		paths = []string{r.opts.RulesDir}
	}

	seen := make(map[string]bool)
	var targets []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			targets = append(targets, p)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err == nil && info.IsDir() {
			walkErr := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if strings.HasSuffix(strings.ToLower(d.Name()), r.opts.Extension) {
					add(path)
				}
				return nil
			})
			if walkErr != nil {
				return nil, fmt.Errorf("scan %s: %w", p, walkErr)
			}
			continue
		}
		// Non-directories (including missing paths) are validated
		// as explicit targets; read failures surface per document.
		add(p)
	}

	sort.Strings(targets)
	r.log.Debug("discovered targets", "count", len(targets))
	return targets, nil
}

// Run discovers documents and processes each through the pipeline in
// stable sorted order. Per-document failures never abort the run.
func (r *Runner) Run() (*Report, error) {
	targets, err := r.Discover()
	if err != nil {
		return nil, err
	}

	report := &Report{Files: make([]FileReport, 0, len(targets))}
	for _, path := range targets {
		report.Files = append(report.Files, r.processFile(path))
	}
	return report, nil
}

// processFile runs the fixed pipeline for one document: parse, schema,
// semantic rules, structure, then (strict only) filename policy and
// optional auto-fix. Only a read or parse failure short-circuits, and
// only for this document.
func (r *Runner) processFile(path string) FileReport {
	entry := FileReport{
		Path:     path,
		Findings: []lint.Finding{},
		Warnings: []string{},
		Fixes:    []filename.Fix{},
	}

	content, err := os.ReadFile(path)
	if err != nil {
		entry.Error = err.Error()
		return entry
	}

	doc, err := document.Parse(path, string(content))
	if err != nil {
		entry.Error = err.Error()
		return entry
	}

	if !doc.HasFrontmatter() {
		entry.Warnings = append(entry.Warnings, noFrontmatterWarning)
		return entry
	}

	fm := doc.Frontmatter
	entry.Findings = append(entry.Findings, r.validator.Validate(fm)...)
	entry.Findings = append(entry.Findings, r.analyzer.Analyze(fm)...)
	entry.Findings = append(entry.Findings, lint.CheckStructure(doc.Body)...)

	title := doc.Title()
	if r.opts.Strict {
		entry.Findings = append(entry.Findings, r.policy.Check(path, fm, title)...)

		if r.opts.Fix {
			fix, findings := r.policy.Rename(path, fm, title)
			entry.Findings = append(entry.Findings, findings...)
			if fix != nil {
				entry.Fixes = append(entry.Fixes, *fix)
				// Report the document under its new name from
				// here on.
				entry.Path = fix.To
				r.log.Info("renamed", "from", fix.From, "to", fix.To)
			}
		}

		if v, ok := fm.Get("ruleType"); !ok || v.IsZero() {
			entry.Findings = append(entry.Findings, lint.Finding{
				Category: lint.CategoryStyle,
				Message:  "add 'ruleType' (Always | Auto Attached | Agent Requested | Manual)",
			})
		}
	}

	r.log.Debug("validated", "path", entry.Path, "findings", len(entry.Findings))
	return entry
}
