package validate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/promptstack/rulelint/pkg/filename"
	"github.com/promptstack/rulelint/pkg/lint"
)

// FileReport holds the outcome for one document.
type FileReport struct {
	Path string `json:"path"`
	// Error is set when the document could not be read or its
	// frontmatter could not be parsed; remaining checks were skipped.
	Error    string         `json:"error,omitempty"`
	Findings []lint.Finding `json:"errors"`
	Warnings []string       `json:"warnings"`
	Fixes    []filename.Fix `json:"fixed"`
}

// OK reports whether the document passed with nothing to show.
func (f *FileReport) OK() bool {
	return f.Error == "" && len(f.Findings) == 0 && len(f.Warnings) == 0
}

// Failed reports whether the document degrades the run to failure.
// Warnings do not fail the run.
func (f *FileReport) Failed() bool {
	return f.Error != "" || len(f.Findings) > 0
}

// Report is the aggregated result of one validation run, in document
// processing order. It is owned exclusively by the Runner that built
// it.
type Report struct {
	Files []FileReport `json:"files"`
}

// Failed reports whether any document across the run produced findings.
func (r *Report) Failed() bool {
	for i := range r.Files {
		if r.Files[i].Failed() {
			return true
		}
	}
	return false
}

// FindingCount returns the total number of findings across the run,
// counting read/parse failures as one finding each.
func (r *Report) FindingCount() int {
	n := 0
	for i := range r.Files {
		n += len(r.Files[i].Findings)
		if r.Files[i].Error != "" {
			n++
		}
	}
	return n
}

// FixCount returns the total number of applied fixes.
func (r *Report) FixCount() int {
	n := 0
	for i := range r.Files {
		n += len(r.Files[i].Fixes)
	}
	return n
}

// WriteJSON serializes the report to path for machine consumption.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report to %s: %w", path, err)
	}
	return nil
}
