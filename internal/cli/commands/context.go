package commands

import (
	"context"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/promptstack/rulelint/internal/cli/output"
	"github.com/promptstack/rulelint/internal/config"
)

// ctxKey keys the CommandContext in a command's context.
type ctxKey struct{}

// CommandContext carries the resolved configuration, renderer, and
// logger from the root command into subcommands.
type CommandContext struct {
	Cfg      *config.Config
	Renderer *output.Renderer
	Log      *slog.Logger
}

// WithCommandContext stores the command context.
func WithCommandContext(ctx context.Context, c *CommandContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext retrieves the command context, falling back to safe
// defaults so commands stay testable in isolation.
func FromContext(ctx context.Context) *CommandContext {
	if c, ok := ctx.Value(ctxKey{}).(*CommandContext); ok {
		return c
	}
	return &CommandContext{
		Cfg:      &config.Config{RulesDir: config.DefaultRulesDir, Extension: config.DefaultExtension},
		Renderer: output.NewRenderer(os.Stdout, os.Stderr, output.ModeAuto),
		Log:      slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
}
