package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fundomain/pkg/domain"
	"github.com/matzehuels/fundomain/pkg/errors"
	"github.com/matzehuels/fundomain/pkg/subgroup"
)

// Runner executes pipeline stages.
//
// The Runner holds no per-run state, so multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete enumerate → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Enumerate
	start := time.Now()
	d, err := r.Enumerate(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("enumerate: %w", err)
	}
	result.Domain = d
	result.Stats.EnumerateTime = time.Since(start)
	result.Stats.Cosets = d.Len()
	result.Stats.Rounds = d.Rounds
	if idx, ok := d.Group.Index(); ok {
		result.Stats.Index = idx
	}

	r.Logger.Info("enumerated cosets",
		"group", d.Group.String(),
		"cosets", d.Len(),
		"rounds", d.Rounds,
		"duration", result.Stats.EnumerateTime)

	// Stage 2: Render
	start = time.Now()
	artifacts, err := r.Render(ctx, d, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Enumerate parses the group in opts and computes its fundamental domain.
func (r *Runner) Enumerate(ctx context.Context, opts Options) (*domain.Domain, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	g, err := subgroup.Parse(opts.Group)
	if err != nil {
		return nil, err
	}
	if idx, ok := g.Index(); ok && idx > opts.Limit {
		return nil, errors.Wrap(errors.ErrCodeLimitExceeded, domain.ErrLimitExceeded,
			"%s has index %d, more than the limit of %d", g.String(), idx, opts.Limit)
	}
	choose, err := domain.Choice(opts.Choice, opts.Seed)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("enumerating", "group", g.String(), "choice", opts.Choice, "seed", opts.Seed, "limit", opts.Limit)
	d, err := domain.Enumerate(ctx, g, choose,
		domain.WithLimit(opts.Limit),
		domain.WithLogger(r.Logger))
	if err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Render produces every format in opts for d.
func (r *Runner) Render(ctx context.Context, d *domain.Domain, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return Render(ctx, d, opts)
}
