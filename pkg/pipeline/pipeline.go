// Package pipeline provides the enumerate → render pipeline for fundomain.
//
// The CLI and the preview server both go through this package so that option
// defaults, validation and output naming stay identical across entry points.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Enumerate: parse the group, pick a choice function and compute the
//     fundamental domain
//  2. Render: produce the requested formats (TeX, Asymptote, SVG, DOT, PDF)
//
// Each stage can run on its own or as part of [Runner.Execute].
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Group:   "gamma0(17)",
//	    Formats: []string{"tex", "asy"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tex := result.Artifacts["tex"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fundomain/pkg/domain"
	"github.com/matzehuels/fundomain/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultChoice is the choice function used when none is given.
	DefaultChoice = "appearance-random"

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultLimit bounds the number of representatives. Enumeration is
	// cubic in the index, so larger domains are impractical to compute.
	DefaultLimit = 2000

	// MaxLimit is the largest limit a caller may request.
	MaxLimit = 5000

	// DefaultOutput is the base name of written files.
	DefaultOutput = "main"
)

// Format constants for output formats.
const (
	FormatTeX      = "tex"
	FormatAsy      = "asy"
	FormatSVG      = "svg"
	FormatDOT      = "dot"
	FormatGraphSVG = "graph-svg"
	FormatPDFTeX   = "pdf-tex"
	FormatPDFAsy   = "pdf-asy"
)

// DefaultFormats are rendered when no format is requested.
var DefaultFormats = []string{FormatTeX, FormatAsy}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatTeX:      true,
	FormatAsy:      true,
	FormatSVG:      true,
	FormatDOT:      true,
	FormatGraphSVG: true,
	FormatPDFTeX:   true,
	FormatPDFAsy:   true,
}

// FormatNames lists the supported formats, sorted.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run. The tags let the
// same struct be read from JSON, TOML and YAML config files.
type Options struct {
	Group   string   `json:"group" toml:"group" yaml:"group"`
	Choice  string   `json:"choice,omitempty" toml:"choice" yaml:"choice"`
	Seed    uint64   `json:"seed,omitempty" toml:"seed" yaml:"seed"`
	Limit   int      `json:"limit,omitempty" toml:"limit" yaml:"limit"`
	Labels  bool     `json:"labels,omitempty" toml:"labels" yaml:"labels"`
	Formats []string `json:"formats,omitempty" toml:"formats" yaml:"formats"`
	Output  string   `json:"output,omitempty" toml:"output" yaml:"output"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-" yaml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Domain is the computed fundamental domain.
	Domain *domain.Domain

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Cosets        int
	Rounds        int
	Index         int // predicted index, 0 if unknown
	EnumerateTime time.Duration
	RenderTime    time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateChoice checks that a choice function name is known.
func ValidateChoice(name string) error {
	if !slices.Contains(domain.ChoiceNames(), name) {
		return errors.New(errors.ErrCodeInvalidChoice, "invalid choice: %q (must be one of: %s)",
			name, strings.Join(domain.ChoiceNames(), ", "))
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateGroupSpec(o.Group); err != nil {
		return err
	}
	if o.Choice == "" {
		o.Choice = DefaultChoice
	}
	if err := ValidateChoice(o.Choice); err != nil {
		return err
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Limit < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "limit must not be negative, got %d", o.Limit)
	}
	if o.Limit > MaxLimit {
		return errors.New(errors.ErrCodeInvalidInput, "limit must be at most %d, got %d", MaxLimit, o.Limit)
	}
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if err := errors.ValidateOutputBase(o.Output); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// FileName returns the file an artifact of format is written to.
func (o *Options) FileName(format string) string {
	base := o.Output
	if base == "" {
		base = DefaultOutput
	}
	switch format {
	case FormatGraphSVG:
		return base + "-graph.svg"
	case FormatPDFTeX:
		return base + "-tex.pdf"
	case FormatPDFAsy:
		return base + "-asy.pdf"
	}
	return base + "." + format
}

// ContentType returns the MIME type served for format.
func ContentType(format string) string {
	switch format {
	case FormatSVG, FormatGraphSVG:
		return "image/svg+xml"
	case FormatPDFTeX, FormatPDFAsy:
		return "application/pdf"
	case FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}
