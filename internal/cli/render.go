package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fundomain/pkg/pipeline"
)

// renderFlags holds the flags of the render command on top of domainFlags.
type renderFlags struct {
	domainFlags
	formats string
	output  string
	labels  bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [group]",
		Short: "Compute a fundamental domain and write it to files",
		Long: `Compute a fundamental domain for a congruence subgroup and write the
requested formats next to each other, named after --output:

  fundomain render "gamma0(11)" -f tex,svg -o out/g0-11
  fundomain render --config domain.toml --labels

Groups are written full, gamma0(N), gamma1(N) or gamma(N), or with the short
prefixes g0, g1 and g, e.g. g0:11.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, args)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "",
		"output format(s), comma-separated: "+strings.Join(pipeline.FormatNames(), ", ")+" (default tex,asy)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", pipeline.DefaultOutput, "base path of the written files")
	cmd.Flags().BoolVar(&flags.labels, "labels", false, "label each triangle with its word")

	return cmd
}

func (f *renderFlags) options(cmd *cobra.Command, args []string) (pipeline.Options, error) {
	opts, err := f.domainFlags.options(cmd, args)
	if err != nil {
		return opts, err
	}
	set := cmd.Flags().Changed
	if set("format") {
		opts.Formats = parseFormats(f.formats)
	}
	if set("output") || opts.Output == "" {
		opts.Output = f.output
	}
	if set("labels") {
		opts.Labels = f.labels
	}
	return opts, nil
}

func runRender(ctx context.Context, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	var spin *Spinner
	if slices.Contains(opts.Formats, pipeline.FormatPDFTeX) || slices.Contains(opts.Formats, pipeline.FormatPDFAsy) {
		spin = newSpinnerWithContext(ctx, "rendering "+strings.Join(opts.Formats, ", "))
		spin.Start()
	}

	prog := newProgress(logger)
	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
	if err != nil {
		if spin != nil {
			spin.StopWithError("render failed")
		}
		return err
	}
	if spin != nil {
		spin.Stop()
	}
	prog.done(fmt.Sprintf("Computed %d cosets", result.Stats.Cosets))

	paths, err := writeArtifacts(opts, result.Artifacts)
	if err != nil {
		return err
	}

	printSuccess("%s: %s cosets in %s rounds",
		result.Domain.Group.String(),
		StyleNumber.Render(fmt.Sprint(result.Stats.Cosets)),
		StyleNumber.Render(fmt.Sprint(result.Stats.Rounds)))
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// writeArtifacts writes every artifact in format order and returns the paths.
func writeArtifacts(opts pipeline.Options, artifacts map[string][]byte) ([]string, error) {
	if dir := filepath.Dir(opts.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	paths := make([]string, 0, len(opts.Formats))
	for _, format := range opts.Formats {
		path := opts.FileName(format)
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
