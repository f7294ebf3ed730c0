package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fundomain/pkg/domain"
	"github.com/matzehuels/fundomain/pkg/pipeline"
)

func (c *CLI) cosetsCommand() *cobra.Command {
	var flags domainFlags

	cmd := &cobra.Command{
		Use:   "cosets [group]",
		Short: "Print the coset representatives and their T, T⁻¹, S links",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, args)
			if err != nil {
				return err
			}
			return runCosets(cmd.Context(), opts)
		},
	}
	flags.register(cmd)
	return cmd
}

func runCosets(ctx context.Context, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	prog := newProgress(logger)
	d, err := pipeline.NewRunner(logger).Enumerate(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Enumerated %d cosets", d.Len()))

	fmt.Fprintln(stdout, StyleTitle.Render(d.Group.String()))
	fmt.Fprintln(stdout, cosetTable(d))

	idx, known := d.Group.Index()
	switch {
	case !known:
		printInfo("%d cosets in %d rounds", d.Len(), d.Rounds)
	case idx == d.Len():
		printSuccess("%d cosets in %d rounds, matches index %d", d.Len(), d.Rounds, idx)
	default:
		printWarning("%d cosets but index is %d", d.Len(), idx)
	}
	return nil
}

func cosetTable(d *domain.Domain) string {
	rows := make([][]string, len(d.Reps))
	for i, rep := range d.Reps {
		rows[i] = []string{
			strconv.Itoa(i),
			wordLabel(rep),
			rep.Matrix.String(),
			strconv.Itoa(rep.Distance),
			strconv.Itoa(int(rep.T)),
			strconv.Itoa(int(rep.TInv)),
			strconv.Itoa(int(rep.S)),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Word", "Matrix", "Dist", "T", "T⁻¹", "S").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			switch col {
			case 0, 3:
				return base.Foreground(colorDim)
			case 1:
				return base.Foreground(colorCyan)
			}
			return base
		})
	return t.Render()
}
