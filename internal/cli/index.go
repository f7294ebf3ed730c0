package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fundomain/pkg/subgroup"
)

func (c *CLI) indexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "index <group>",
		Short: "Print the index of a subgroup in PSL₂(ℤ)",
		Long: `Print the number of cosets of ±Γ in PSL₂(ℤ), which is the number of
triangles in every fundamental domain "render" draws for the group.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := subgroup.Parse(args[0])
			if err != nil {
				return err
			}
			printIndex(g)
			return nil
		},
	}
}

func printIndex(g subgroup.Group) {
	printKeyValue("group", g.String())
	if n := g.Level(); n > 0 {
		printKeyValue("level", strconv.FormatInt(n, 10))
		if ps := subgroup.PrimeFactors(int(n)); len(ps) > 0 {
			names := make([]string, len(ps))
			for i, p := range ps {
				names[i] = strconv.Itoa(p)
			}
			printKeyValue("primes", strings.Join(names, " "))
		}
	}
	idx, ok := g.Index()
	if !ok {
		printKeyValue("index", "unknown")
		return
	}
	printKeyValue("index", StyleNumber.Render(fmt.Sprint(idx)))
	if g.Kind() == subgroup.KindGamma0 {
		printDetail("ψ(%d) = %d", g.Level(), idx)
	}
}
