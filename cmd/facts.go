package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/abhisek/mathtik/internal/facts"
	"github.com/spf13/cobra"
)

var factsCmd = &cobra.Command{
	Use:   "facts",
	Short: "Inspect the fact catalog",
}

var factsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog facts",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")
		bank := facts.Default()

		list := bank.All()
		if level != 0 {
			if level < facts.MinLevel || level > facts.MaxLevel {
				return fmt.Errorf("level must be between %d and %d", facts.MinLevel, facts.MaxLevel)
			}
			list = bank.ByLevel(level)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tLEVEL\tFACT\tANSWER")
		for _, f := range list {
			fmt.Fprintf(w, "%s\t%d\t%s\t%d\n", f.ID, f.Level, f.Question(), f.Answer)
		}
		return w.Flush()
	},
}

func init() {
	factsListCmd.Flags().Int("level", 0, "Only list facts introduced at this level")
	factsCmd.AddCommand(factsListCmd)
}
