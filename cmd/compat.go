package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/genesis/internal/compat"
)

var compatCmd = &cobra.Command{
	Use:   "compat <a.json> <b.json>",
	Short: "Compare two profiles",
	Long:  "Compare two profiles. Each file holds either an answer history or a saved analysis result; b is read as the partner.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, openOpts{})
		if err != nil {
			return err
		}
		defer d.Close()

		a, err := compat.LoadProfile(args[0], d.engine)
		if err != nil {
			return fmt.Errorf("profile a: %w", err)
		}
		b, err := compat.LoadProfile(args[1], d.engine)
		if err != nil {
			return fmt.Errorf("profile b: %w", err)
		}

		rep := compat.Analyze(a, b)
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd.OutOrStdout(), rep)
		}
		return printReport(cmd.OutOrStdout(), d.catalog, rep)
	},
}

func init() {
	compatCmd.Flags().Bool("json", false, "Print the report as JSON")
}
