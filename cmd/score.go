package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/genesis/internal/profile"
)

var scoreCmd = &cobra.Command{
	Use:   "score <history.json>",
	Short: "Validate and score a saved answer history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, openOpts{})
		if err != nil {
			return err
		}
		defer d.Close()

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read history: %w", err)
		}
		h, err := profile.ParseHistory(raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		res := d.engine.ComputeResult(h)
		d.logger.Debug("history scored", "answers", len(h), "archetype", res.ArchetypeKey)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd.OutOrStdout(), res)
		}
		return printResult(cmd.OutOrStdout(), d.catalog, res)
	},
}

func init() {
	scoreCmd.Flags().Bool("json", false, "Print the full analysis as JSON")
}
