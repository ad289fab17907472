package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved scans and their trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, openOpts{store: true})
		if err != nil {
			return err
		}
		defer d.Close()

		hist, err := d.store.ScanHistory(cmd.Context())
		if err != nil {
			return fmt.Errorf("load scan history: %w", err)
		}
		out := cmd.OutOrStdout()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(out, hist)
		}
		if len(hist.Scans) == 0 {
			fmt.Fprintln(out, d.catalog.T("ui.no_scans"))
			return nil
		}

		tw := newTable(out)
		fmt.Fprintln(tw, "DATE\tARCHETYPE\tSTATUS\tINTEGRITY\tENTROPY\tSHARE CODE")
		for _, rec := range hist.Scans {
			r := rec.Result
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
				rec.SavedAt.Local().Format("2006-01-02 15:04"),
				d.catalog.T("archetypes."+string(r.ArchetypeKey)+".title"),
				r.Status, r.Integrity, r.EntropyScore, r.ShareCode)
		}
		return tw.Flush()
	},
}

func init() {
	historyCmd.Flags().Bool("json", false, "Print the raw scan history as JSON")
}
