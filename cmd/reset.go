package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase answers, node progress and saved scans",
	Long:  "Erase answers, node progress, roadmap flags and saved scans. The language preference is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			prompt := promptui.Prompt{
				Label:     "Erase all progress",
				IsConfirm: true,
			}
			if _, err := prompt.Run(); err != nil {
				if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
				return fmt.Errorf("confirm reset: %w", err)
			}
		}

		d, err := openDeps(cmd, openOpts{store: true})
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.store.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		d.logger.Info("progress cleared", "db", d.dbPath)
		fmt.Fprintln(cmd.OutOrStdout(), "Progress cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
