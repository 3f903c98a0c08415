package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepgenius/prepgenius/internal/session"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the stored username",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		st, err := e.openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := session.Reset(cmd.Context(), st.Prefs()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Username cleared. You will be asked again on next start.")
		return nil
	},
}
