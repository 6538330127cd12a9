package cmd

import (
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:     "admin",
	Short:   "Back-office management (requires login)",
	GroupID: "admin",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return requireLogin()
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
}
