package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dami/hope/internal/api"
	"github.com/dami/hope/internal/output"
)

var subscribeCmd = &cobra.Command{
	Use:     "subscribe <email>",
	Short:   "Subscribe to the newsletter",
	GroupID: "donor",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := args[0]

		sub, err := newStore().Subscribe(email)
		if err != nil {
			if api.IsAlreadyExists(err) {
				output.Warning("%s is already subscribed", email)
				return nil
			}
			return fmt.Errorf("subscribe: %w", err)
		}

		output.Success("Subscribed %s", sub.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(subscribeCmd)
}
