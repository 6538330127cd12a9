package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dami/hope/internal/api"
	"github.com/dami/hope/internal/output"
)

var adminSubscriptionCmd = &cobra.Command{
	Use:   "subscriptions",
	Short: "Review newsletter subscriptions",
}

var adminSubscriptionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, pageSize, search, asJSON := pagingFrom(cmd.Flags())

		list, err := newStore().Subscriptions(api.SubscriptionFilter{
			Search:   search,
			Page:     page,
			PageSize: pageSize,
		})
		if err != nil {
			return err
		}

		if asJSON {
			return output.JSON(list)
		}
		if len(list.Data) == 0 {
			fmt.Println("No subscriptions found.")
			return nil
		}
		for i := range list.Data {
			fmt.Println(output.FormatSubscriptionShort(&list.Data[i]))
		}
		fmt.Println(output.PageFooter(page, list.TotalPages, list.Total))
		return nil
	},
}

func init() {
	addPagingFlags(adminSubscriptionListCmd.Flags())
	adminSubscriptionCmd.AddCommand(adminSubscriptionListCmd)
	adminCmd.AddCommand(adminSubscriptionCmd)
}
