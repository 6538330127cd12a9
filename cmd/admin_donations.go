package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dami/hope/internal/api"
	"github.com/dami/hope/internal/output"
)

var adminDonationCmd = &cobra.Command{
	Use:   "donations",
	Short: "Review donations",
}

var adminDonationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List donations",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, pageSize, search, asJSON := pagingFrom(cmd.Flags())
		frequency, _ := cmd.Flags().GetString("frequency")
		status, _ := cmd.Flags().GetString("status")
		method, _ := cmd.Flags().GetString("method")

		list, err := newStore().Donations(api.DonationFilter{
			Search:        search,
			Frequency:     frequency,
			Status:        status,
			PaymentMethod: method,
			Page:          page,
			PageSize:      pageSize,
		})
		if err != nil {
			return err
		}

		if asJSON {
			return output.JSON(list)
		}
		if len(list.Data) == 0 {
			fmt.Println("No donations found.")
			return nil
		}
		for i := range list.Data {
			fmt.Println(output.FormatDonationShort(&list.Data[i]))
		}
		fmt.Println(output.PageFooter(page, list.TotalPages, list.Total))
		return nil
	},
}

var adminDonationShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one donation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		d, err := newClient().GetDonation(id)
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return output.JSON(d)
		}

		fmt.Println(output.FormatDonationShort(d))
		fmt.Printf("  donor: %s <%s>\n", d.DonorFullName, d.DonorEmail)
		if d.ProjectID != 0 {
			fmt.Printf("  project: #%d\n", d.ProjectID)
		} else {
			fmt.Println("  project: general fund")
		}
		fmt.Printf("  created: %s\n", output.FormatTimeAgo(d.CreatedAt))
		return nil
	},
}

func init() {
	addPagingFlags(adminDonationListCmd.Flags())
	adminDonationListCmd.Flags().String("frequency", "", "frequency filter: ONCE, MONTHLY")
	adminDonationListCmd.Flags().String("status", "", "status filter: pending, completed, failed")
	adminDonationListCmd.Flags().String("method", "", "payment method filter: PAYSTACK, PAYPAL")
	adminDonationShowCmd.Flags().Bool("json", false, "output raw JSON")

	adminDonationCmd.AddCommand(adminDonationListCmd)
	adminDonationCmd.AddCommand(adminDonationShowCmd)
	adminCmd.AddCommand(adminDonationCmd)
}
