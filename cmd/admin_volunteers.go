package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dami/hope/internal/api"
	"github.com/dami/hope/internal/output"
)

var adminVolunteerCmd = &cobra.Command{
	Use:   "volunteers",
	Short: "Review volunteer applications",
}

var adminVolunteerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List volunteer applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, pageSize, search, asJSON := pagingFrom(cmd.Flags())
		role, _ := cmd.Flags().GetString("role")
		availability, _ := cmd.Flags().GetString("availability")

		list, err := newStore().Volunteers(api.VolunteerFilter{
			Search:       search,
			Role:         role,
			Availability: availability,
			Page:         page,
			PageSize:     pageSize,
		})
		if err != nil {
			return err
		}

		if asJSON {
			return output.JSON(list)
		}
		if len(list.Data) == 0 {
			fmt.Println("No applications found.")
			return nil
		}
		for i := range list.Data {
			fmt.Println(output.FormatVolunteerShort(&list.Data[i]))
		}
		fmt.Println(output.PageFooter(page, list.TotalPages, list.Total))
		return nil
	},
}

var adminVolunteerShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		v, err := newStore().Volunteer(id)
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return output.JSON(v)
		}

		fmt.Println(output.FormatVolunteerShort(v))
		fmt.Printf("  email: %s\n", v.Email)
		fmt.Printf("  phone: %s\n", v.PhoneNumber)
		fmt.Printf("  age: %s\n", v.Age)
		if v.Hours != "" || v.Days != "" {
			fmt.Printf("  part-time: %s hours, %s\n", v.Hours, v.Days)
		}
		if v.CVURL != "" {
			fmt.Printf("  cv: %s\n", v.CVURL)
		}
		fmt.Printf("  applied: %s\n", output.FormatTimeAgo(v.CreatedAt))
		return nil
	},
}

var adminVolunteerDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := newStore().DeleteVolunteer(id); err != nil {
			return err
		}
		output.Success("Deleted application #%d", id)
		return nil
	},
}

func init() {
	addPagingFlags(adminVolunteerListCmd.Flags())
	adminVolunteerListCmd.Flags().String("role", "", "role filter")
	adminVolunteerListCmd.Flags().String("availability", "", "availability filter")
	adminVolunteerShowCmd.Flags().Bool("json", false, "output raw JSON")

	adminVolunteerCmd.AddCommand(adminVolunteerListCmd)
	adminVolunteerCmd.AddCommand(adminVolunteerShowCmd)
	adminVolunteerCmd.AddCommand(adminVolunteerDeleteCmd)
	adminCmd.AddCommand(adminVolunteerCmd)
}
