package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dami/hope/internal/api"
	"github.com/dami/hope/internal/output"
	"github.com/dami/hope/internal/tui/browse"
)

var projectsCmd = &cobra.Command{
	Use:     "projects",
	Short:   "Browse fundraising projects",
	GroupID: "donor",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, pageSize, search, asJSON := pagingFrom(cmd.Flags())
		category, _ := cmd.Flags().GetString("category")
		status, _ := cmd.Flags().GetString("status")

		list, err := newStore().Projects(api.ProjectFilter{
			Search:   search,
			Category: category,
			Status:   status,
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
			fmt.Println("No projects found.")
			return nil
		}
		for i := range list.Data {
			fmt.Println(output.FormatProjectShort(&list.Data[i]))
		}
		fmt.Println(output.PageFooter(page, list.TotalPages, list.Total))
		return nil
	},
}

var projectsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a project with its full description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		p, err := newStore().Project(id)
		if err != nil {
			return err
		}
		if asJSON {
			return output.JSON(p)
		}

		fmt.Println(output.FormatProjectShort(p))
		if p.Description != "" {
			rendered, err := output.RenderMarkdown(p.Description)
			if err != nil {
				fmt.Println(p.Description)
			} else {
				fmt.Println(rendered)
			}
		}
		if len(p.Photos) > 0 {
			fmt.Printf("%d photo(s):\n", len(p.Photos))
			for _, photo := range p.Photos {
				fmt.Printf("  #%d %s\n", photo.ID, photo.URL)
			}
		}
		return nil
	},
}

var projectsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse projects interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		pageSize, _ := cmd.Flags().GetInt("page-size")

		model := browse.NewModel(newStore(), pageSize)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run browser: %w", err)
		}
		return nil
	},
}

func init() {
	addPagingFlags(projectsListCmd.Flags())
	projectsListCmd.Flags().String("category", "", "category filter")
	projectsListCmd.Flags().String("status", "", "status filter: active, completed, paused")
	projectsShowCmd.Flags().Bool("json", false, "output raw JSON")
	projectsBrowseCmd.Flags().Int("page-size", 10, "items per page")

	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsShowCmd)
	projectsCmd.AddCommand(projectsBrowseCmd)
	rootCmd.AddCommand(projectsCmd)
}
