package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dami/hope/internal/api"
	"github.com/dami/hope/internal/models"
	"github.com/dami/hope/internal/output"
)

var adminProjectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

// uploadFromFlags builds a project upload from the shared create/update flags.
func uploadFromFlags(cmd *cobra.Command) api.ProjectUpload {
	flags := cmd.Flags()
	title, _ := flags.GetString("title")
	description, _ := flags.GetString("description")
	category, _ := flags.GetString("category")
	status, _ := flags.GetString("status")
	goal, _ := flags.GetString("goal")
	coverPhoto, _ := flags.GetString("cover-photo")
	mediaFiles, _ := flags.GetStringSlice("media")

	return api.ProjectUpload{
		Payload: api.ProjectPayload{
			Title:       title,
			Description: description,
			Category:    category,
			Status:      models.ProjectStatus(status),
			Goal:        goal,
		},
		CoverPhoto: coverPhoto,
		MediaFiles: mediaFiles,
	}
}

func addProjectPayloadFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "project title")
	cmd.Flags().String("description", "", "project description (markdown)")
	cmd.Flags().String("category", "", "project category")
	cmd.Flags().String("status", "", "status: active, completed, paused")
	cmd.Flags().String("goal", "", "fundraising goal")
	cmd.Flags().String("cover-photo", "", "path to cover photo")
	cmd.Flags().StringSlice("media", nil, "paths to media files (repeatable)")
}

var adminProjectCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		upload := uploadFromFlags(cmd)
		if upload.Payload.Title == "" {
			return fmt.Errorf("--title is required")
		}

		p, err := newStore().CreateProject(upload)
		if err != nil {
			return err
		}
		output.Success("Created project #%d %s", p.ID, p.Title)
		return nil
	},
}

var adminProjectUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		p, err := newStore().UpdateProject(id, uploadFromFlags(cmd))
		if err != nil {
			return err
		}
		output.Success("Updated project #%d %s", p.ID, p.Title)
		return nil
	},
}

var adminProjectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := newStore().DeleteProject(id); err != nil {
			return err
		}
		output.Success("Deleted project #%d", id)
		return nil
	},
}

var adminProjectPhotosAddCmd = &cobra.Command{
	Use:   "add-photos <id> <photo>...",
	Short: "Add photos to a project",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		p, err := newStore().AddProjectPhotos(id, args[1:], nil)
		if err != nil {
			return err
		}
		output.Success("Added %d photo(s) to project #%d", len(args)-1, p.ID)
		return nil
	},
}

var adminProjectPhotoDeleteCmd = &cobra.Command{
	Use:   "delete-photo <photo-id>",
	Short: "Remove a project photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		photoID, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := newStore().DeleteProjectPhoto(photoID); err != nil {
			return err
		}
		output.Success("Deleted photo #%d", photoID)
		return nil
	},
}

func init() {
	addProjectPayloadFlags(adminProjectCreateCmd)
	addProjectPayloadFlags(adminProjectUpdateCmd)

	adminProjectCmd.AddCommand(adminProjectCreateCmd)
	adminProjectCmd.AddCommand(adminProjectUpdateCmd)
	adminProjectCmd.AddCommand(adminProjectDeleteCmd)
	adminProjectCmd.AddCommand(adminProjectPhotosAddCmd)
	adminProjectCmd.AddCommand(adminProjectPhotoDeleteCmd)
	adminCmd.AddCommand(adminProjectCmd)
}
