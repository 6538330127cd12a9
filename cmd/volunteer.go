package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/dami/hope/internal/models"
	"github.com/dami/hope/internal/output"
	"github.com/dami/hope/internal/volunteer"
)

var volunteerCmd = &cobra.Command{
	Use:     "volunteer",
	Short:   "Apply to volunteer",
	GroupID: "donor",
	Long: `Submit a volunteer application with a CV attachment.

The CAPTCHA token from the website widget is required; without it the
application is rejected before anything is sent. Part-time applicants
also provide weekly hours and preferred days.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		form := volunteer.NewForm()
		form.FirstName, _ = flags.GetString("first-name")
		form.LastName, _ = flags.GetString("last-name")
		form.Email, _ = flags.GetString("email")
		form.PhoneNumber, _ = flags.GetString("phone")
		form.Age, _ = flags.GetString("age")
		form.Country, _ = flags.GetString("country")
		form.CVPath, _ = flags.GetString("cv")
		form.Hours, _ = flags.GetString("hours")
		form.Days, _ = flags.GetString("days")

		if role, _ := flags.GetString("role"); role != "" {
			form.Role = models.Role(role)
		}
		if avail, _ := flags.GetString("availability"); avail != "" {
			if err := form.SetAvailability(models.Availability(avail)); err != nil {
				return err
			}
		}
		captcha, _ := flags.GetString("captcha")
		form.SetCaptcha(captcha)

		if !form.CanSubmit() {
			if err := runVolunteerForm(form); err != nil {
				return err
			}
		}

		v, err := form.Submit(newStore())
		if err != nil {
			return err
		}

		output.Success("Application #%d submitted for %s %s (%s, %s)",
			v.ID, v.FirstName, v.LastName, v.Role, v.Availability)
		return nil
	},
}

// runVolunteerForm fills the remaining fields interactively. The captcha
// token cannot be collected here; it comes from the website widget.
func runVolunteerForm(form *volunteer.Form) error {
	role := string(form.Role)
	availability := string(form.Availability)

	identity := huh.NewGroup(
		huh.NewInput().Title("First name").Validate(requiredField("first name")).Value(&form.FirstName),
		huh.NewInput().Title("Last name").Validate(requiredField("last name")).Value(&form.LastName),
		huh.NewInput().Title("Email").Validate(requiredField("email")).Value(&form.Email),
		huh.NewInput().Title("Phone number").Validate(requiredField("phone number")).Value(&form.PhoneNumber),
		huh.NewInput().Title("Age").Validate(requiredField("age")).Value(&form.Age),
		huh.NewInput().Title("Country").Validate(requiredField("country")).Value(&form.Country),
	)
	commitment := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Role").
			Options(
				huh.NewOption("Computer technician", string(models.RoleComputerTech)),
				huh.NewOption("Lab technician", string(models.RoleLabTech)),
				huh.NewOption("Medical technician", string(models.RoleMedicalTech)),
				huh.NewOption("Other", string(models.RoleOther)),
			).
			Value(&role),
		huh.NewSelect[string]().
			Title("Availability").
			Options(
				huh.NewOption("Full-time", string(models.AvailabilityFullTime)),
				huh.NewOption("Part-time", string(models.AvailabilityPartTime)),
			).
			Value(&availability),
	)
	attachment := huh.NewGroup(
		huh.NewFilePicker().
			Title("CV (.pdf, .doc, .docx)").
			AllowedTypes([]string{".pdf", ".doc", ".docx"}).
			Value(&form.CVPath),
	)

	if err := huh.NewForm(identity, commitment, attachment).Run(); err != nil {
		return err
	}

	form.Role = models.Role(role)
	if err := form.SetAvailability(models.Availability(availability)); err != nil {
		return err
	}

	if form.Availability == models.AvailabilityPartTime && (form.Hours == "" || form.Days == "") {
		partTime := huh.NewGroup(
			huh.NewInput().Title("Hours per week").Value(&form.Hours),
			huh.NewInput().Title("Preferred days").Value(&form.Days),
		)
		if err := huh.NewForm(partTime).Run(); err != nil {
			return err
		}
	}

	if form.CaptchaToken == "" {
		return fmt.Errorf("captcha token required: complete the widget on the website and pass it with --captcha")
	}
	return nil
}

func init() {
	volunteerCmd.Flags().String("first-name", "", "first name")
	volunteerCmd.Flags().String("last-name", "", "last name")
	volunteerCmd.Flags().String("email", "", "email address")
	volunteerCmd.Flags().String("phone", "", "phone number")
	volunteerCmd.Flags().String("age", "", "age")
	volunteerCmd.Flags().String("country", "", "country")
	volunteerCmd.Flags().String("role", "", "role: computer-tech, lab-tech, medical-tech, others")
	volunteerCmd.Flags().String("availability", "", "availability: full-time or part-time")
	volunteerCmd.Flags().String("hours", "", "hours per week (part-time)")
	volunteerCmd.Flags().String("days", "", "preferred days (part-time)")
	volunteerCmd.Flags().String("cv", "", "path to CV file (.pdf, .doc, .docx)")
	volunteerCmd.Flags().String("captcha", "", "captcha token from the website widget")
	rootCmd.AddCommand(volunteerCmd)
}
