package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/dami/hope/internal/browser"
	"github.com/dami/hope/internal/donation"
	"github.com/dami/hope/internal/models"
	"github.com/dami/hope/internal/output"
)

var donateCmd = &cobra.Command{
	Use:     "donate",
	Short:   "Make a donation",
	GroupID: "donor",
	Long: `Submit a donation intent and open the checkout page.

With no flags an interactive form collects the details. The payment
processor is chosen from the currency: USD goes through PayPal, NGN
through Paystack.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		amount, _ := flags.GetString("amount")
		name, _ := flags.GetString("name")
		email, _ := flags.GetString("email")
		currency, _ := flags.GetString("currency")
		monthly, _ := flags.GetBool("monthly")
		projectID, _ := flags.GetInt("project")
		noBrowser, _ := flags.GetBool("no-browser")

		form := donation.NewForm(projectID)
		form.SetAmount(amount)
		form.DonorName = name
		form.DonorEmail = email
		if currency != "" {
			if err := form.SelectCurrency(models.Currency(currency)); err != nil {
				return err
			}
		}
		if monthly {
			if err := form.SelectFrequency(models.FrequencyMonthly); err != nil {
				return err
			}
		}

		// Prompt interactively for whatever the flags left blank.
		if !form.CanSubmit() {
			if err := runDonateForm(form); err != nil {
				return err
			}
		}

		resp, err := form.Submit(newStore())
		if err != nil {
			if errors.Is(err, donation.ErrIncomplete) {
				return fmt.Errorf("%w (use --amount, --name, --email)", err)
			}
			return err
		}

		output.Success("Donation intent created: %s %s",
			output.FormatAmount(form.Currency, form.Amount), form.Frequency)
		fmt.Printf("Pay via %s at:\n  %s\n", form.PaymentClient(), resp.CheckoutURL)

		if !noBrowser && resp.CheckoutURL != "" {
			if err := browser.Open(resp.CheckoutURL); err != nil {
				output.Warning("could not open browser: %v", err)
			}
		}
		return nil
	},
}

// runDonateForm fills the remaining form fields interactively.
func runDonateForm(form *donation.Form) error {
	currency := string(form.Currency)
	frequency := string(form.Frequency)
	amount := form.Amount
	preset := ""

	amountOptions := make([]huh.Option[string], 0, len(donation.PresetAmounts)+1)
	for _, a := range donation.PresetAmounts {
		amountOptions = append(amountOptions, huh.NewOption(a, a))
	}
	amountOptions = append(amountOptions, huh.NewOption("Other", ""))

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Currency").
				Options(
					huh.NewOption("NGN — Nigerian Naira (Paystack)", string(models.CurrencyNGN)),
					huh.NewOption("USD — US Dollar (PayPal)", string(models.CurrencyUSD)),
				).
				Value(&currency),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("One-time", string(models.FrequencyOnce)),
					huh.NewOption("Monthly", string(models.FrequencyMonthly)),
				).
				Value(&frequency),
			huh.NewSelect[string]().
				Title("Amount").
				Options(amountOptions...).
				Value(&preset),
		),
	}
	if err := huh.NewForm(groups...).Run(); err != nil {
		return err
	}

	if preset != "" {
		amount = preset
	}

	fields := []huh.Field{}
	if amount == "" {
		fields = append(fields, huh.NewInput().
			Title("Amount").
			Validate(requiredField("amount")).
			Value(&amount))
	}
	if form.DonorName == "" {
		fields = append(fields, huh.NewInput().
			Title("Full name").
			Validate(requiredField("name")).
			Value(&form.DonorName))
	}
	if form.DonorEmail == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Validate(requiredField("email")).
			Value(&form.DonorEmail))
	}
	if len(fields) > 0 {
		if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
			return err
		}
	}

	form.SetAmount(amount)
	if err := form.SelectCurrency(models.Currency(currency)); err != nil {
		return err
	}
	return form.SelectFrequency(models.Frequency(frequency))
}

// requiredField is a huh validator rejecting empty input.
func requiredField(name string) func(string) error {
	return func(v string) error {
		if v == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func init() {
	donateCmd.Flags().String("amount", "", "donation amount")
	donateCmd.Flags().String("name", "", "donor full name")
	donateCmd.Flags().String("email", "", "donor email")
	donateCmd.Flags().String("currency", "", "NGN or USD (default NGN)")
	donateCmd.Flags().Bool("monthly", false, "donate monthly instead of once")
	donateCmd.Flags().Int("project", 0, "project id to donate to (0 = general fund)")
	donateCmd.Flags().Bool("no-browser", false, "print the checkout URL without opening a browser")
	rootCmd.AddCommand(donateCmd)
}
