// Package output provides styled terminal output helpers (success, error,
// warning, domain formatting) using lipgloss.
package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dami/hope/internal/models"
)

var (
	// Styles
	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	amountStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	donationStyles = map[models.DonationStatus]lipgloss.Style{
		models.DonationPending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.DonationCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		models.DonationFailed:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
	projectStyles = map[models.ProjectStatus]lipgloss.Style{
		models.ProjectActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		models.ProjectCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		models.ProjectPaused:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// JSON outputs data as JSON
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// FormatDonationStatus formats a donation status with color
func FormatDonationStatus(s models.DonationStatus) string {
	style, ok := donationStyles[s]
	if !ok {
		return string(s)
	}
	return style.Render(fmt.Sprintf("[%s]", s))
}

// FormatProjectStatus formats a project status with color
func FormatProjectStatus(s models.ProjectStatus) string {
	style, ok := projectStyles[s]
	if !ok {
		return string(s)
	}
	return style.Render(fmt.Sprintf("[%s]", s))
}

// FormatAmount formats a currency amount, e.g. "NGN 5000" or "USD 100"
func FormatAmount(currency models.Currency, amount string) string {
	return amountStyle.Render(fmt.Sprintf("%s %s", currency, amount))
}

// FormatDonationShort formats a donation in short list format
func FormatDonationShort(d *models.Donation) string {
	var parts []string
	parts = append(parts, titleStyle.Render(fmt.Sprintf("#%d", d.ID)))
	parts = append(parts, FormatAmount(d.Currency, d.Amount))
	parts = append(parts, d.DonorFullName)
	parts = append(parts, subtleStyle.Render(string(d.Frequency)))
	parts = append(parts, subtleStyle.Render(string(d.PaymentClient)))
	parts = append(parts, FormatDonationStatus(d.Status))
	return strings.Join(parts, "  ")
}

// FormatProjectShort formats a project in short list format
func FormatProjectShort(p *models.Project) string {
	var parts []string
	parts = append(parts, titleStyle.Render(fmt.Sprintf("#%d", p.ID)))
	parts = append(parts, p.Title)
	if p.Category != "" {
		parts = append(parts, subtleStyle.Render(p.Category))
	}
	if p.Goal != "" {
		parts = append(parts, subtleStyle.Render(fmt.Sprintf("%s/%s raised", zeroAs(p.Raised, "0"), p.Goal)))
	}
	parts = append(parts, FormatProjectStatus(p.Status))
	return strings.Join(parts, "  ")
}

// FormatVolunteerShort formats a volunteer application in short list format
func FormatVolunteerShort(v *models.Volunteer) string {
	var parts []string
	parts = append(parts, titleStyle.Render(fmt.Sprintf("#%d", v.ID)))
	parts = append(parts, v.FirstName+" "+v.LastName)
	parts = append(parts, subtleStyle.Render(string(v.Role)))
	parts = append(parts, subtleStyle.Render(string(v.Availability)))
	parts = append(parts, subtleStyle.Render(v.Country))
	return strings.Join(parts, "  ")
}

// FormatSubscriptionShort formats a subscription in short list format
func FormatSubscriptionShort(s *models.Subscription) string {
	return fmt.Sprintf("%s  %s  %s",
		titleStyle.Render(fmt.Sprintf("#%d", s.ID)),
		s.Email,
		subtleStyle.Render(FormatTimeAgo(s.CreatedAt)))
}

// PageFooter renders "page p of n (total items)" for list commands
func PageFooter(page, totalPages, total int) string {
	return subtleStyle.Render(fmt.Sprintf("page %d of %d (%d total)", page, totalPages, total))
}

// FormatTimeAgo formats a time as a human-readable "ago" string
func FormatTimeAgo(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1h ago"
		}
		return fmt.Sprintf("%dh ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1d ago"
		}
		return fmt.Sprintf("%dd ago", days)
	default:
		return t.Format("2006-01-02")
	}
}

func zeroAs(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
