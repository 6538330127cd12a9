// Package donation holds the donation intent form state machine: collect
// donor input, derive the payment processor from the currency, submit the
// intent, and hand off to the external checkout page.
package donation

import (
	"errors"
	"strings"

	"github.com/dami/hope/internal/api"
	"github.com/dami/hope/internal/models"
)

// Status is the submission state of one form instance.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

var (
	// ErrIncomplete blocks submission while amount, name, or email is empty.
	ErrIncomplete = errors.New("amount, name and email are required")
	// ErrSubmitPending rejects a re-entrant submit from the same form
	// instance. Nothing prevents a second process from racing; idempotency
	// is the backend's responsibility.
	ErrSubmitPending = errors.New("submission already in progress")
)

// PresetAmounts are the quick-select donation amounts.
var PresetAmounts = []string{"25", "50", "100", "250"}

// Submitter issues the donation intent mutation. *resource.Store satisfies
// it; tests substitute fakes.
type Submitter interface {
	Donate(*api.DonationIntent) (*api.CheckoutResponse, error)
}

// Form is one donation form instance. The payment processor is never part
// of the state: it is derived from Currency when the intent is built, so a
// currency change can never leave a mismatched pair behind.
type Form struct {
	Amount     string
	DonorName  string
	DonorEmail string
	Currency   models.Currency
	Frequency  models.Frequency
	ProjectID  int // 0 = general donation, omitted from the intent

	status  Status
	lastErr error
}

// NewForm creates a donation form with the defaults the donor sees:
// NGN, one-time. projectID is 0 for a general donation.
func NewForm(projectID int) *Form {
	return &Form{
		Currency:  models.CurrencyNGN,
		Frequency: models.FrequencyOnce,
		ProjectID: projectID,
		status:    StatusIdle,
	}
}

// SelectCurrency sets the currency. The processor is not touched here; it
// is recomputed from the currency at build time.
func (f *Form) SelectCurrency(c models.Currency) error {
	switch c {
	case models.CurrencyNGN, models.CurrencyUSD:
		f.Currency = c
		return nil
	default:
		return errors.New("unsupported currency: " + string(c))
	}
}

// SelectFrequency sets the donation frequency.
func (f *Form) SelectFrequency(fr models.Frequency) error {
	switch fr {
	case models.FrequencyOnce, models.FrequencyMonthly:
		f.Frequency = fr
		return nil
	default:
		return errors.New("unsupported frequency: " + string(fr))
	}
}

// SetAmount accepts a preset or free-text amount. Stored as entered; the
// backend owns numeric validation.
func (f *Form) SetAmount(v string) {
	f.Amount = strings.TrimSpace(v)
}

// PaymentClient returns the processor the current currency routes to.
func (f *Form) PaymentClient() models.PaymentClient {
	return models.ProcessorFor(f.Currency)
}

// CanSubmit reports whether the submit guard is open: amount, donor name
// and donor email must all be non-empty.
func (f *Form) CanSubmit() bool {
	return strings.TrimSpace(f.Amount) != "" &&
		strings.TrimSpace(f.DonorName) != "" &&
		strings.TrimSpace(f.DonorEmail) != ""
}

// Intent builds the wire payload. ProjectID is included only when the form
// was opened for a specific project.
func (f *Form) Intent() (*api.DonationIntent, error) {
	if !f.CanSubmit() {
		return nil, ErrIncomplete
	}
	return &api.DonationIntent{
		DonorEmail:    strings.TrimSpace(f.DonorEmail),
		DonorFullName: strings.TrimSpace(f.DonorName),
		Amount:        f.Amount,
		Currency:      f.Currency,
		PaymentClient: f.PaymentClient(),
		Frequency:     f.Frequency,
		ProjectID:     f.ProjectID,
	}, nil
}

// Submit runs the guarded submission. On failure the form stays populated
// and moves to StatusError for manual retry; no automatic retry, no
// client-generated idempotency key.
func (f *Form) Submit(s Submitter) (*api.CheckoutResponse, error) {
	if f.status == StatusPending {
		return nil, ErrSubmitPending
	}
	intent, err := f.Intent()
	if err != nil {
		return nil, err
	}

	f.status = StatusPending
	resp, err := s.Donate(intent)
	if err != nil {
		f.status = StatusError
		f.lastErr = err
		return nil, err
	}
	f.status = StatusSuccess
	f.lastErr = nil
	return resp, nil
}

// Status returns the current submission status.
func (f *Form) Status() Status {
	return f.status
}

// Err returns the last submission error, if any.
func (f *Form) Err() error {
	return f.lastErr
}
