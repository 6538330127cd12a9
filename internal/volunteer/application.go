// Package volunteer holds the volunteer application form state machine:
// identity fields, availability-dependent hours/days, a mandatory CAPTCHA
// gate, and a multipart submission with the CV attached.
package volunteer

import (
	"errors"
	"path/filepath"
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
	// ErrCaptchaRequired short-circuits submission before any network call.
	ErrCaptchaRequired = errors.New("please complete the captcha")
	// ErrIncomplete blocks submission while a required field is empty.
	ErrIncomplete = errors.New("all identity fields, role, availability and cv are required")
	// ErrCVType rejects attachments outside the accepted document types.
	ErrCVType = errors.New("cv must be a .pdf, .doc or .docx file")
	// ErrSubmitPending rejects a re-entrant submit from the same instance.
	ErrSubmitPending = errors.New("submission already in progress")
)

// acceptedCVExts mirrors the file picker's accept filter.
var acceptedCVExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// Submitter issues the volunteer application mutation. *resource.Store
// satisfies it.
type Submitter interface {
	SubmitVolunteer(*api.VolunteerPayload, api.FilePart) (*models.Volunteer, error)
}

// Form is one volunteer application instance.
type Form struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Age         string
	Country     string

	Role         models.Role
	Availability models.Availability
	Hours        string // meaningful only for part-time
	Days         string // meaningful only for part-time

	CVPath       string
	CaptchaToken string

	// ClearOnAvailabilityChange wipes Hours/Days when availability leaves
	// part-time. Off by default: the deployed form keeps the stale values
	// and resubmits them if the user toggles back and forth.
	ClearOnAvailabilityChange bool

	status  Status
	lastErr error
}

// NewForm creates an empty volunteer application form.
func NewForm() *Form {
	return &Form{status: StatusIdle}
}

// SetAvailability sets the availability mode. Hours/Days survive a switch
// away from part-time unless ClearOnAvailabilityChange is set.
func (f *Form) SetAvailability(a models.Availability) error {
	switch a {
	case models.AvailabilityFullTime, models.AvailabilityPartTime:
	default:
		return errors.New("unsupported availability: " + string(a))
	}
	f.Availability = a
	if a != models.AvailabilityPartTime && f.ClearOnAvailabilityChange {
		f.Hours = ""
		f.Days = ""
	}
	return nil
}

// SetCaptcha records the CAPTCHA token. An expired captcha is recorded as
// the empty token.
func (f *Form) SetCaptcha(token string) {
	f.CaptchaToken = token
}

// CanSubmit reports whether every required field is present. The captcha is
// checked separately in Submit so its absence produces a distinct notice.
func (f *Form) CanSubmit() bool {
	required := []string{
		f.FirstName, f.LastName, f.Email, f.PhoneNumber,
		f.Age, f.Country, string(f.Role), string(f.Availability), f.CVPath,
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Payload builds the structured part of the submission. Hours/Days are
// included exactly as stored, even when availability is full-time — the
// deployed behavior, preserved deliberately.
func (f *Form) Payload() (*api.VolunteerPayload, error) {
	if !f.CanSubmit() {
		return nil, ErrIncomplete
	}
	if ext := strings.ToLower(filepath.Ext(f.CVPath)); !acceptedCVExts[ext] {
		return nil, ErrCVType
	}
	return &api.VolunteerPayload{
		FirstName:    strings.TrimSpace(f.FirstName),
		LastName:     strings.TrimSpace(f.LastName),
		Email:        strings.TrimSpace(f.Email),
		PhoneNumber:  strings.TrimSpace(f.PhoneNumber),
		Age:          strings.TrimSpace(f.Age),
		Country:      strings.TrimSpace(f.Country),
		Role:         f.Role,
		Availability: f.Availability,
		Hours:        f.Hours,
		Days:         f.Days,
	}, nil
}

// Submit runs the guarded submission: captcha first (no network call
// without it), then field validation, then the multipart request.
func (f *Form) Submit(s Submitter) (*models.Volunteer, error) {
	if f.status == StatusPending {
		return nil, ErrSubmitPending
	}
	if strings.TrimSpace(f.CaptchaToken) == "" {
		return nil, ErrCaptchaRequired
	}
	payload, err := f.Payload()
	if err != nil {
		return nil, err
	}

	f.status = StatusPending
	v, err := s.SubmitVolunteer(payload, api.FilePart{Field: "cv", Path: f.CVPath})
	if err != nil {
		f.status = StatusError
		f.lastErr = err
		return nil, err
	}
	f.status = StatusSuccess
	f.lastErr = nil
	return v, nil
}

// Status returns the current submission status.
func (f *Form) Status() Status {
	return f.status
}

// Err returns the last submission error, if any.
func (f *Form) Err() error {
	return f.lastErr
}
