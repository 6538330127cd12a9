package volunteer

import (
	"errors"
	"testing"

	"github.com/dami/hope/internal/api"
	"github.com/dami/hope/internal/models"
)

type fakeSubmitter struct {
	calls   int
	payload *api.VolunteerPayload
	cv      api.FilePart
	resp    *models.Volunteer
	err     error
}

func (f *fakeSubmitter) SubmitVolunteer(p *api.VolunteerPayload, cv api.FilePart) (*models.Volunteer, error) {
	f.calls++
	f.payload = p
	f.cv = cv
	return f.resp, f.err
}

func completeForm() *Form {
	f := NewForm()
	f.FirstName = "Ada"
	f.LastName = "Obi"
	f.Email = "ada@example.org"
	f.PhoneNumber = "0800"
	f.Age = "29"
	f.Country = "NG"
	f.Role = models.RoleLabTech
	f.Availability = models.AvailabilityFullTime
	f.CVPath = "/tmp/cv.pdf"
	return f
}

func TestMissingCaptchaShortCircuitsBeforeNetwork(t *testing.T) {
	sub := &fakeSubmitter{}
	form := completeForm()
	// No captcha token set.

	_, err := form.Submit(sub)
	if !errors.Is(err, ErrCaptchaRequired) {
		t.Fatalf("expected ErrCaptchaRequired, got %v", err)
	}
	if sub.calls != 0 {
		t.Fatalf("captcha gate must fire before the submitter, saw %d calls", sub.calls)
	}
	if form.Status() != StatusIdle {
		t.Fatalf("status = %s, want %s", form.Status(), StatusIdle)
	}
}

func TestSubmitSendsPayloadWithCV(t *testing.T) {
	sub := &fakeSubmitter{resp: &models.Volunteer{ID: 3}}
	form := completeForm()
	form.SetCaptcha("tok")

	v, err := form.Submit(sub)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if v.ID != 3 {
		t.Fatalf("id = %d, want 3", v.ID)
	}
	if sub.cv.Field != "cv" || sub.cv.Path != "/tmp/cv.pdf" {
		t.Fatalf("cv part = %+v", sub.cv)
	}
	if sub.payload.FirstName != "Ada" || sub.payload.Role != models.RoleLabTech {
		t.Fatalf("payload = %+v", sub.payload)
	}
	if form.Status() != StatusSuccess {
		t.Fatalf("status = %s", form.Status())
	}
}

func TestCVTypeRejected(t *testing.T) {
	sub := &fakeSubmitter{}
	form := completeForm()
	form.SetCaptcha("tok")
	form.CVPath = "/tmp/cv.exe"

	_, err := form.Submit(sub)
	if !errors.Is(err, ErrCVType) {
		t.Fatalf("expected ErrCVType, got %v", err)
	}
	if sub.calls != 0 {
		t.Fatalf("rejected cv must not reach the submitter")
	}
}

func TestStalePartTimeValuesSurviveToggleByDefault(t *testing.T) {
	sub := &fakeSubmitter{resp: &models.Volunteer{}}
	form := completeForm()
	form.SetCaptcha("tok")

	if err := form.SetAvailability(models.AvailabilityPartTime); err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}
	form.Hours = "10"
	form.Days = "weekends"

	// Toggle to full-time: hours/days are kept and still sent.
	if err := form.SetAvailability(models.AvailabilityFullTime); err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}
	if _, err := form.Submit(sub); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sub.payload.Hours != "10" || sub.payload.Days != "weekends" {
		t.Fatalf("stale part-time values should round-trip, payload = %+v", sub.payload)
	}
	if sub.payload.Availability != models.AvailabilityFullTime {
		t.Fatalf("availability = %s", sub.payload.Availability)
	}
}

func TestClearOnAvailabilityChangeWipesPartTimeValues(t *testing.T) {
	form := completeForm()
	form.ClearOnAvailabilityChange = true

	if err := form.SetAvailability(models.AvailabilityPartTime); err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}
	form.Hours = "10"
	form.Days = "weekends"

	if err := form.SetAvailability(models.AvailabilityFullTime); err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}
	if form.Hours != "" || form.Days != "" {
		t.Fatalf("expected cleared hours/days, got %q/%q", form.Hours, form.Days)
	}
}

func TestExpiredCaptchaBlocksResubmit(t *testing.T) {
	sub := &fakeSubmitter{resp: &models.Volunteer{}}
	form := completeForm()
	form.SetCaptcha("tok")

	if _, err := form.Submit(sub); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Widget expiry resets the token to empty.
	form.SetCaptcha("")
	if _, err := form.Submit(sub); !errors.Is(err, ErrCaptchaRequired) {
		t.Fatalf("expected ErrCaptchaRequired after expiry, got %v", err)
	}
	if sub.calls != 1 {
		t.Fatalf("expired captcha must not reach the submitter, saw %d calls", sub.calls)
	}
}
