package donation

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dami/hope/internal/api"
	"github.com/dami/hope/internal/models"
)

type fakeSubmitter struct {
	calls  int
	intent *api.DonationIntent
	resp   *api.CheckoutResponse
	err    error
}

func (f *fakeSubmitter) Donate(intent *api.DonationIntent) (*api.CheckoutResponse, error) {
	f.calls++
	f.intent = intent
	return f.resp, f.err
}

func TestProcessorFollowsCurrency(t *testing.T) {
	form := NewForm(0)
	if form.PaymentClient() != models.PaymentPaystack {
		t.Fatalf("default NGN should route to Paystack, got %s", form.PaymentClient())
	}

	if err := form.SelectCurrency(models.CurrencyUSD); err != nil {
		t.Fatalf("SelectCurrency: %v", err)
	}
	if form.PaymentClient() != models.PaymentPaypal {
		t.Fatalf("USD should route to PayPal, got %s", form.PaymentClient())
	}

	// Switching back can never leave a stale processor behind.
	if err := form.SelectCurrency(models.CurrencyNGN); err != nil {
		t.Fatalf("SelectCurrency: %v", err)
	}
	if form.PaymentClient() != models.PaymentPaystack {
		t.Fatalf("NGN should route back to Paystack, got %s", form.PaymentClient())
	}
}

func TestSelectCurrencyRejectsUnknown(t *testing.T) {
	form := NewForm(0)
	if err := form.SelectCurrency("EUR"); err == nil {
		t.Fatalf("expected error for unsupported currency")
	}
	if form.Currency != models.CurrencyNGN {
		t.Fatalf("failed selection must not change the currency, got %s", form.Currency)
	}
}

func TestSubmitGuardBlocksIncompleteForm(t *testing.T) {
	sub := &fakeSubmitter{}
	form := NewForm(0)
	form.SetAmount("50")
	form.DonorName = "Ada"
	// email missing

	if form.CanSubmit() {
		t.Fatalf("CanSubmit must be false without an email")
	}
	_, err := form.Submit(sub)
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
	if sub.calls != 0 {
		t.Fatalf("incomplete form must not reach the submitter, saw %d calls", sub.calls)
	}
}

func TestSubmitBuildsIntentAndHandsOffCheckout(t *testing.T) {
	sub := &fakeSubmitter{resp: &api.CheckoutResponse{CheckoutURL: "https://paypal.example/pay"}}
	form := NewForm(0)
	form.SetAmount("100")
	form.DonorName = "Ada Obi"
	form.DonorEmail = "ada@example.org"
	if err := form.SelectCurrency(models.CurrencyUSD); err != nil {
		t.Fatalf("SelectCurrency: %v", err)
	}

	resp, err := form.Submit(sub)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if resp.CheckoutURL != "https://paypal.example/pay" {
		t.Fatalf("checkout url = %q", resp.CheckoutURL)
	}
	if form.Status() != StatusSuccess {
		t.Fatalf("status = %s, want %s", form.Status(), StatusSuccess)
	}

	got := sub.intent
	if got.Amount != "100" || got.Currency != models.CurrencyUSD ||
		got.PaymentClient != models.PaymentPaypal || got.Frequency != models.FrequencyOnce {
		t.Fatalf("unexpected intent %+v", got)
	}
}

func TestGeneralDonationOmitsProjectID(t *testing.T) {
	sub := &fakeSubmitter{resp: &api.CheckoutResponse{}}
	form := NewForm(0)
	form.SetAmount("25")
	form.DonorName = "Ada"
	form.DonorEmail = "ada@example.org"

	if _, err := form.Submit(sub); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	data, err := json.Marshal(sub.intent)
	if err != nil {
		t.Fatalf("marshal intent: %v", err)
	}
	if strings.Contains(string(data), "project_id") {
		t.Fatalf("general donation must omit project_id, got %s", data)
	}
}

func TestProjectDonationCarriesProjectID(t *testing.T) {
	sub := &fakeSubmitter{resp: &api.CheckoutResponse{}}
	form := NewForm(42)
	form.SetAmount("25")
	form.DonorName = "Ada"
	form.DonorEmail = "ada@example.org"

	if _, err := form.Submit(sub); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sub.intent.ProjectID != 42 {
		t.Fatalf("project_id = %d, want 42", sub.intent.ProjectID)
	}
}

// reentrantSubmitter re-enters Submit from inside Donate, the way a double
// keypress would while the request is in flight.
type reentrantSubmitter struct {
	form   *Form
	reErr  error
	called bool
}

func (r *reentrantSubmitter) Donate(*api.DonationIntent) (*api.CheckoutResponse, error) {
	if !r.called {
		r.called = true
		_, r.reErr = r.form.Submit(r)
	}
	return &api.CheckoutResponse{}, nil
}

func TestSubmitRejectsReentry(t *testing.T) {
	form := NewForm(0)
	form.SetAmount("25")
	form.DonorName = "Ada"
	form.DonorEmail = "ada@example.org"

	sub := &reentrantSubmitter{form: form}
	if _, err := form.Submit(sub); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !errors.Is(sub.reErr, ErrSubmitPending) {
		t.Fatalf("re-entrant submit should fail with ErrSubmitPending, got %v", sub.reErr)
	}
}

func TestFailedSubmitKeepsFormForRetry(t *testing.T) {
	boom := errors.New("gateway down")
	sub := &fakeSubmitter{err: boom}
	form := NewForm(0)
	form.SetAmount("250")
	form.DonorName = "Ada"
	form.DonorEmail = "ada@example.org"

	if _, err := form.Submit(sub); !errors.Is(err, boom) {
		t.Fatalf("expected submit error, got %v", err)
	}
	if form.Status() != StatusError {
		t.Fatalf("status = %s, want %s", form.Status(), StatusError)
	}
	if !errors.Is(form.Err(), boom) {
		t.Fatalf("Err() = %v", form.Err())
	}
	if form.Amount != "250" || form.DonorName != "Ada" {
		t.Fatalf("failed submit must preserve the form, got %+v", form)
	}

	// Manual retry succeeds once the backend recovers.
	sub.err = nil
	sub.resp = &api.CheckoutResponse{CheckoutURL: "https://paystack.example/pay"}
	resp, err := form.Submit(sub)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if resp.CheckoutURL == "" || form.Status() != StatusSuccess {
		t.Fatalf("retry should succeed, status=%s resp=%+v", form.Status(), resp)
	}
}
