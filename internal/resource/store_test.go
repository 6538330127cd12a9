package resource

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dami/hope/internal/api"
	"github.com/dami/hope/internal/models"
	"github.com/dami/hope/internal/session"
)

// testBackend counts hits per path prefix and serves canned list envelopes.
type testBackend struct {
	projectHits  int
	donationHits int
}

func (b *testBackend) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/project/"):
			b.projectHits++
			json.NewEncoder(w).Encode(api.ProjectList{
				Data:  []models.Project{{ID: 1, Title: "Clean water"}},
				Total: 25,
			})
		case strings.HasPrefix(r.URL.Path, "/api/donation/donations") && r.Method == http.MethodPost:
			json.NewEncoder(w).Encode(api.CheckoutResponse{CheckoutURL: "https://pay.example"})
		case strings.HasPrefix(r.URL.Path, "/api/donation/donations"):
			b.donationHits++
			json.NewEncoder(w).Encode(api.DonationList{Total: 3, TotalPages: 1})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newTestStore(t *testing.T) (*Store, *testBackend) {
	t.Helper()
	t.Setenv("HOPE_AUTH_TOKEN", "")
	backend := &testBackend{}
	srv := httptest.NewServer(backend.handler(t))
	t.Cleanup(srv.Close)

	sess := &session.Store{Dir: t.TempDir()}
	if err := sess.Save(&session.UserInfo{AccessToken: "tok"}); err != nil {
		t.Fatalf("save session: %v", err)
	}
	client := api.New(srv.URL, sess, srv.Client())
	return NewStore(client), backend
}

func TestProjectsAreServedFromCacheWhileFresh(t *testing.T) {
	store, backend := newTestStore(t)
	filter := api.ProjectFilter{Page: 1, PageSize: 10}

	if _, err := store.Projects(filter); err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if _, err := store.Projects(filter); err != nil {
		t.Fatalf("Projects (cached): %v", err)
	}
	if backend.projectHits != 1 {
		t.Fatalf("expected one backend fetch, saw %d", backend.projectHits)
	}

	// A different filter is a different cache key.
	if _, err := store.Projects(api.ProjectFilter{Page: 2, PageSize: 10}); err != nil {
		t.Fatalf("Projects page 2: %v", err)
	}
	if backend.projectHits != 2 {
		t.Fatalf("distinct filters must fetch separately, saw %d", backend.projectHits)
	}
}

func TestDonateInvalidatesDonationLists(t *testing.T) {
	store, backend := newTestStore(t)
	filter := api.DonationFilter{Page: 1, PageSize: 10}

	if _, err := store.Donations(filter); err != nil {
		t.Fatalf("Donations: %v", err)
	}
	if _, err := store.Donations(filter); err != nil {
		t.Fatalf("Donations (cached): %v", err)
	}
	if backend.donationHits != 1 {
		t.Fatalf("expected one fetch before mutation, saw %d", backend.donationHits)
	}

	intent := &api.DonationIntent{
		DonorEmail:    "ada@example.org",
		DonorFullName: "Ada",
		Amount:        "25",
		Currency:      models.CurrencyNGN,
		PaymentClient: models.PaymentPaystack,
		Frequency:     models.FrequencyOnce,
	}
	if _, err := store.Donate(intent); err != nil {
		t.Fatalf("Donate: %v", err)
	}

	if _, err := store.Donations(filter); err != nil {
		t.Fatalf("Donations (after mutation): %v", err)
	}
	if backend.donationHits != 2 {
		t.Fatalf("mutation should invalidate the cached list, saw %d fetches", backend.donationHits)
	}
}

func TestListPagesComputedWhenBackendOmitsThem(t *testing.T) {
	store, _ := newTestStore(t)

	// Backend sends total=25 with no total_pages; page size 10 gives 3 pages.
	list, err := store.Projects(api.ProjectFilter{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if list.TotalPages != 3 {
		t.Fatalf("total_pages = %d, want 3", list.TotalPages)
	}
}

func TestNormalizePagesLeavesExplicitValue(t *testing.T) {
	pages := 7
	normalizePages(&pages, 100, 10)
	if pages != 7 {
		t.Fatalf("explicit total_pages must be kept, got %d", pages)
	}

	pages = 0
	normalizePages(&pages, 0, 10)
	if pages != 0 {
		t.Fatalf("empty result keeps zero pages, got %d", pages)
	}
}
