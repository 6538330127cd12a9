package api

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/dami/hope/internal/models"
)

// DonationIntent is the body for POST /api/donation/donations. PaymentClient
// is derived from Currency at build time, never entered by the donor.
type DonationIntent struct {
	DonorEmail    string               `json:"donor_email"`
	DonorFullName string               `json:"donor_full_name"`
	Amount        string               `json:"amount"`
	Currency      models.Currency      `json:"currency"`
	PaymentClient models.PaymentClient `json:"payment_client"`
	Frequency     models.Frequency     `json:"frequency"`
	ProjectID     int                  `json:"project_id,omitempty"`
}

// CheckoutResponse is the response to a created donation intent. The donor
// finishes payment on the external CheckoutURL; nothing further happens in
// this client.
type CheckoutResponse struct {
	CheckoutURL string          `json:"checkout_url"`
	Reference   string          `json:"reference,omitempty"`
	Donation    models.Donation `json:"donation,omitempty"`
}

// DonationList is the list envelope from GET /api/donation/donations.
type DonationList struct {
	Data       []models.Donation `json:"data"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
}

// DonationFilter holds list query parameters. Zero values are omitted from
// the query string.
type DonationFilter struct {
	Search        string
	Frequency     string
	Status        string
	PaymentMethod string
	Page          int
	PageSize      int
}

func (f DonationFilter) query() string {
	params := url.Values{}
	setNonEmpty(params, "search", f.Search)
	setNonEmpty(params, "frequency", f.Frequency)
	setNonEmpty(params, "status", f.Status)
	setNonEmpty(params, "payment_method", f.PaymentMethod)
	setPaging(params, f.Page, f.PageSize)
	return params.Encode()
}

// CreateDonation submits a donation intent. Public endpoint: donors are not
// logged in.
func (c *Client) CreateDonation(intent *DonationIntent) (*CheckoutResponse, error) {
	var resp CheckoutResponse
	if err := c.doNoAuth("POST", "/api/donation/donations", intent, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListDonations lists donations for the back office.
func (c *Client) ListDonations(filter DonationFilter) (*DonationList, error) {
	path := "/api/donation/donations"
	if q := filter.query(); q != "" {
		path += "?" + q
	}
	var resp DonationList
	if err := c.do("GET", path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetDonation fetches a single donation by id.
func (c *Client) GetDonation(id int) (*models.Donation, error) {
	var resp models.Donation
	if err := c.do("GET", fmt.Sprintf("/api/donations/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func setNonEmpty(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

// setPaging applies page/page_size with the backend's defaults (1, 10).
func setPaging(params url.Values, page, pageSize int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))
}
