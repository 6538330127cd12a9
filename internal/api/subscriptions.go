package api

import (
	"fmt"
	"net/url"

	"github.com/dami/hope/internal/models"
)

// SubscriptionList is the list envelope from GET /api/subscription/.
type SubscriptionList struct {
	Data       []models.Subscription `json:"data"`
	Total      int                   `json:"total"`
	TotalPages int                   `json:"total_pages"`
}

// SubscriptionFilter holds list query parameters.
type SubscriptionFilter struct {
	Search   string
	Page     int
	PageSize int
}

func (f SubscriptionFilter) query() string {
	params := url.Values{}
	setNonEmpty(params, "search", f.Search)
	setPaging(params, f.Page, f.PageSize)
	return params.Encode()
}

// CreateSubscription subscribes an email to the newsletter. Public endpoint.
// Duplicates are rejected server-side; use IsAlreadyExists on the error.
func (c *Client) CreateSubscription(email string) (*models.Subscription, error) {
	body := map[string]string{"email": email}
	var resp models.Subscription
	if err := c.doNoAuth("POST", "/api/subscription/", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListSubscriptions lists subscriptions for the back office.
func (c *Client) ListSubscriptions(filter SubscriptionFilter) (*SubscriptionList, error) {
	path := "/api/subscription/"
	if q := filter.query(); q != "" {
		path += "?" + q
	}
	var resp SubscriptionList
	if err := c.do("GET", path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSubscription fetches a single subscription by id.
func (c *Client) GetSubscription(id int) (*models.Subscription, error) {
	var resp models.Subscription
	if err := c.do("GET", fmt.Sprintf("/api/subscription/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
