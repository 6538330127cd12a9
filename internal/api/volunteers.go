package api

import (
	"fmt"
	"net/url"

	"github.com/dami/hope/internal/models"
)

// VolunteerPayload is the structured part of a volunteer application. It is
// JSON-encoded into the "payload" field beside the CV attachment.
type VolunteerPayload struct {
	FirstName    string              `json:"first_name"`
	LastName     string              `json:"last_name"`
	Email        string              `json:"email"`
	PhoneNumber  string              `json:"phone_number"`
	Age          string              `json:"age"`
	Country      string              `json:"country"`
	Role         models.Role         `json:"role"`
	Availability models.Availability `json:"availability"`
	Hours        string              `json:"hours,omitempty"`
	Days         string              `json:"days,omitempty"`
}

// VolunteerList is the list envelope from GET /api/volunteer/.
type VolunteerList struct {
	Data       []models.Volunteer `json:"data"`
	Total      int                `json:"total"`
	TotalPages int                `json:"total_pages"`
}

// VolunteerFilter holds list query parameters.
type VolunteerFilter struct {
	Search       string
	Role         string
	Availability string
	Page         int
	PageSize     int
}

func (f VolunteerFilter) query() string {
	params := url.Values{}
	setNonEmpty(params, "search", f.Search)
	setNonEmpty(params, "role", f.Role)
	setNonEmpty(params, "availability", f.Availability)
	setPaging(params, f.Page, f.PageSize)
	return params.Encode()
}

// SubmitVolunteer submits a volunteer application: CV part plus the JSON
// payload field in one multipart request. Public endpoint.
func (c *Client) SubmitVolunteer(payload *VolunteerPayload, cv FilePart) (*models.Volunteer, error) {
	cv.Field = "cv"
	var resp models.Volunteer
	if err := c.doMultipart("POST", "/api/volunteer/", payload, []FilePart{cv}, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListVolunteers lists applications for the back office.
func (c *Client) ListVolunteers(filter VolunteerFilter) (*VolunteerList, error) {
	path := "/api/volunteer/"
	if q := filter.query(); q != "" {
		path += "?" + q
	}
	var resp VolunteerList
	if err := c.do("GET", path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetVolunteer fetches a single application by id.
func (c *Client) GetVolunteer(id int) (*models.Volunteer, error) {
	var resp models.Volunteer
	if err := c.do("GET", fmt.Sprintf("/api/volunteer/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteVolunteer removes an application by id.
func (c *Client) DeleteVolunteer(id int) error {
	return c.do("DELETE", fmt.Sprintf("/api/volunteer/%d", id), nil, nil)
}
