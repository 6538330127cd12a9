package api

import (
	"fmt"
	"net/url"

	"github.com/dami/hope/internal/models"
)

// ProjectList is the list envelope from GET /api/project/.
type ProjectList struct {
	Data       []models.Project `json:"data"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
}

// ProjectFilter holds list query parameters.
type ProjectFilter struct {
	Search   string
	Category string
	Status   string
	Page     int
	PageSize int
}

func (f ProjectFilter) query() string {
	params := url.Values{}
	setNonEmpty(params, "search", f.Search)
	setNonEmpty(params, "category", f.Category)
	setNonEmpty(params, "status", f.Status)
	setPaging(params, f.Page, f.PageSize)
	return params.Encode()
}

// ProjectPayload is the structured part of a project create/update request.
// It travels as the JSON "payload" field beside the file parts.
type ProjectPayload struct {
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Category    string               `json:"category,omitempty"`
	Status      models.ProjectStatus `json:"status,omitempty"`
	Goal        string               `json:"goal,omitempty"`
}

// ProjectUpload bundles the payload with its attachments.
type ProjectUpload struct {
	Payload    ProjectPayload
	CoverPhoto string   // local path, optional
	MediaFiles []string // local paths, optional
}

func (u ProjectUpload) parts() []FilePart {
	var files []FilePart
	for i, p := range u.MediaFiles {
		files = append(files, FilePart{Field: fmt.Sprintf("media_files[%d]", i), Path: p})
	}
	if u.CoverPhoto != "" {
		files = append(files, FilePart{Field: "cover_photo", Path: u.CoverPhoto})
	}
	return files
}

// ListProjects lists projects. Public endpoint.
func (c *Client) ListProjects(filter ProjectFilter) (*ProjectList, error) {
	path := "/api/project/"
	if q := filter.query(); q != "" {
		path += "?" + q
	}
	var resp ProjectList
	if err := c.doNoAuth("GET", path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProject fetches a project by id. Public endpoint.
func (c *Client) GetProject(id int) (*models.Project, error) {
	var resp models.Project
	if err := c.doNoAuth("GET", fmt.Sprintf("/api/project/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateProject creates a project with optional cover photo and media files.
func (c *Client) CreateProject(upload ProjectUpload) (*models.Project, error) {
	var resp models.Project
	if err := c.doMultipart("POST", "/api/project/", upload.Payload, upload.parts(), &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProject updates a project, replacing attachments when provided.
func (c *Client) UpdateProject(id int, upload ProjectUpload) (*models.Project, error) {
	var resp models.Project
	if err := c.doMultipart("PUT", fmt.Sprintf("/api/project/%d", id), upload.Payload, upload.parts(), &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteProject deletes a project by id.
func (c *Client) DeleteProject(id int) error {
	return c.do("DELETE", fmt.Sprintf("/api/project/%d", id), nil, nil)
}

// AddProjectPhotos uploads additional photos to an existing project. Each
// image travels under the "image" field the backend expects.
func (c *Client) AddProjectPhotos(id int, photoPaths []string, payload map[string]any) (*models.Project, error) {
	var files []FilePart
	for _, p := range photoPaths {
		files = append(files, FilePart{Field: "image", Path: p})
	}
	var resp models.Project
	if err := c.doMultipart("POST", fmt.Sprintf("/api/project/%d/photos", id), payload, files, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteProjectPhoto removes a single photo by its own id.
func (c *Client) DeleteProjectPhoto(photoID int) error {
	return c.do("DELETE", fmt.Sprintf("/api/project/photos/%d", photoID), nil, nil)
}
