package resource

import (
	"fmt"
	"math"
	"time"

	"github.com/dami/hope/internal/api"
	"github.com/dami/hope/internal/models"
)

// Store is the cached query/mutation layer over the API client. Reads are
// served from the cache while fresh; every mutation invalidates the affected
// resource so subsequent reads reflect it.
type Store struct {
	Client *api.Client
	cache  *cache
}

// NewStore creates a resource store with the default TTL.
func NewStore(client *api.Client) *Store {
	return NewStoreTTL(client, DefaultTTL)
}

// NewStoreTTL creates a resource store with an explicit cache TTL.
func NewStoreTTL(client *api.Client, ttl time.Duration) *Store {
	return &Store{Client: client, cache: newCache(ttl)}
}

// --- Projects ---

// Projects lists projects through the cache.
func (s *Store) Projects(filter api.ProjectFilter) (*api.ProjectList, error) {
	key := fmt.Sprintf("projects|%+v", filter)
	if v, ok := s.cache.get(key); ok {
		return v.(*api.ProjectList), nil
	}
	list, err := s.Client.ListProjects(filter)
	if err != nil {
		return nil, err
	}
	normalizePages(&list.TotalPages, list.Total, filter.PageSize)
	s.cache.put(key, list)
	return list, nil
}

// Project fetches one project through the cache.
func (s *Store) Project(id int) (*models.Project, error) {
	key := fmt.Sprintf("project|%d", id)
	if v, ok := s.cache.get(key); ok {
		return v.(*models.Project), nil
	}
	p, err := s.Client.GetProject(id)
	if err != nil {
		return nil, err
	}
	s.cache.put(key, p)
	return p, nil
}

// CreateProject creates a project and invalidates the project lists.
func (s *Store) CreateProject(upload api.ProjectUpload) (*models.Project, error) {
	p, err := s.Client.CreateProject(upload)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate("projects|")
	return p, nil
}

// UpdateProject updates a project and invalidates both the lists and the
// detail entry for that id.
func (s *Store) UpdateProject(id int, upload api.ProjectUpload) (*models.Project, error) {
	p, err := s.Client.UpdateProject(id, upload)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate("projects|", fmt.Sprintf("project|%d", id))
	return p, nil
}

// DeleteProject deletes a project and invalidates project entries.
func (s *Store) DeleteProject(id int) error {
	if err := s.Client.DeleteProject(id); err != nil {
		return err
	}
	s.cache.invalidate("projects|", fmt.Sprintf("project|%d", id))
	return nil
}

// AddProjectPhotos uploads photos and invalidates the project detail.
func (s *Store) AddProjectPhotos(id int, photoPaths []string, payload map[string]any) (*models.Project, error) {
	p, err := s.Client.AddProjectPhotos(id, photoPaths, payload)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate(fmt.Sprintf("project|%d", id))
	return p, nil
}

// DeleteProjectPhoto removes a photo and invalidates the project lists.
func (s *Store) DeleteProjectPhoto(photoID int) error {
	if err := s.Client.DeleteProjectPhoto(photoID); err != nil {
		return err
	}
	s.cache.invalidate("projects|")
	return nil
}

// --- Donations ---

// Donate submits a donation intent. Intents are never cached and a created
// intent invalidates the back-office donation lists.
func (s *Store) Donate(intent *api.DonationIntent) (*api.CheckoutResponse, error) {
	resp, err := s.Client.CreateDonation(intent)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate("donations|")
	return resp, nil
}

// Donations lists donations through the cache.
func (s *Store) Donations(filter api.DonationFilter) (*api.DonationList, error) {
	key := fmt.Sprintf("donations|%+v", filter)
	if v, ok := s.cache.get(key); ok {
		return v.(*api.DonationList), nil
	}
	list, err := s.Client.ListDonations(filter)
	if err != nil {
		return nil, err
	}
	normalizePages(&list.TotalPages, list.Total, filter.PageSize)
	s.cache.put(key, list)
	return list, nil
}

// --- Volunteers ---

// SubmitVolunteer submits an application and invalidates the volunteer lists.
func (s *Store) SubmitVolunteer(payload *api.VolunteerPayload, cv api.FilePart) (*models.Volunteer, error) {
	v, err := s.Client.SubmitVolunteer(payload, cv)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate("volunteers|")
	return v, nil
}

// Volunteers lists applications through the cache.
func (s *Store) Volunteers(filter api.VolunteerFilter) (*api.VolunteerList, error) {
	key := fmt.Sprintf("volunteers|%+v", filter)
	if v, ok := s.cache.get(key); ok {
		return v.(*api.VolunteerList), nil
	}
	list, err := s.Client.ListVolunteers(filter)
	if err != nil {
		return nil, err
	}
	normalizePages(&list.TotalPages, list.Total, filter.PageSize)
	s.cache.put(key, list)
	return list, nil
}

// Volunteer fetches one application through the cache.
func (s *Store) Volunteer(id int) (*models.Volunteer, error) {
	key := fmt.Sprintf("volunteer|%d", id)
	if v, ok := s.cache.get(key); ok {
		return v.(*models.Volunteer), nil
	}
	vol, err := s.Client.GetVolunteer(id)
	if err != nil {
		return nil, err
	}
	s.cache.put(key, vol)
	return vol, nil
}

// DeleteVolunteer removes an application and invalidates volunteer entries.
func (s *Store) DeleteVolunteer(id int) error {
	if err := s.Client.DeleteVolunteer(id); err != nil {
		return err
	}
	s.cache.invalidate("volunteers|", fmt.Sprintf("volunteer|%d", id))
	return nil
}

// --- Subscriptions ---

// Subscribe creates a subscription and invalidates the subscription lists.
func (s *Store) Subscribe(email string) (*models.Subscription, error) {
	sub, err := s.Client.CreateSubscription(email)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate("subscriptions|")
	return sub, nil
}

// Subscriptions lists subscriptions through the cache.
func (s *Store) Subscriptions(filter api.SubscriptionFilter) (*api.SubscriptionList, error) {
	key := fmt.Sprintf("subscriptions|%+v", filter)
	if v, ok := s.cache.get(key); ok {
		return v.(*api.SubscriptionList), nil
	}
	list, err := s.Client.ListSubscriptions(filter)
	if err != nil {
		return nil, err
	}
	normalizePages(&list.TotalPages, list.Total, filter.PageSize)
	s.cache.put(key, list)
	return list, nil
}

// normalizePages fills in total_pages when the backend omits it, using
// ceil(total/page_size) with the backend's default page size of 10.
func normalizePages(totalPages *int, total, pageSize int) {
	if *totalPages != 0 || total == 0 {
		return
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	*totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
}
