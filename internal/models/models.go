package models

import (
	"time"
)

// Currency represents a donation currency
type Currency string

const (
	CurrencyNGN Currency = "NGN"
	CurrencyUSD Currency = "USD"
)

// PaymentClient represents the payment processor handling a donation
type PaymentClient string

const (
	PaymentPaystack PaymentClient = "PAYSTACK"
	PaymentPaypal   PaymentClient = "PAYPAL"
)

// Frequency represents how often a donation recurs
type Frequency string

const (
	FrequencyOnce    Frequency = "ONCE"
	FrequencyMonthly Frequency = "MONTHLY"
)

// DonationStatus represents the lifecycle state of a donation
type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
	DonationFailed    DonationStatus = "failed"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectPaused    ProjectStatus = "paused"
)

// Role represents a volunteer role
type Role string

const (
	RoleComputerTech Role = "computer-tech"
	RoleLabTech      Role = "lab-tech"
	RoleMedicalTech  Role = "medical-tech"
	RoleOther        Role = "others"
)

// Availability represents a volunteer's time commitment
type Availability string

const (
	AvailabilityFullTime Availability = "full-time"
	AvailabilityPartTime Availability = "part-time"
)

// ProcessorFor returns the payment processor for a currency: USD routes to
// PayPal, NGN to Paystack. A pure mapping, never stored as independent state
// alongside the currency.
func ProcessorFor(c Currency) PaymentClient {
	if c == CurrencyUSD {
		return PaymentPaypal
	}
	return PaymentPaystack
}

// Project represents a fundraising project
type Project struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category,omitempty"`
	Status      ProjectStatus `json:"status"`
	Goal        string        `json:"goal,omitempty"`
	Raised      string        `json:"raised,omitempty"`
	CoverPhoto  string        `json:"cover_photo,omitempty"`
	MediaFiles  []string      `json:"media_files,omitempty"`
	Photos      []Photo       `json:"photos,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	DeletedAt   *time.Time    `json:"deleted_at,omitempty"`
}

// Photo represents an image attached to a project
type Photo struct {
	ID        int    `json:"id"`
	ProjectID int    `json:"project_id"`
	URL       string `json:"url"`
}

// Donation represents a recorded donation as returned by the backend
type Donation struct {
	ID            int            `json:"id"`
	DonorEmail    string         `json:"donor_email"`
	DonorFullName string         `json:"donor_full_name"`
	Amount        string         `json:"amount"`
	Currency      Currency       `json:"currency"`
	PaymentClient PaymentClient  `json:"payment_client"`
	Frequency     Frequency      `json:"frequency"`
	Status        DonationStatus `json:"status"`
	ProjectID     int            `json:"project_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Volunteer represents a submitted volunteer application
type Volunteer struct {
	ID           int          `json:"id"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	Email        string       `json:"email"`
	PhoneNumber  string       `json:"phone_number"`
	Age          string       `json:"age"`
	Country      string       `json:"country"`
	Role         Role         `json:"role"`
	Availability Availability `json:"availability"`
	Hours        string       `json:"hours,omitempty"`
	Days         string       `json:"days,omitempty"`
	CVURL        string       `json:"cv_url,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Subscription represents a newsletter subscription
type Subscription struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// User represents an authenticated back-office user
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}
