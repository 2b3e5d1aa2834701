package models

import "time"

// Service request states
const (
	RequestPublished = 0
	RequestCancelled = -1
)

// ServiceRequestDB represents a published need in the database
type ServiceRequestDB struct {
	RequestID     int64      `json:"id" db:"request_id"`                   // Primary key
	OwnerID       int64      `json:"owner_id" db:"owner_id"`               // Publisher
	Title         string     `json:"title" db:"title"`                     // Up to 80 characters
	Description   string     `json:"description" db:"description"`         // Up to 300 characters
	ServiceTypeID int64      `json:"service_type_id" db:"service_type_id"`
	CityID        int64      `json:"city_id" db:"city_id"`
	BeginDate     time.Time  `json:"begin_date" db:"begin_date"`           // Desired start date
	Files         FileList   `json:"files" db:"files"`
	State         int        `json:"state" db:"state"`                     // 0 published, -1 cancelled
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`           // Publish timestamp
	UpdatedAt     *time.Time `json:"updated_at" db:"updated_at"`           // Set on edit/cancel
}

// ServiceRequestView is a request joined with the names callers display next to it.
type ServiceRequestView struct {
	ServiceRequestDB
	OwnerName       string `json:"owner_name" db:"owner_name"`
	ServiceTypeName string `json:"service_type_name" db:"service_type_name"`
	CityName        string `json:"city_name" db:"city_name"`
}

// ServiceRequestFields are the fields supplied when publishing.
type ServiceRequestFields struct {
	Title         string
	Description   string
	ServiceTypeID int64
	CityID        int64
	BeginDate     time.Time
	Files         FileList
}

// ServiceRequestPatch is a partial update of a request; nil fields are left untouched.
type ServiceRequestPatch struct {
	Title         *string
	Description   *string
	ServiceTypeID *int64
	CityID        *int64
	BeginDate     *time.Time
	Files         *FileList
}

// ServiceRequestFilter holds optional equality predicates for listing requests.
type ServiceRequestFilter struct {
	OwnerID       *int64
	ServiceTypeID *int64
	CityID        *int64
	State         *int
}
