package models

import "time"

// Service response states
const (
	ResponsePending   = 0
	ResponseAccepted  = 1
	ResponseRejected  = 2
	ResponseCancelled = 3
)

// ServiceResponseDB represents an offer made against a request
type ServiceResponseDB struct {
	ResponseID  int64      `json:"id" db:"response_id"`            // Primary key
	ResponderID int64      `json:"responder_id" db:"responder_id"` // Author of the offer
	RequestID   int64      `json:"request_id" db:"request_id"`     // Parent request
	Title       string     `json:"title" db:"title"`               // Up to 50 characters
	Description string     `json:"description" db:"description"`   // Up to 500 characters
	Files       FileList   `json:"files" db:"files"`
	State       int        `json:"state" db:"state"`               // see Response* constants
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"`
}

// ServiceResponseView is a response enriched with the responder identity shown to the publisher.
type ServiceResponseView struct {
	ServiceResponseDB
	ResponderName  string `json:"responder_name" db:"responder_name"`
	ResponderPhone string `json:"responder_phone" db:"responder_phone"`
}

// ServiceResponseFields are the fields supplied when responding.
type ServiceResponseFields struct {
	Title       string
	Description string
	Files       FileList
}

// ServiceResponsePatch is a partial update of a response; nil fields are left untouched.
type ServiceResponsePatch struct {
	Title       *string
	Description *string
	Files       *FileList
}

// ServiceResponseFilter holds optional equality predicates for listing responses.
type ServiceResponseFilter struct {
	ResponderID *int64
	RequestID   *int64
	State       *int
	CityID      *int64
}
