package models

import "time"

// AcceptRecordDB is the immutable audit row written when a publisher accepts a response.
type AcceptRecordDB struct {
	AcceptID    int64     `json:"id" db:"accept_id"`
	ResponseID  int64     `json:"response_id" db:"response_id"`
	RequestID   int64     `json:"request_id" db:"request_id"`
	PublisherID int64     `json:"publisher_id" db:"publisher_id"`
	ResponderID int64     `json:"responder_id" db:"responder_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
