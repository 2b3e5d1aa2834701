package models

// Match event types
const (
	EventResponseAccepted = "response.accepted"
	EventResponseRejected = "response.rejected"
	EventRequestCancelled = "request.cancelled"
)

// MatchEvent is published to the message broker after a lifecycle transition commits.
type MatchEvent struct {
	EventID     string `json:"event_id"`               // Unique identifier of the event
	Type        string `json:"type"`                   // One of the Event* constants
	Timestamp   int64  `json:"timestamp"`              // Unix seconds
	RequestID   int64  `json:"request_id"`             // Affected request
	ResponseID  int64  `json:"response_id,omitempty"`  // Affected response, if any
	PublisherID int64  `json:"publisher_id"`           // Owner of the request
	ResponderID int64  `json:"responder_id,omitempty"` // Author of the response, if any
}
