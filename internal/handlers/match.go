package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/goodservices/internal/models"
)

//go:generate mockgen -source=match.go -destination=mock_match.go -package=handlers

// Matcher accepts or rejects responses.
type Matcher interface {
	Accept(ctx context.Context, actor models.Actor, responseID int64) (*models.AcceptRecordDB, error)
	Reject(ctx context.Context, actor models.Actor, responseID int64) error
}

// AcceptRecordResponse represents a completed match
// swagger:model AcceptRecordResponse
type AcceptRecordResponse struct {
	ID          int64     `json:"id"`
	ResponseID  int64     `json:"response_id"`
	RequestID   int64     `json:"request_id"`
	PublisherID int64     `json:"publisher_id"`
	ResponderID int64     `json:"responder_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewAcceptHandler accepts a response.
// @Summary Accept a response
// @Description Only the publisher of the parent request may accept; a request can have a single accepted response.
// @Tags match
// @Produce json
// @Param id path int true "Response id"
// @Success 200 {object} handlers.AcceptRecordResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the publisher"
// @Failure 404 {object} handlers.ErrorResponse "Response not found"
// @Failure 409 {object} handlers.ErrorResponse "Response already processed or request already matched"
// @Router /match/accept/{id} [post]
// @Security BearerAuth
func NewAcceptHandler(svc Matcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFrom(w, r)
		if !ok {
			return
		}
		id, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		record, err := svc.Accept(r.Context(), actor, id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, AcceptRecordResponse{
			ID:          record.AcceptID,
			ResponseID:  record.ResponseID,
			RequestID:   record.RequestID,
			PublisherID: record.PublisherID,
			ResponderID: record.ResponderID,
			CreatedAt:   record.CreatedAt,
		})
	}
}

// NewRejectHandler rejects a response.
// @Summary Reject a response
// @Tags match
// @Produce json
// @Param id path int true "Response id"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the publisher"
// @Failure 404 {object} handlers.ErrorResponse "Response not found"
// @Failure 409 {object} handlers.ErrorResponse "Response already processed"
// @Router /match/reject/{id} [post]
// @Security BearerAuth
func NewRejectHandler(svc Matcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFrom(w, r)
		if !ok {
			return
		}
		id, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err := svc.Reject(r.Context(), actor, id); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Response rejected"})
	}
}
