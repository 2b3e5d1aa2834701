package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/goodservices/internal/models"
)

//go:generate mockgen -source=responses.go -destination=mock_responses.go -package=handlers

// ResponseService defines the response lifecycle operations.
type ResponseService interface {
	Respond(ctx context.Context, actor models.Actor, requestID int64, fields models.ServiceResponseFields) (*models.ServiceResponseDB, error)
	Edit(ctx context.Context, actor models.Actor, responseID int64, patch models.ServiceResponsePatch) (*models.ServiceResponseDB, error)
	Cancel(ctx context.Context, actor models.Actor, responseID int64) error
	Delete(ctx context.Context, actor models.Actor, responseID int64) error
	Get(ctx context.Context, responseID int64) (*models.ServiceResponseView, error)
	List(ctx context.Context, filter models.ServiceResponseFilter, page, size int) (models.Page[models.ServiceResponseView], error)
}

// CreateServiceResponseRequest represents the JSON body for responding to a request
// swagger:model CreateServiceResponseRequest
type CreateServiceResponseRequest struct {
	// required: true
	// default: 1
	RequestID int64 `json:"request_id"`

	// Up to 50 characters
	// required: true
	// default: I can come tomorrow
	Title string `json:"title"`

	// Up to 500 characters
	Description string `json:"description"`

	// Up to 10 attachment paths
	Files []string `json:"files"`
}

// UpdateServiceResponseRequest represents a partial update of a pending response
// swagger:model UpdateServiceResponseRequest
type UpdateServiceResponseRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Files       *[]string `json:"files,omitempty"`
}

// ServiceResponseResponse represents an offer
// swagger:model ServiceResponseResponse
type ServiceResponseResponse struct {
	ID             int64      `json:"id"`
	RequestID      int64      `json:"request_id"`
	ResponderID    int64      `json:"responder_id"`
	ResponderName  string     `json:"responder_name,omitempty"`
	ResponderPhone string     `json:"responder_phone,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Files          []string   `json:"files"`
	State          int        `json:"state"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// ServiceResponsePageResponse represents one page of responses
// swagger:model ServiceResponsePageResponse
type ServiceResponsePageResponse struct {
	Items      []ServiceResponseResponse `json:"items"`
	Total      int                       `json:"total"`
	Page       int                       `json:"page"`
	Size       int                       `json:"size"`
	TotalPages int                       `json:"total_pages"`
}

func toServiceResponseResponse(resp *models.ServiceResponseDB) ServiceResponseResponse {
	files := []string(resp.Files)
	if files == nil {
		files = []string{}
	}
	return ServiceResponseResponse{
		ID:          resp.ResponseID,
		RequestID:   resp.RequestID,
		ResponderID: resp.ResponderID,
		Title:       resp.Title,
		Description: resp.Description,
		Files:       files,
		State:       resp.State,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}

func toServiceResponseView(v *models.ServiceResponseView) ServiceResponseResponse {
	out := toServiceResponseResponse(&v.ServiceResponseDB)
	out.ResponderName = v.ResponderName
	out.ResponderPhone = v.ResponderPhone
	return out
}

// NewCreateServiceResponseHandler responds to a request.
// @Summary Respond to a service request
// @Tags responses
// @Accept json
// @Produce json
// @Param request body handlers.CreateServiceResponseRequest true "Response fields"
// @Success 201 {object} handlers.ServiceResponseResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Own request"
// @Failure 404 {object} handlers.ErrorResponse "Request not found"
// @Failure 409 {object} handlers.ErrorResponse "Request cancelled or already matched"
// @Router /responses [post]
// @Security BearerAuth
func NewCreateServiceResponseHandler(svc ResponseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFrom(w, r)
		if !ok {
			return
		}

		var req CreateServiceResponseRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		created, err := svc.Respond(r.Context(), actor, req.RequestID, models.ServiceResponseFields{
			Title:       req.Title,
			Description: req.Description,
			Files:       models.FileList(req.Files),
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, toServiceResponseResponse(created))
	}
}

// NewUpdateServiceResponseHandler edits a pending response.
// @Summary Edit a service response
// @Tags responses
// @Accept json
// @Produce json
// @Param id path int true "Response id"
// @Param request body handlers.UpdateServiceResponseRequest true "Fields to change"
// @Success 200 {object} handlers.ServiceResponseResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the responder"
// @Failure 404 {object} handlers.ErrorResponse "Response not found"
// @Failure 409 {object} handlers.ErrorResponse "Response already processed"
// @Router /responses/{id} [put]
// @Security BearerAuth
func NewUpdateServiceResponseHandler(svc ResponseService) http.HandlerFunc {
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

		var req UpdateServiceResponseRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		patch := models.ServiceResponsePatch{
			Title:       req.Title,
			Description: req.Description,
		}
		if req.Files != nil {
			files := models.FileList(*req.Files)
			patch.Files = &files
		}

		updated, err := svc.Edit(r.Context(), actor, id, patch)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toServiceResponseResponse(updated))
	}
}

// NewCancelServiceResponseHandler withdraws a pending response.
// @Summary Cancel a service response
// @Tags responses
// @Produce json
// @Param id path int true "Response id"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the responder"
// @Failure 404 {object} handlers.ErrorResponse "Response not found"
// @Failure 409 {object} handlers.ErrorResponse "Response already processed"
// @Router /responses/{id}/cancel [put]
// @Security BearerAuth
func NewCancelServiceResponseHandler(svc ResponseService) http.HandlerFunc {
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

		if err := svc.Cancel(r.Context(), actor, id); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Service response cancelled"})
	}
}

// NewDeleteServiceResponseHandler soft-deletes a response.
// @Summary Delete a service response
// @Description Responses are never removed; deleting cancels them.
// @Tags responses
// @Produce json
// @Param id path int true "Response id"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the responder"
// @Failure 404 {object} handlers.ErrorResponse "Response not found"
// @Failure 409 {object} handlers.ErrorResponse "Response already processed"
// @Router /responses/{id} [delete]
// @Security BearerAuth
func NewDeleteServiceResponseHandler(svc ResponseService) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), actor, id); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Service response deleted"})
	}
}

// NewGetServiceResponseHandler returns one response.
// @Summary Get a service response
// @Tags responses
// @Produce json
// @Param id path int true "Response id"
// @Success 200 {object} handlers.ServiceResponseResponse
// @Failure 404 {object} handlers.ErrorResponse "Response not found"
// @Router /responses/{id} [get]
// @Security BearerAuth
func NewGetServiceResponseHandler(svc ResponseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		view, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toServiceResponseView(view))
	}
}

// NewListServiceResponsesHandler lists responses.
// @Summary List service responses
// @Tags responses
// @Produce json
// @Param responder_id query int false "Responder id"
// @Param request_id query int false "Parent request id"
// @Param state query int false "0 pending, 1 accepted, 2 rejected, 3 cancelled"
// @Param city_id query int false "City of the parent request"
// @Param page query int false "Page, from 1" default(1)
// @Param size query int false "Page size, 1-100" default(10)
// @Success 200 {object} handlers.ServiceResponsePageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid filter or page"
// @Router /responses [get]
// @Security BearerAuth
func NewListServiceResponsesHandler(svc ResponseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, size, err := queryPage(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var filter models.ServiceResponseFilter
		if filter.ResponderID, err = queryInt64Ptr(r, "responder_id"); err != nil {
			writeError(w, r, err)
			return
		}
		if filter.RequestID, err = queryInt64Ptr(r, "request_id"); err != nil {
			writeError(w, r, err)
			return
		}
		if filter.State, err = queryIntPtr(r, "state"); err != nil {
			writeError(w, r, err)
			return
		}
		if filter.CityID, err = queryInt64Ptr(r, "city_id"); err != nil {
			writeError(w, r, err)
			return
		}

		result, err := svc.List(r.Context(), filter, page, size)
		if err != nil {
			writeError(w, r, err)
			return
		}

		items := make([]ServiceResponseResponse, 0, len(result.Items))
		for i := range result.Items {
			items = append(items, toServiceResponseView(&result.Items[i]))
		}
		writeJSON(w, http.StatusOK, ServiceResponsePageResponse{
			Items:      items,
			Total:      result.Total,
			Page:       result.Page,
			Size:       result.Size,
			TotalPages: result.TotalPages,
		})
	}
}
