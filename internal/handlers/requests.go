package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sbilibin2017/goodservices/internal/models"
	"github.com/sbilibin2017/goodservices/internal/services"
)

//go:generate mockgen -source=requests.go -destination=mock_requests.go -package=handlers

const dateLayout = "2006-01-02"

// RequestService defines the request lifecycle operations.
type RequestService interface {
	Publish(ctx context.Context, actor models.Actor, fields models.ServiceRequestFields) (*models.ServiceRequestDB, error)
	Edit(ctx context.Context, actor models.Actor, requestID int64, patch models.ServiceRequestPatch) (*models.ServiceRequestDB, error)
	Cancel(ctx context.Context, actor models.Actor, requestID int64) error
	Delete(ctx context.Context, actor models.Actor, requestID int64) error
	Get(ctx context.Context, requestID int64) (*models.ServiceRequestView, error)
	List(ctx context.Context, filter models.ServiceRequestFilter, page, size int) (models.Page[models.ServiceRequestView], error)
	ListMine(ctx context.Context, actor models.Actor, page, size int) (models.Page[models.ServiceRequestView], error)
}

// CreateServiceRequestRequest represents the JSON body for publishing a request
// swagger:model CreateServiceRequestRequest
type CreateServiceRequestRequest struct {
	// Up to 80 characters
	// required: true
	// default: Need help fixing a leaking pipe
	Title string `json:"title"`

	// Up to 300 characters
	Description string `json:"description"`

	// required: true
	// default: 1
	ServiceTypeID int64 `json:"service_type_id"`

	// required: true
	// default: 1
	CityID int64 `json:"city_id"`

	// Desired start date, YYYY-MM-DD
	// required: true
	// default: 2025-07-01
	BeginDate string `json:"begin_date"`

	// Attachment paths
	Files []string `json:"files"`
}

// UpdateServiceRequestRequest represents a partial update of a request
// swagger:model UpdateServiceRequestRequest
type UpdateServiceRequestRequest struct {
	Title         *string   `json:"title,omitempty"`
	Description   *string   `json:"description,omitempty"`
	ServiceTypeID *int64    `json:"service_type_id,omitempty"`
	CityID        *int64    `json:"city_id,omitempty"`
	BeginDate     *string   `json:"begin_date,omitempty"`
	Files         *[]string `json:"files,omitempty"`
}

// ServiceRequestResponse represents a published request
// swagger:model ServiceRequestResponse
type ServiceRequestResponse struct {
	ID              int64      `json:"id"`
	OwnerID         int64      `json:"owner_id"`
	OwnerName       string     `json:"owner_name,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	ServiceTypeID   int64      `json:"service_type_id"`
	ServiceTypeName string     `json:"service_type_name,omitempty"`
	CityID          int64      `json:"city_id"`
	CityName        string     `json:"city_name,omitempty"`
	BeginDate       string     `json:"begin_date"`
	Files           []string   `json:"files"`
	State           int        `json:"state"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// ServiceRequestPageResponse represents one page of requests
// swagger:model ServiceRequestPageResponse
type ServiceRequestPageResponse struct {
	Items      []ServiceRequestResponse `json:"items"`
	Total      int                      `json:"total"`
	Page       int                      `json:"page"`
	Size       int                      `json:"size"`
	TotalPages int                      `json:"total_pages"`
}

func toServiceRequestResponse(req *models.ServiceRequestDB) ServiceRequestResponse {
	files := []string(req.Files)
	if files == nil {
		files = []string{}
	}
	return ServiceRequestResponse{
		ID:            req.RequestID,
		OwnerID:       req.OwnerID,
		Title:         req.Title,
		Description:   req.Description,
		ServiceTypeID: req.ServiceTypeID,
		CityID:        req.CityID,
		BeginDate:     req.BeginDate.Format(dateLayout),
		Files:         files,
		State:         req.State,
		CreatedAt:     req.CreatedAt,
		UpdatedAt:     req.UpdatedAt,
	}
}

func toServiceRequestView(v *models.ServiceRequestView) ServiceRequestResponse {
	out := toServiceRequestResponse(&v.ServiceRequestDB)
	out.OwnerName = v.OwnerName
	out.ServiceTypeName = v.ServiceTypeName
	out.CityName = v.CityName
	return out
}

func toServiceRequestPage(p models.Page[models.ServiceRequestView]) ServiceRequestPageResponse {
	items := make([]ServiceRequestResponse, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, toServiceRequestView(&p.Items[i]))
	}
	return ServiceRequestPageResponse{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		Size:       p.Size,
		TotalPages: p.TotalPages,
	}
}

func parseDate(field, raw string) (time.Time, error) {
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", services.ErrValidation, field)
	}
	return d, nil
}

// NewCreateServiceRequestHandler publishes a request.
// @Summary Publish a service request
// @Tags requests
// @Accept json
// @Produce json
// @Param request body handlers.CreateServiceRequestRequest true "Request fields"
// @Success 201 {object} handlers.ServiceRequestResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 422 {object} handlers.ErrorResponse "Unknown service type or city"
// @Router /requests [post]
// @Security BearerAuth
func NewCreateServiceRequestHandler(svc RequestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFrom(w, r)
		if !ok {
			return
		}

		var req CreateServiceRequestRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		beginDate, err := parseDate("begin_date", req.BeginDate)
		if err != nil {
			writeError(w, r, err)
			return
		}

		created, err := svc.Publish(r.Context(), actor, models.ServiceRequestFields{
			Title:         req.Title,
			Description:   req.Description,
			ServiceTypeID: req.ServiceTypeID,
			CityID:        req.CityID,
			BeginDate:     beginDate,
			Files:         models.FileList(req.Files),
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, toServiceRequestResponse(created))
	}
}

// NewUpdateServiceRequestHandler edits a request without responses.
// @Summary Edit a service request
// @Tags requests
// @Accept json
// @Produce json
// @Param id path int true "Request id"
// @Param request body handlers.UpdateServiceRequestRequest true "Fields to change"
// @Success 200 {object} handlers.ServiceRequestResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the publisher"
// @Failure 404 {object} handlers.ErrorResponse "Request not found"
// @Failure 409 {object} handlers.ErrorResponse "Request already has responses"
// @Router /requests/{id} [put]
// @Security BearerAuth
func NewUpdateServiceRequestHandler(svc RequestService) http.HandlerFunc {
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

		var req UpdateServiceRequestRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		patch := models.ServiceRequestPatch{
			Title:         req.Title,
			Description:   req.Description,
			ServiceTypeID: req.ServiceTypeID,
			CityID:        req.CityID,
		}
		if req.BeginDate != nil {
			d, err := parseDate("begin_date", *req.BeginDate)
			if err != nil {
				writeError(w, r, err)
				return
			}
			patch.BeginDate = &d
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

		writeJSON(w, http.StatusOK, toServiceRequestResponse(updated))
	}
}

// NewCancelServiceRequestHandler cancels a request.
// @Summary Cancel a service request
// @Tags requests
// @Produce json
// @Param id path int true "Request id"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the publisher"
// @Failure 404 {object} handlers.ErrorResponse "Request not found"
// @Router /requests/{id}/cancel [put]
// @Security BearerAuth
func NewCancelServiceRequestHandler(svc RequestService) http.HandlerFunc {
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
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Service request cancelled"})
	}
}

// NewDeleteServiceRequestHandler soft-deletes a request.
// @Summary Delete a service request
// @Description Requests are never removed; deleting cancels them.
// @Tags requests
// @Produce json
// @Param id path int true "Request id"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the publisher"
// @Failure 404 {object} handlers.ErrorResponse "Request not found"
// @Router /requests/{id} [delete]
// @Security BearerAuth
func NewDeleteServiceRequestHandler(svc RequestService) http.HandlerFunc {
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
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Service request deleted"})
	}
}

// NewGetServiceRequestHandler returns one request.
// @Summary Get a service request
// @Tags requests
// @Produce json
// @Param id path int true "Request id"
// @Success 200 {object} handlers.ServiceRequestResponse
// @Failure 404 {object} handlers.ErrorResponse "Request not found"
// @Router /requests/{id} [get]
// @Security BearerAuth
func NewGetServiceRequestHandler(svc RequestService) http.HandlerFunc {
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
		writeJSON(w, http.StatusOK, toServiceRequestView(view))
	}
}

// NewListServiceRequestsHandler lists requests.
// @Summary List service requests
// @Tags requests
// @Produce json
// @Param owner_id query int false "Publisher id"
// @Param service_type_id query int false "Service type id"
// @Param city_id query int false "City id"
// @Param state query int false "0 published, -1 cancelled"
// @Param page query int false "Page, from 1" default(1)
// @Param size query int false "Page size, 1-100" default(10)
// @Success 200 {object} handlers.ServiceRequestPageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid filter or page"
// @Router /requests [get]
// @Security BearerAuth
func NewListServiceRequestsHandler(svc RequestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, size, err := queryPage(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var filter models.ServiceRequestFilter
		if filter.OwnerID, err = queryInt64Ptr(r, "owner_id"); err != nil {
			writeError(w, r, err)
			return
		}
		if filter.ServiceTypeID, err = queryInt64Ptr(r, "service_type_id"); err != nil {
			writeError(w, r, err)
			return
		}
		if filter.CityID, err = queryInt64Ptr(r, "city_id"); err != nil {
			writeError(w, r, err)
			return
		}
		if filter.State, err = queryIntPtr(r, "state"); err != nil {
			writeError(w, r, err)
			return
		}

		result, err := svc.List(r.Context(), filter, page, size)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toServiceRequestPage(result))
	}
}

// NewListMyServiceRequestsHandler lists the caller's requests.
// @Summary List my service requests
// @Tags requests
// @Produce json
// @Param page query int false "Page, from 1" default(1)
// @Param size query int false "Page size, 1-100" default(10)
// @Success 200 {object} handlers.ServiceRequestPageResponse
// @Router /requests/my [get]
// @Security BearerAuth
func NewListMyServiceRequestsHandler(svc RequestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFrom(w, r)
		if !ok {
			return
		}
		page, size, err := queryPage(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		result, err := svc.ListMine(r.Context(), actor, page, size)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toServiceRequestPage(result))
	}
}
