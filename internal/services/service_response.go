package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/goodservices/internal/logger"
	"github.com/sbilibin2017/goodservices/internal/models"
	"github.com/sbilibin2017/goodservices/internal/repositories"
)

//go:generate mockgen -source=service_response.go -destination=mock_service_response.go -package=services

// ServiceResponseReader defines read operations for service responses.
type ServiceResponseReader interface {
	GetByID(ctx context.Context, responseID int64) (*models.ServiceResponseDB, error)
	GetByIDForUpdate(ctx context.Context, responseID int64) (*models.ServiceResponseDB, error)
	GetView(ctx context.Context, responseID int64) (*models.ServiceResponseView, error)
	List(ctx context.Context, filter models.ServiceResponseFilter, limit, offset int) ([]models.ServiceResponseView, int, error)
}

// ServiceResponseWriter defines write operations for service responses.
type ServiceResponseWriter interface {
	Create(ctx context.Context, responderID, requestID int64, fields models.ServiceResponseFields) (*models.ServiceResponseDB, error)
	Update(ctx context.Context, responseID int64, patch models.ServiceResponsePatch) (*models.ServiceResponseDB, error)
	SetState(ctx context.Context, responseID int64, state int) error
}

// AcceptChecker reports whether a request has already been matched.
type AcceptChecker interface {
	ExistsForRequest(ctx context.Context, requestID int64) (bool, error)
}

// ServiceResponseService implements the response lifecycle.
type ServiceResponseService struct {
	requests ServiceRequestReader
	accepts  AcceptChecker
	reader   ServiceResponseReader
	writer   ServiceResponseWriter
}

func NewServiceResponseService(
	requests ServiceRequestReader,
	accepts AcceptChecker,
	reader ServiceResponseReader,
	writer ServiceResponseWriter,
) *ServiceResponseService {
	return &ServiceResponseService{
		requests: requests,
		accepts:  accepts,
		reader:   reader,
		writer:   writer,
	}
}

func validateResponseFields(f models.ServiceResponseFields) error {
	if err := checkTitle("title", f.Title, responseTitleMax); err != nil {
		return err
	}
	if err := checkLength("description", f.Description, 0, responseDescriptionMax); err != nil {
		return err
	}
	return checkFiles(f.Files)
}

func validateResponsePatch(p models.ServiceResponsePatch) error {
	if p.Title != nil {
		if err := checkTitle("title", *p.Title, responseTitleMax); err != nil {
			return err
		}
	}
	if p.Description != nil {
		if err := checkLength("description", *p.Description, 0, responseDescriptionMax); err != nil {
			return err
		}
	}
	if p.Files != nil {
		return checkFiles(*p.Files)
	}
	return nil
}

// Respond creates a pending offer against an open request of another user.
func (svc *ServiceResponseService) Respond(ctx context.Context, actor models.Actor, requestID int64, fields models.ServiceResponseFields) (*models.ServiceResponseDB, error) {
	log := logger.FromContext(ctx)

	req, err := svc.requests.GetByIDForUpdate(ctx, requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		log.Errorw("failed to get service request", "request_id", requestID, "err", err)
		return nil, err
	}
	if req.OwnerID == actor.UserID {
		return nil, ErrOwnRequest
	}
	if req.State == models.RequestCancelled {
		return nil, ErrRequestCancelled
	}

	matched, err := svc.accepts.ExistsForRequest(ctx, requestID)
	if err != nil {
		log.Errorw("failed to check accept records", "request_id", requestID, "err", err)
		return nil, err
	}
	if matched {
		return nil, ErrRequestAlreadyMatched
	}

	if err := validateResponseFields(fields); err != nil {
		log.Warnw("invalid service response", "request_id", requestID, "err", err)
		return nil, err
	}
	if fields.Files == nil {
		fields.Files = models.FileList{}
	}

	resp, err := svc.writer.Create(ctx, actor.UserID, requestID, fields)
	if err != nil {
		log.Errorw("failed to create service response", "request_id", requestID, "err", err)
		return nil, err
	}
	return resp, nil
}

// loadOwned locks the response and checks the actor wrote it.
func (svc *ServiceResponseService) loadOwned(ctx context.Context, actor models.Actor, responseID int64) (*models.ServiceResponseDB, error) {
	resp, err := svc.reader.GetByIDForUpdate(ctx, responseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrResponseNotFound
		}
		logger.FromContext(ctx).Errorw("failed to get service response", "response_id", responseID, "err", err)
		return nil, err
	}
	if resp.ResponderID != actor.UserID {
		logger.FromContext(ctx).Warnw("response ownership check failed", "response_id", responseID, "actor", actor.UserID)
		return nil, ErrNotResponseOwner
	}
	return resp, nil
}

// Edit applies a partial update to a pending response.
func (svc *ServiceResponseService) Edit(ctx context.Context, actor models.Actor, responseID int64, patch models.ServiceResponsePatch) (*models.ServiceResponseDB, error) {
	resp, err := svc.loadOwned(ctx, actor, responseID)
	if err != nil {
		return nil, err
	}
	if resp.State != models.ResponsePending {
		return nil, ErrResponseProcessed
	}
	if err := validateResponsePatch(patch); err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, responseID, patch)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update service response", "response_id", responseID, "err", err)
		return nil, err
	}
	return updated, nil
}

// Cancel withdraws a pending response. Cancelling twice is a no-op; accepted or
// rejected responses cannot be withdrawn.
func (svc *ServiceResponseService) Cancel(ctx context.Context, actor models.Actor, responseID int64) error {
	resp, err := svc.loadOwned(ctx, actor, responseID)
	if err != nil {
		return err
	}
	switch resp.State {
	case models.ResponseCancelled:
		return nil
	case models.ResponseAccepted, models.ResponseRejected:
		return ErrResponseProcessed
	}

	if err := svc.writer.SetState(ctx, responseID, models.ResponseCancelled); err != nil {
		logger.FromContext(ctx).Errorw("failed to cancel service response", "response_id", responseID, "err", err)
		return err
	}
	return nil
}

// Delete soft-deletes the response by cancelling it.
func (svc *ServiceResponseService) Delete(ctx context.Context, actor models.Actor, responseID int64) error {
	return svc.Cancel(ctx, actor, responseID)
}

// Get returns a response with the responder identity.
func (svc *ServiceResponseService) Get(ctx context.Context, responseID int64) (*models.ServiceResponseView, error) {
	view, err := svc.reader.GetView(ctx, responseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrResponseNotFound
		}
		logger.FromContext(ctx).Errorw("failed to get service response", "response_id", responseID, "err", err)
		return nil, err
	}
	return view, nil
}

// List returns one page of responses matching filter.
func (svc *ServiceResponseService) List(ctx context.Context, filter models.ServiceResponseFilter, page, size int) (models.Page[models.ServiceResponseView], error) {
	if err := checkPage(page, size); err != nil {
		return models.Page[models.ServiceResponseView]{}, err
	}

	items, total, err := svc.reader.List(ctx, filter, size, models.Offset(page, size))
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list service responses", "err", err)
		return models.Page[models.ServiceResponseView]{}, err
	}
	return models.NewPage(items, total, page, size), nil
}
