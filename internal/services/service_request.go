package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/goodservices/internal/logger"
	"github.com/sbilibin2017/goodservices/internal/models"
	"github.com/sbilibin2017/goodservices/internal/repositories"
)

//go:generate mockgen -source=service_request.go -destination=mock_service_request.go -package=services

// ServiceRequestReader defines read operations for service requests.
type ServiceRequestReader interface {
	GetByID(ctx context.Context, requestID int64) (*models.ServiceRequestDB, error)
	GetByIDForUpdate(ctx context.Context, requestID int64) (*models.ServiceRequestDB, error)
	GetView(ctx context.Context, requestID int64) (*models.ServiceRequestView, error)
	List(ctx context.Context, filter models.ServiceRequestFilter, limit, offset int) ([]models.ServiceRequestView, int, error)
}

// ServiceRequestWriter defines write operations for service requests.
type ServiceRequestWriter interface {
	Create(ctx context.Context, ownerID int64, fields models.ServiceRequestFields) (*models.ServiceRequestDB, error)
	Update(ctx context.Context, requestID int64, patch models.ServiceRequestPatch) (*models.ServiceRequestDB, error)
	SetState(ctx context.Context, requestID int64, state int) error
}

// ResponseCounter counts the responses of a request.
type ResponseCounter interface {
	CountByRequest(ctx context.Context, requestID int64) (int, error)
}

// ReferenceChecker validates category and city ids.
type ReferenceChecker interface {
	CheckReferences(ctx context.Context, serviceTypeID, cityID *int64) error
}

// ServiceRequestService implements the request lifecycle.
type ServiceRequestService struct {
	reader    ServiceRequestReader
	writer    ServiceRequestWriter
	responses ResponseCounter
	refs      ReferenceChecker
	events    MatchEventPublisher
}

func NewServiceRequestService(
	reader ServiceRequestReader,
	writer ServiceRequestWriter,
	responses ResponseCounter,
	refs ReferenceChecker,
	events MatchEventPublisher,
) *ServiceRequestService {
	return &ServiceRequestService{
		reader:    reader,
		writer:    writer,
		responses: responses,
		refs:      refs,
		events:    events,
	}
}

func validateRequestFields(f models.ServiceRequestFields) error {
	if err := checkTitle("title", f.Title, requestTitleMax); err != nil {
		return err
	}
	if err := checkLength("description", f.Description, 0, requestDescriptionMax); err != nil {
		return err
	}
	if f.BeginDate.IsZero() {
		return validationError("begin_date", "is required")
	}
	return checkFiles(f.Files)
}

func validateRequestPatch(p models.ServiceRequestPatch) error {
	if p.Title != nil {
		if err := checkTitle("title", *p.Title, requestTitleMax); err != nil {
			return err
		}
	}
	if p.Description != nil {
		if err := checkLength("description", *p.Description, 0, requestDescriptionMax); err != nil {
			return err
		}
	}
	if p.BeginDate != nil && p.BeginDate.IsZero() {
		return validationError("begin_date", "must be a valid date")
	}
	if p.Files != nil {
		return checkFiles(*p.Files)
	}
	return nil
}

// Publish creates a request in the published state owned by the actor.
func (svc *ServiceRequestService) Publish(ctx context.Context, actor models.Actor, fields models.ServiceRequestFields) (*models.ServiceRequestDB, error) {
	log := logger.FromContext(ctx)

	if err := validateRequestFields(fields); err != nil {
		log.Warnw("invalid service request", "owner_id", actor.UserID, "err", err)
		return nil, err
	}
	if err := svc.refs.CheckReferences(ctx, &fields.ServiceTypeID, &fields.CityID); err != nil {
		return nil, err
	}
	if fields.Files == nil {
		fields.Files = models.FileList{}
	}

	req, err := svc.writer.Create(ctx, actor.UserID, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKey) {
			return nil, ErrReference
		}
		log.Errorw("failed to create service request", "owner_id", actor.UserID, "err", err)
		return nil, err
	}

	return req, nil
}

// loadOwned locks the request and checks the actor owns it.
func (svc *ServiceRequestService) loadOwned(ctx context.Context, actor models.Actor, requestID int64) (*models.ServiceRequestDB, error) {
	req, err := svc.reader.GetByIDForUpdate(ctx, requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		logger.FromContext(ctx).Errorw("failed to get service request", "request_id", requestID, "err", err)
		return nil, err
	}
	if req.OwnerID != actor.UserID {
		logger.FromContext(ctx).Warnw("request ownership check failed", "request_id", requestID, "actor", actor.UserID)
		return nil, ErrNotRequestOwner
	}
	return req, nil
}

// Edit applies a partial update. Requests with any response, or cancelled ones, are immutable.
func (svc *ServiceRequestService) Edit(ctx context.Context, actor models.Actor, requestID int64, patch models.ServiceRequestPatch) (*models.ServiceRequestDB, error) {
	log := logger.FromContext(ctx)

	req, err := svc.loadOwned(ctx, actor, requestID)
	if err != nil {
		return nil, err
	}
	if req.State == models.RequestCancelled {
		return nil, ErrRequestCancelled
	}

	count, err := svc.responses.CountByRequest(ctx, requestID)
	if err != nil {
		log.Errorw("failed to count responses", "request_id", requestID, "err", err)
		return nil, err
	}
	if count > 0 {
		log.Warnw("edit rejected, request has responses", "request_id", requestID, "responses", count)
		return nil, ErrRequestHasResponses
	}

	if err := validateRequestPatch(patch); err != nil {
		return nil, err
	}
	if err := svc.refs.CheckReferences(ctx, patch.ServiceTypeID, patch.CityID); err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, requestID, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKey) {
			return nil, ErrReference
		}
		log.Errorw("failed to update service request", "request_id", requestID, "err", err)
		return nil, err
	}
	return updated, nil
}

// Cancel moves a published request to cancelled. Cancelling a cancelled request is a no-op.
func (svc *ServiceRequestService) Cancel(ctx context.Context, actor models.Actor, requestID int64) error {
	req, err := svc.loadOwned(ctx, actor, requestID)
	if err != nil {
		return err
	}
	if req.State == models.RequestCancelled {
		return nil
	}

	if err := svc.writer.SetState(ctx, requestID, models.RequestCancelled); err != nil {
		logger.FromContext(ctx).Errorw("failed to cancel service request", "request_id", requestID, "err", err)
		return err
	}

	svc.events.Publish(ctx, models.MatchEvent{
		Type:        models.EventRequestCancelled,
		RequestID:   requestID,
		PublisherID: req.OwnerID,
	})
	return nil
}

// Delete soft-deletes the request by cancelling it; rows are never removed.
func (svc *ServiceRequestService) Delete(ctx context.Context, actor models.Actor, requestID int64) error {
	return svc.Cancel(ctx, actor, requestID)
}

// Get returns a request with its display names.
func (svc *ServiceRequestService) Get(ctx context.Context, requestID int64) (*models.ServiceRequestView, error) {
	view, err := svc.reader.GetView(ctx, requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		logger.FromContext(ctx).Errorw("failed to get service request", "request_id", requestID, "err", err)
		return nil, err
	}
	return view, nil
}

// List returns one page of requests matching filter.
func (svc *ServiceRequestService) List(ctx context.Context, filter models.ServiceRequestFilter, page, size int) (models.Page[models.ServiceRequestView], error) {
	if err := checkPage(page, size); err != nil {
		return models.Page[models.ServiceRequestView]{}, err
	}

	items, total, err := svc.reader.List(ctx, filter, size, models.Offset(page, size))
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list service requests", "err", err)
		return models.Page[models.ServiceRequestView]{}, err
	}
	return models.NewPage(items, total, page, size), nil
}

// ListMine returns the actor's own requests in any state.
func (svc *ServiceRequestService) ListMine(ctx context.Context, actor models.Actor, page, size int) (models.Page[models.ServiceRequestView], error) {
	ownerID := actor.UserID
	return svc.List(ctx, models.ServiceRequestFilter{OwnerID: &ownerID}, page, size)
}
