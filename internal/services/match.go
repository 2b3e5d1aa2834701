package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/goodservices/internal/logger"
	"github.com/sbilibin2017/goodservices/internal/models"
	"github.com/sbilibin2017/goodservices/internal/repositories"
)

//go:generate mockgen -source=match.go -destination=mock_match.go -package=services

// AcceptRecordWriter stores accept records.
type AcceptRecordWriter interface {
	ExistsForRequest(ctx context.Context, requestID int64) (bool, error)
	Create(ctx context.Context, record models.AcceptRecordDB) (*models.AcceptRecordDB, error)
}

// MatchService lets a publisher accept or reject the responses to their request.
type MatchService struct {
	requests  ServiceRequestReader
	responses ServiceResponseReader
	writer    ServiceResponseWriter
	accepts   AcceptRecordWriter
	events    MatchEventPublisher
}

func NewMatchService(
	requests ServiceRequestReader,
	responses ServiceResponseReader,
	writer ServiceResponseWriter,
	accepts AcceptRecordWriter,
	events MatchEventPublisher,
) *MatchService {
	return &MatchService{
		requests:  requests,
		responses: responses,
		writer:    writer,
		accepts:   accepts,
		events:    events,
	}
}

// decide runs the checks shared by accept and reject. The parent request row is
// locked first so concurrent decisions on sibling responses serialize.
func (svc *MatchService) decide(ctx context.Context, actor models.Actor, responseID int64) (*models.ServiceResponseDB, *models.ServiceRequestDB, error) {
	log := logger.FromContext(ctx)

	resp, err := svc.responses.GetByID(ctx, responseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, ErrResponseNotFound
		}
		log.Errorw("failed to get service response", "response_id", responseID, "err", err)
		return nil, nil, err
	}

	req, err := svc.requests.GetByIDForUpdate(ctx, resp.RequestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, ErrRequestNotFound
		}
		log.Errorw("failed to get service request", "request_id", resp.RequestID, "err", err)
		return nil, nil, err
	}
	if req.OwnerID != actor.UserID {
		log.Warnw("match attempted by non-publisher", "response_id", responseID, "actor", actor.UserID)
		return nil, nil, ErrNotPublisher
	}

	resp, err = svc.responses.GetByIDForUpdate(ctx, responseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, ErrResponseNotFound
		}
		log.Errorw("failed to lock service response", "response_id", responseID, "err", err)
		return nil, nil, err
	}
	if resp.State != models.ResponsePending {
		log.Warnw("response already processed", "response_id", responseID, "state", resp.State)
		return nil, nil, ErrResponseProcessed
	}

	return resp, req, nil
}

// Accept marks the response accepted and writes the request's single accept record.
func (svc *MatchService) Accept(ctx context.Context, actor models.Actor, responseID int64) (*models.AcceptRecordDB, error) {
	log := logger.FromContext(ctx)

	resp, req, err := svc.decide(ctx, actor, responseID)
	if err != nil {
		return nil, err
	}

	matched, err := svc.accepts.ExistsForRequest(ctx, req.RequestID)
	if err != nil {
		log.Errorw("failed to check accept records", "request_id", req.RequestID, "err", err)
		return nil, err
	}
	if matched {
		log.Warnw("request already matched", "request_id", req.RequestID, "response_id", responseID)
		return nil, ErrRequestAlreadyMatched
	}

	if err := svc.writer.SetState(ctx, responseID, models.ResponseAccepted); err != nil {
		log.Errorw("failed to accept service response", "response_id", responseID, "err", err)
		return nil, err
	}

	record, err := svc.accepts.Create(ctx, models.AcceptRecordDB{
		ResponseID:  resp.ResponseID,
		RequestID:   req.RequestID,
		PublisherID: req.OwnerID,
		ResponderID: resp.ResponderID,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			log.Warnw("concurrent accept lost", "request_id", req.RequestID, "response_id", responseID)
			return nil, ErrRequestAlreadyMatched
		}
		log.Errorw("failed to create accept record", "response_id", responseID, "err", err)
		return nil, err
	}

	svc.events.Publish(ctx, models.MatchEvent{
		Type:        models.EventResponseAccepted,
		RequestID:   req.RequestID,
		ResponseID:  resp.ResponseID,
		PublisherID: req.OwnerID,
		ResponderID: resp.ResponderID,
	})
	return record, nil
}

// Reject marks a pending response rejected. No accept record is written.
func (svc *MatchService) Reject(ctx context.Context, actor models.Actor, responseID int64) error {
	resp, req, err := svc.decide(ctx, actor, responseID)
	if err != nil {
		return err
	}

	if err := svc.writer.SetState(ctx, responseID, models.ResponseRejected); err != nil {
		logger.FromContext(ctx).Errorw("failed to reject service response", "response_id", responseID, "err", err)
		return err
	}

	svc.events.Publish(ctx, models.MatchEvent{
		Type:        models.EventResponseRejected,
		RequestID:   req.RequestID,
		ResponseID:  resp.ResponseID,
		PublisherID: req.OwnerID,
		ResponderID: resp.ResponderID,
	})
	return nil
}
