package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/goodservices/internal/models"
	"github.com/sbilibin2017/goodservices/internal/repositories"
	"github.com/sbilibin2017/goodservices/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var carol = models.Actor{UserID: 3, Username: "carol", Role: models.RoleNormal}

// matchStore keeps requests, responses and accept records in memory.
type matchStore struct {
	requests  map[int64]*models.ServiceRequestDB
	responses map[int64]*models.ServiceResponseDB
	records   []models.AcceptRecordDB
	events    []models.MatchEvent
}

func newMatchStore() *matchStore {
	return &matchStore{
		requests:  map[int64]*models.ServiceRequestDB{},
		responses: map[int64]*models.ServiceResponseDB{},
	}
}

type storeRequests struct{ *matchStore }

func (s storeRequests) GetByID(_ context.Context, id int64) (*models.ServiceRequestDB, error) {
	req, ok := s.requests[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *req
	return &cp, nil
}

func (s storeRequests) GetByIDForUpdate(ctx context.Context, id int64) (*models.ServiceRequestDB, error) {
	return s.GetByID(ctx, id)
}

func (s storeRequests) GetView(context.Context, int64) (*models.ServiceRequestView, error) {
	return nil, errors.New("not implemented")
}

func (s storeRequests) List(context.Context, models.ServiceRequestFilter, int, int) ([]models.ServiceRequestView, int, error) {
	return nil, 0, errors.New("not implemented")
}

type storeResponses struct{ *matchStore }

func (s storeResponses) GetByID(_ context.Context, id int64) (*models.ServiceResponseDB, error) {
	resp, ok := s.responses[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *resp
	return &cp, nil
}

func (s storeResponses) GetByIDForUpdate(ctx context.Context, id int64) (*models.ServiceResponseDB, error) {
	return s.GetByID(ctx, id)
}

func (s storeResponses) GetView(context.Context, int64) (*models.ServiceResponseView, error) {
	return nil, errors.New("not implemented")
}

func (s storeResponses) List(context.Context, models.ServiceResponseFilter, int, int) ([]models.ServiceResponseView, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (s storeResponses) Create(context.Context, int64, int64, models.ServiceResponseFields) (*models.ServiceResponseDB, error) {
	return nil, errors.New("not implemented")
}

func (s storeResponses) Update(context.Context, int64, models.ServiceResponsePatch) (*models.ServiceResponseDB, error) {
	return nil, errors.New("not implemented")
}

func (s storeResponses) SetState(_ context.Context, id int64, state int) error {
	resp, ok := s.responses[id]
	if !ok {
		return repositories.ErrNotFound
	}
	resp.State = state
	return nil
}

type storeAccepts struct{ *matchStore }

func (s storeAccepts) ExistsForRequest(_ context.Context, requestID int64) (bool, error) {
	for _, r := range s.records {
		if r.RequestID == requestID {
			return true, nil
		}
	}
	return false, nil
}

func (s storeAccepts) Create(ctx context.Context, record models.AcceptRecordDB) (*models.AcceptRecordDB, error) {
	if ok, _ := s.ExistsForRequest(ctx, record.RequestID); ok {
		return nil, fmt.Errorf("%w: %s", repositories.ErrDuplicate, repositories.ConstraintAcceptRequest)
	}
	record.AcceptID = int64(len(s.records) + 1)
	s.records = append(s.records, record)
	return &record, nil
}

type storeEvents struct{ *matchStore }

func (s storeEvents) Publish(_ context.Context, event models.MatchEvent) {
	s.events = append(s.events, event)
}

func (s *matchStore) service() *services.MatchService {
	return services.NewMatchService(storeRequests{s}, storeResponses{s}, storeResponses{s}, storeAccepts{s}, storeEvents{s})
}

// seed stores request 10 owned by alice with pending responses 21 (bob) and 22 (carol).
func (s *matchStore) seed() {
	s.requests[10] = &models.ServiceRequestDB{RequestID: 10, OwnerID: alice.UserID, ServiceTypeID: 1, CityID: 1}
	s.responses[21] = &models.ServiceResponseDB{ResponseID: 21, RequestID: 10, ResponderID: bob.UserID}
	s.responses[22] = &models.ServiceResponseDB{ResponseID: 22, RequestID: 10, ResponderID: carol.UserID}
}

func TestMatchService_AcceptOnePerRequest(t *testing.T) {
	store := newMatchStore()
	store.seed()
	svc := store.service()

	record, err := svc.Accept(context.Background(), alice, 21)
	require.NoError(t, err)
	assert.Equal(t, int64(21), record.ResponseID)
	assert.Equal(t, int64(10), record.RequestID)
	assert.Equal(t, alice.UserID, record.PublisherID)
	assert.Equal(t, bob.UserID, record.ResponderID)
	assert.Equal(t, models.ResponseAccepted, store.responses[21].State)
	assert.Len(t, store.records, 1)

	_, err = svc.Accept(context.Background(), alice, 22)
	assert.ErrorIs(t, err, services.ErrConflict)
	assert.ErrorIs(t, err, services.ErrRequestAlreadyMatched)
	assert.Equal(t, models.ResponsePending, store.responses[22].State)
	assert.Len(t, store.records, 1)

	require.Len(t, store.events, 1)
	assert.Equal(t, models.EventResponseAccepted, store.events[0].Type)
	assert.Equal(t, int64(21), store.events[0].ResponseID)
}

func TestMatchService_OnlyPublisherDecides(t *testing.T) {
	store := newMatchStore()
	store.seed()
	svc := store.service()

	_, err := svc.Accept(context.Background(), bob, 21)
	assert.ErrorIs(t, err, services.ErrForbidden)

	err = svc.Reject(context.Background(), carol, 21)
	assert.ErrorIs(t, err, services.ErrNotPublisher)

	assert.Equal(t, models.ResponsePending, store.responses[21].State)
	assert.Empty(t, store.records)
	assert.Empty(t, store.events)
}

func TestMatchService_Reject(t *testing.T) {
	store := newMatchStore()
	store.seed()
	svc := store.service()

	require.NoError(t, svc.Reject(context.Background(), alice, 22))
	assert.Equal(t, models.ResponseRejected, store.responses[22].State)
	assert.Empty(t, store.records)

	require.Len(t, store.events, 1)
	assert.Equal(t, models.EventResponseRejected, store.events[0].Type)

	// a rejected sibling does not block accepting another response
	_, err := svc.Accept(context.Background(), alice, 21)
	assert.NoError(t, err)
}

func TestMatchService_TerminalStates(t *testing.T) {
	for _, state := range []int{models.ResponseAccepted, models.ResponseRejected, models.ResponseCancelled} {
		t.Run(fmt.Sprintf("state %d", state), func(t *testing.T) {
			store := newMatchStore()
			store.seed()
			store.responses[21].State = state
			svc := store.service()

			_, err := svc.Accept(context.Background(), alice, 21)
			assert.ErrorIs(t, err, services.ErrResponseProcessed)

			err = svc.Reject(context.Background(), alice, 21)
			assert.ErrorIs(t, err, services.ErrResponseProcessed)

			assert.Equal(t, state, store.responses[21].State)
			assert.Empty(t, store.records)
		})
	}
}

func TestMatchService_NotFound(t *testing.T) {
	store := newMatchStore()
	store.seed()
	svc := store.service()

	_, err := svc.Accept(context.Background(), alice, 99)
	assert.ErrorIs(t, err, services.ErrResponseNotFound)

	err = svc.Reject(context.Background(), alice, 99)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestMatchService_AcceptLockOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requests := services.NewMockServiceRequestReader(ctrl)
	responses := services.NewMockServiceResponseReader(ctrl)
	writer := services.NewMockServiceResponseWriter(ctrl)
	accepts := services.NewMockAcceptRecordWriter(ctrl)
	events := services.NewMockMatchEventPublisher(ctrl)
	svc := services.NewMatchService(requests, responses, writer, accepts, events)

	resp := &models.ServiceResponseDB{ResponseID: 21, RequestID: 10, ResponderID: bob.UserID}
	req := &models.ServiceRequestDB{RequestID: 10, OwnerID: alice.UserID}
	record := models.AcceptRecordDB{ResponseID: 21, RequestID: 10, PublisherID: alice.UserID, ResponderID: bob.UserID}

	gomock.InOrder(
		responses.EXPECT().GetByID(gomock.Any(), int64(21)).Return(resp, nil),
		requests.EXPECT().GetByIDForUpdate(gomock.Any(), int64(10)).Return(req, nil),
		responses.EXPECT().GetByIDForUpdate(gomock.Any(), int64(21)).Return(resp, nil),
		accepts.EXPECT().ExistsForRequest(gomock.Any(), int64(10)).Return(false, nil),
		writer.EXPECT().SetState(gomock.Any(), int64(21), models.ResponseAccepted).Return(nil),
		accepts.EXPECT().Create(gomock.Any(), record).Return(nil, fmt.Errorf("%w: race", repositories.ErrDuplicate)),
	)

	_, err := svc.Accept(context.Background(), alice, 21)
	assert.ErrorIs(t, err, services.ErrRequestAlreadyMatched)
}

func TestMatchService_AcceptStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requests := services.NewMockServiceRequestReader(ctrl)
	responses := services.NewMockServiceResponseReader(ctrl)
	writer := services.NewMockServiceResponseWriter(ctrl)
	accepts := services.NewMockAcceptRecordWriter(ctrl)
	svc := services.NewMatchService(requests, responses, writer, accepts, services.NewMockMatchEventPublisher(ctrl))

	resp := &models.ServiceResponseDB{ResponseID: 21, RequestID: 10, ResponderID: bob.UserID}
	responses.EXPECT().GetByID(gomock.Any(), int64(21)).Return(resp, nil)
	requests.EXPECT().GetByIDForUpdate(gomock.Any(), int64(10)).Return(&models.ServiceRequestDB{RequestID: 10, OwnerID: alice.UserID}, nil)
	responses.EXPECT().GetByIDForUpdate(gomock.Any(), int64(21)).Return(resp, nil)
	accepts.EXPECT().ExistsForRequest(gomock.Any(), int64(10)).Return(false, errors.New("db error"))

	_, err := svc.Accept(context.Background(), alice, 21)
	assert.EqualError(t, err, "db error")
}
