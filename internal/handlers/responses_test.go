package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/goodservices/internal/models"
	"github.com/sbilibin2017/goodservices/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bob = models.Actor{UserID: 2, Username: "bob", Role: models.RoleNormal}

func sampleResponse() *models.ServiceResponseDB {
	return &models.ServiceResponseDB{
		ResponseID:  21,
		ResponderID: bob.UserID,
		RequestID:   10,
		Title:       "I can help",
		Files:       models.FileList{"cert.pdf"},
		State:       models.ResponsePending,
	}
}

func TestCreateServiceResponseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockResponseService(ctrl)
	handler := NewCreateServiceResponseHandler(svc)

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "created",
			body: `{"request_id":10,"title":"I can help","files":["cert.pdf"]}`,
			mockSetup: func() {
				svc.EXPECT().
					Respond(gomock.Any(), bob, int64(10), models.ServiceResponseFields{Title: "I can help", Files: models.FileList{"cert.pdf"}}).
					Return(sampleResponse(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "own request",
			body: `{"request_id":10,"title":"x"}`,
			mockSetup: func() {
				svc.EXPECT().Respond(gomock.Any(), bob, int64(10), gomock.Any()).Return(nil, services.ErrOwnRequest)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "request cancelled",
			body: `{"request_id":10,"title":"x"}`,
			mockSetup: func() {
				svc.EXPECT().Respond(gomock.Any(), bob, int64(10), gomock.Any()).Return(nil, services.ErrRequestCancelled)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "broken body",
			body:         `{"request_id":`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequest(http.MethodPost, "/responses", strings.NewReader(tt.body), &bob, ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateServiceResponseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockResponseService(ctrl)
	handler := NewUpdateServiceResponseHandler(svc)

	desc := "Weekends only"
	svc.EXPECT().
		Edit(gomock.Any(), bob, int64(21), models.ServiceResponsePatch{Description: &desc}).
		Return(sampleResponse(), nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(http.MethodPut, "/responses/21", strings.NewReader(`{"description":"Weekends only"}`), &bob, "21"))
	assert.Equal(t, http.StatusOK, rr.Code)

	svc.EXPECT().Edit(gomock.Any(), bob, int64(21), gomock.Any()).Return(nil, services.ErrResponseProcessed)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(http.MethodPut, "/responses/21", strings.NewReader(`{"title":"x"}`), &bob, "21"))
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, services.ErrResponseProcessed.Error(), decodeError(t, rr).Error)
}

func TestCancelAndDeleteServiceResponseHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockResponseService(ctrl)

	svc.EXPECT().Cancel(gomock.Any(), bob, int64(21)).Return(nil)
	rr := httptest.NewRecorder()
	NewCancelServiceResponseHandler(svc).ServeHTTP(rr, newRequest(http.MethodPut, "/responses/21/cancel", nil, &bob, "21"))
	assert.Equal(t, http.StatusOK, rr.Code)

	svc.EXPECT().Delete(gomock.Any(), alice, int64(21)).Return(services.ErrNotResponseOwner)
	rr = httptest.NewRecorder()
	NewDeleteServiceResponseHandler(svc).ServeHTTP(rr, newRequest(http.MethodDelete, "/responses/21", nil, &alice, "21"))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestGetServiceResponseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockResponseService(ctrl)
	svc.EXPECT().Get(gomock.Any(), int64(21)).Return(&models.ServiceResponseView{
		ServiceResponseDB: *sampleResponse(),
		ResponderName:     "Bob",
		ResponderPhone:    "13800000002",
	}, nil)
	svc.EXPECT().Get(gomock.Any(), int64(99)).Return(nil, services.ErrResponseNotFound)

	rr := httptest.NewRecorder()
	NewGetServiceResponseHandler(svc).ServeHTTP(rr, newRequest(http.MethodGet, "/responses/21", nil, &alice, "21"))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp ServiceResponseResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Bob", resp.ResponderName)
	assert.Equal(t, "13800000002", resp.ResponderPhone)
	assert.Equal(t, []string{"cert.pdf"}, resp.Files)

	rr = httptest.NewRecorder()
	NewGetServiceResponseHandler(svc).ServeHTTP(rr, newRequest(http.MethodGet, "/responses/99", nil, &alice, "99"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListServiceResponsesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockResponseService(ctrl)
	handler := NewListServiceResponsesHandler(svc)

	requestID := int64(10)
	state := models.ResponsePending
	svc.EXPECT().
		List(gomock.Any(), models.ServiceResponseFilter{RequestID: &requestID, State: &state}, 1, 10).
		Return(models.NewPage([]models.ServiceResponseView{{ServiceResponseDB: *sampleResponse()}}, 1, 1, 10), nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(http.MethodGet, "/responses?request_id=10&state=0", nil, &alice, ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp ServiceResponsePageResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(21), resp.Items[0].ID)
	assert.Equal(t, 1, resp.TotalPages)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(http.MethodGet, "/responses?responder_id=me", nil, &alice, ""))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
