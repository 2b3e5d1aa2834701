package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/goodservices/internal/models"
	"github.com/sbilibin2017/goodservices/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() *models.ServiceRequestDB {
	return &models.ServiceRequestDB{
		RequestID:     10,
		OwnerID:       alice.UserID,
		Title:         "Fix sink",
		ServiceTypeID: 1,
		CityID:        2,
		BeginDate:     time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		State:         models.RequestPublished,
	}
}

func TestCreateServiceRequestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockRequestService(ctrl)
	handler := NewCreateServiceRequestHandler(svc)

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().Publish(gomock.Any(), alice, models.ServiceRequestFields{
			Title:         "Fix sink",
			ServiceTypeID: 1,
			CityID:        2,
			BeginDate:     time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
			Files:         models.FileList{"a.jpg"},
		}).Return(sampleRequest(), nil)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodPost, "/requests", jsonBody(t, CreateServiceRequestRequest{
			Title:         "Fix sink",
			ServiceTypeID: 1,
			CityID:        2,
			BeginDate:     "2025-07-01",
			Files:         []string{"a.jpg"},
		}), &alice, ""))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp ServiceRequestResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, int64(10), resp.ID)
		assert.Equal(t, "2025-07-01", resp.BeginDate)
		assert.Equal(t, []string{}, resp.Files)
	})

	t.Run("malformed begin date", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodPost, "/requests", jsonBody(t, CreateServiceRequestRequest{
			Title: "x", ServiceTypeID: 1, CityID: 1, BeginDate: "01/07/2025",
		}), &alice, ""))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr).Error, "begin_date")
	})

	t.Run("unknown city", func(t *testing.T) {
		svc.EXPECT().Publish(gomock.Any(), alice, gomock.Any()).Return(nil, services.ErrUnknownCity)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodPost, "/requests", jsonBody(t, CreateServiceRequestRequest{
			Title: "x", ServiceTypeID: 1, CityID: 99, BeginDate: "2025-07-01",
		}), &alice, ""))

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, "REFERENCE", decodeError(t, rr).Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodPost, "/requests", strings.NewReader(`{}`), nil, ""))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUpdateServiceRequestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockRequestService(ctrl)
	handler := NewUpdateServiceRequestHandler(svc)

	t.Run("partial patch", func(t *testing.T) {
		title := "Fix kitchen sink"
		begin := time.Date(2025, time.August, 2, 0, 0, 0, 0, time.UTC)
		files := models.FileList{}
		svc.EXPECT().Edit(gomock.Any(), alice, int64(10), models.ServiceRequestPatch{
			Title:     &title,
			BeginDate: &begin,
			Files:     &files,
		}).Return(sampleRequest(), nil)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodPut, "/requests/10",
			strings.NewReader(`{"title":"Fix kitchen sink","begin_date":"2025-08-02","files":[]}`), &alice, "10"))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("has responses", func(t *testing.T) {
		svc.EXPECT().Edit(gomock.Any(), alice, int64(10), gomock.Any()).Return(nil, services.ErrRequestHasResponses)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodPut, "/requests/10", strings.NewReader(`{"title":"x"}`), &alice, "10"))

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, services.ErrRequestHasResponses.Error(), decodeError(t, rr).Error)
	})

	t.Run("bad id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodPut, "/requests/abc", strings.NewReader(`{}`), &alice, "abc"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("bad begin date", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodPut, "/requests/10", strings.NewReader(`{"begin_date":"tomorrow"}`), &alice, "10"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCancelAndDeleteServiceRequestHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockRequestService(ctrl)

	svc.EXPECT().Cancel(gomock.Any(), alice, int64(10)).Return(nil)
	rr := httptest.NewRecorder()
	NewCancelServiceRequestHandler(svc).ServeHTTP(rr, newRequest(http.MethodPut, "/requests/10/cancel", nil, &alice, "10"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Service request cancelled")

	svc.EXPECT().Delete(gomock.Any(), alice, int64(10)).Return(services.ErrNotRequestOwner)
	rr = httptest.NewRecorder()
	NewDeleteServiceRequestHandler(svc).ServeHTTP(rr, newRequest(http.MethodDelete, "/requests/10", nil, &alice, "10"))
	assert.Equal(t, http.StatusForbidden, rr.Code)

	svc.EXPECT().Delete(gomock.Any(), alice, int64(11)).Return(services.ErrRequestNotFound)
	rr = httptest.NewRecorder()
	NewDeleteServiceRequestHandler(svc).ServeHTTP(rr, newRequest(http.MethodDelete, "/requests/11", nil, &alice, "11"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetServiceRequestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockRequestService(ctrl)
	svc.EXPECT().Get(gomock.Any(), int64(10)).Return(&models.ServiceRequestView{
		ServiceRequestDB: *sampleRequest(),
		OwnerName:        "Alice",
		ServiceTypeName:  "Plumbing",
		CityName:         "Shanghai",
	}, nil)

	rr := httptest.NewRecorder()
	NewGetServiceRequestHandler(svc).ServeHTTP(rr, newRequest(http.MethodGet, "/requests/10", nil, &alice, "10"))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp ServiceRequestResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Alice", resp.OwnerName)
	assert.Equal(t, "Plumbing", resp.ServiceTypeName)
	assert.Equal(t, "Shanghai", resp.CityName)
}

func TestListServiceRequestsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockRequestService(ctrl)
	handler := NewListServiceRequestsHandler(svc)

	t.Run("filters and page", func(t *testing.T) {
		city := int64(2)
		state := models.RequestCancelled
		svc.EXPECT().
			List(gomock.Any(), models.ServiceRequestFilter{CityID: &city, State: &state}, 2, 2).
			Return(models.NewPage([]models.ServiceRequestView{{ServiceRequestDB: *sampleRequest()}}, 5, 2, 2), nil)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodGet, "/requests?city_id=2&state=-1&page=2&size=2", nil, &alice, ""))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp ServiceRequestPageResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp.Items, 1)
		assert.Equal(t, 5, resp.Total)
		assert.Equal(t, 3, resp.TotalPages)
	})

	t.Run("bad filter", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodGet, "/requests?city_id=beijing", nil, &alice, ""))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("service rejects page size", func(t *testing.T) {
		svc.EXPECT().List(gomock.Any(), models.ServiceRequestFilter{}, 1, 500).Return(models.Page[models.ServiceRequestView]{}, services.ErrValidation)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodGet, "/requests?size=500", nil, &alice, ""))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListMyServiceRequestsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockRequestService(ctrl)
	svc.EXPECT().ListMine(gomock.Any(), alice, 1, 10).Return(models.NewPage[models.ServiceRequestView](nil, 0, 1, 10), nil)

	rr := httptest.NewRecorder()
	NewListMyServiceRequestsHandler(svc).ServeHTTP(rr, newRequest(http.MethodGet, "/requests/my", nil, &alice, ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"items":[],"total":0,"page":1,"size":10,"total_pages":0}`, rr.Body.String())
}
