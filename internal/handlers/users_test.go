package handlers

import (
	"encoding/json"
	"errors"
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

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockProfileService(ctrl)
	svc.EXPECT().Me(gomock.Any(), alice).Return(&models.UserProfile{
		User:     models.UserDB{UserID: 1, Username: "alice", DisplayName: "Alice", PasswordHash: "$2a$10$secret"},
		Activity: models.UserActivity{RequestsCount: 3, ResponsesCount: 1, CompletedCount: 2},
	}, nil)

	rr := httptest.NewRecorder()
	NewMeHandler(svc).ServeHTTP(rr, newRequest(http.MethodGet, "/users/me", nil, &alice, ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret")

	var resp MeResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, 3, resp.RequestsCount)
	assert.Equal(t, 1, resp.ResponsesCount)
	assert.Equal(t, 2, resp.CompletedCount)
}

func TestMeHandler_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rr := httptest.NewRecorder()
	NewMeHandler(NewMockProfileService(ctrl)).ServeHTTP(rr, newRequest(http.MethodGet, "/users/me", nil, nil, ""))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockProfileService(ctrl)
	handler := NewUpdateProfileHandler(svc)

	phone := "13900000000"
	svc.EXPECT().
		UpdateProfile(gomock.Any(), alice, models.ProfilePatch{Phone: &phone}).
		Return(&models.UserDB{UserID: 1, Username: "alice", Phone: phone}, nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(http.MethodPut, "/users/me", strings.NewReader(`{"phone":"13900000000"}`), &alice, ""))
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp UserResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, phone, resp.Phone)

	svc.EXPECT().UpdateProfile(gomock.Any(), alice, gomock.Any()).Return(nil, services.ErrPhoneTaken)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(http.MethodPut, "/users/me", strings.NewReader(`{"phone":"13800000002"}`), &alice, ""))
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestChangePasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockProfileService(ctrl)
	handler := NewChangePasswordHandler(svc)

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "changed", err: nil, expectedCode: http.StatusOK},
		{name: "wrong old password", err: services.ErrWrongPassword, expectedCode: http.StatusBadRequest},
		{name: "store failure", err: errors.New("db down"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc.EXPECT().ChangePassword(gomock.Any(), alice, "Old12345", "New12345").Return(tt.err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequest(http.MethodPut, "/users/me/password",
				strings.NewReader(`{"old_password":"Old12345","new_password":"New12345"}`), &alice, ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
