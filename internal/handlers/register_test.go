package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/goodservices/internal/models"
	"github.com/sbilibin2017/goodservices/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := RegisterRequest{
		Username:    "john",
		Password:    "Secret123",
		DisplayName: "John",
		IDType:      "id_card",
		IDNumber:    "110101199001011234",
		Phone:       "13800138000",
	}
	input := services.RegisterInput{
		Username:    "john",
		Password:    "Secret123",
		DisplayName: "John",
		IDType:      "id_card",
		IDNumber:    "110101199001011234",
		Phone:       "13800138000",
	}

	tests := []struct {
		name         string
		rawBody      string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), input).
					Return(&models.UserDB{UserID: 7, Username: "john", DisplayName: "John", Phone: "13800138000", Role: models.RoleNormal}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "username taken",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), input).Return(nil, services.ErrUsernameTaken)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  services.ErrUsernameTaken.Error(),
		},
		{
			name: "weak password",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), input).Return(nil, services.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  services.ErrValidation.Error(),
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), input).Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
		{
			name:         "invalid json",
			rawBody:      "{invalid json}",
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			bodyBytes := []byte(tt.rawBody)
			if tt.rawBody == "" {
				bodyBytes, _ = json.Marshal(body)
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			NewRegisterHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp UserResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, int64(7), resp.ID)
				assert.Equal(t, "john", resp.Username)
				assert.Equal(t, models.RoleNormal, resp.Role)
				assert.NotContains(t, w.Body.String(), "password")
				return
			}

			var resp ErrorResponse
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedErr, resp.Error)
		})
	}
}
