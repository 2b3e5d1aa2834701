package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/goodservices/internal/models"
	"github.com/sbilibin2017/goodservices/internal/repositories"
	"github.com/sbilibin2017/goodservices/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var alice = models.Actor{UserID: 1, Username: "alice", Role: models.RoleNormal}

func ptr[T any](v T) *T { return &v }

func TestUserService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewUserService(mockReader, services.NewMockUserWriter(ctrl))

	mockReader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.UserDB{UserID: 1, Username: "alice"}, nil)
	mockReader.EXPECT().GetActivity(gomock.Any(), int64(1)).Return(&models.UserActivity{RequestsCount: 2, ResponsesCount: 3, CompletedCount: 1}, nil)

	profile, err := svc.Me(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.User.Username)
	assert.Equal(t, 2, profile.Activity.RequestsCount)
	assert.Equal(t, 3, profile.Activity.ResponsesCount)
	assert.Equal(t, 1, profile.Activity.CompletedCount)
}

func TestUserService_MeNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewUserService(mockReader, services.NewMockUserWriter(ctrl))

	mockReader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, repositories.ErrNotFound)

	_, err := svc.Me(context.Background(), alice)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	tests := []struct {
		name      string
		patch     models.ProfilePatch
		callsDB   bool
		writerErr error
		wantErr   error
	}{
		{
			name:    "update display name",
			patch:   models.ProfilePatch{DisplayName: ptr("Alice B")},
			callsDB: true,
		},
		{
			name:    "display name too short",
			patch:   models.ProfilePatch{DisplayName: ptr("A")},
			wantErr: services.ErrValidation,
		},
		{
			name:    "bad phone",
			patch:   models.ProfilePatch{Phone: ptr("555")},
			wantErr: services.ErrValidation,
		},
		{
			name:      "phone taken",
			patch:     models.ProfilePatch{Phone: ptr("13900139000")},
			callsDB:   true,
			writerErr: duplicateErr(repositories.ConstraintPhone),
			wantErr:   services.ErrPhoneTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockWriter := services.NewMockUserWriter(ctrl)
			svc := services.NewUserService(services.NewMockUserReader(ctrl), mockWriter)

			if tt.callsDB {
				var out *models.UserDB
				if tt.writerErr == nil {
					out = &models.UserDB{UserID: 1, DisplayName: "Alice B"}
				}
				mockWriter.EXPECT().UpdateProfile(gomock.Any(), int64(1), tt.patch).Return(out, tt.writerErr)
			}

			user, err := svc.UpdateProfile(context.Background(), alice, tt.patch)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Alice B", user.DisplayName)
		})
	}
}

func TestUserService_ChangePassword(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("Secret123"), bcrypt.MinCost)
	stored := &models.UserDB{UserID: 1, PasswordHash: string(hashed)}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		mockReader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored, nil)
		mockWriter.EXPECT().UpdatePassword(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("NewPass45")))
				return nil
			})

		assert.NoError(t, svc.ChangePassword(context.Background(), alice, "Secret123", "NewPass45"))
	})

	t.Run("wrong old password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		svc := services.NewUserService(mockReader, services.NewMockUserWriter(ctrl))

		mockReader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored, nil)

		err := svc.ChangePassword(context.Background(), alice, "Nope1234", "NewPass45")
		assert.ErrorIs(t, err, services.ErrWrongPassword)
	})

	t.Run("weak new password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		svc := services.NewUserService(mockReader, services.NewMockUserWriter(ctrl))

		mockReader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored, nil)

		err := svc.ChangePassword(context.Background(), alice, "Secret123", "short")
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("writer error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		mockReader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored, nil)
		mockWriter.EXPECT().UpdatePassword(gomock.Any(), int64(1), gomock.Any()).Return(errors.New("db error"))

		assert.EqualError(t, svc.ChangePassword(context.Background(), alice, "Secret123", "NewPass45"), "db error")
	})
}
