package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/goodservices/internal/models"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=handlers

// ProfileService defines the account operations of the current user.
type ProfileService interface {
	Me(ctx context.Context, actor models.Actor) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, actor models.Actor, patch models.ProfilePatch) (*models.UserDB, error)
	ChangePassword(ctx context.Context, actor models.Actor, oldPassword, newPassword string) error
}

// UserResponse represents a user account
// swagger:model UserResponse
type UserResponse struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	Phone       string     `json:"phone"`
	IDType      string     `json:"id_type"`
	Role        string     `json:"role"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// MeResponse represents the current user with activity counts
// swagger:model MeResponse
type MeResponse struct {
	UserResponse
	RequestsCount  int `json:"requests_count"`
	ResponsesCount int `json:"responses_count"`
	CompletedCount int `json:"completed_count"`
}

// UpdateProfileRequest represents a partial profile update
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ChangePasswordRequest represents a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// required: true
	OldPassword string `json:"old_password"`
	// required: true
	NewPassword string `json:"new_password"`
}

func toUserResponse(u *models.UserDB) UserResponse {
	return UserResponse{
		ID:          u.UserID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Phone:       u.Phone,
		IDType:      u.IDType,
		Role:        u.Role,
		Description: u.Description,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// NewMeHandler returns the current user's profile.
// @Summary Current user
// @Description Returns the profile of the authenticated user with request, response and completion counts
// @Tags users
// @Produce json
// @Success 200 {object} handlers.MeResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/me [get]
// @Security BearerAuth
func NewMeHandler(svc ProfileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFrom(w, r)
		if !ok {
			return
		}

		profile, err := svc.Me(r.Context(), actor)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MeResponse{
			UserResponse:   toUserResponse(&profile.User),
			RequestsCount:  profile.Activity.RequestsCount,
			ResponsesCount: profile.Activity.ResponsesCount,
			CompletedCount: profile.Activity.CompletedCount,
		})
	}
}

// NewUpdateProfileHandler updates the current user's profile.
// @Summary Update profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.UpdateProfileRequest true "Profile fields to change"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Phone already registered"
// @Router /users/me [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFrom(w, r)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		user, err := svc.UpdateProfile(r.Context(), actor, models.ProfilePatch{
			DisplayName: req.DisplayName,
			Phone:       req.Phone,
			Description: req.Description,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(user))
	}
}

// NewChangePasswordHandler changes the current user's password.
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Wrong old password or weak new password"
// @Router /users/me/password [put]
// @Security BearerAuth
func NewChangePasswordHandler(svc ProfileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFrom(w, r)
		if !ok {
			return
		}

		var req ChangePasswordRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		if err := svc.ChangePassword(r.Context(), actor, req.OldPassword, req.NewPassword); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password updated successfully"})
	}
}
