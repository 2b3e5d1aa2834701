package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/goodservices/internal/models"
	"github.com/sbilibin2017/goodservices/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Login name, 3-50 characters
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// At least 6 characters with 2 digits and mixed case
	// required: true
	// default: Secret123
	Password string `json:"password"`

	// Name shown to other users, 2-50 characters
	// required: true
	// default: John
	DisplayName string `json:"display_name"`

	// Identity document type
	// required: true
	// default: id_card
	IDType string `json:"id_type"`

	// Identity document number, 6-50 characters
	// required: true
	// default: 110101199001011234
	IDNumber string `json:"id_number"`

	// Mobile phone number
	// required: true
	// default: 13800138000
	Phone string `json:"phone"`

	// Optional self description
	Description *string `json:"description,omitempty"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Username, phone and id number must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.UserResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Username, phone or id number already exists"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		user, err := svc.Register(r.Context(), services.RegisterInput{
			Username:    req.Username,
			Password:    req.Password,
			DisplayName: req.DisplayName,
			IDType:      req.IDType,
			IDNumber:    req.IDNumber,
			Phone:       req.Phone,
			Description: req.Description,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, toUserResponse(user))
	}
}
