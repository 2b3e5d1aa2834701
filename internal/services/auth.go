package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/goodservices/internal/logger"
	"github.com/sbilibin2017/goodservices/internal/models"
	"github.com/sbilibin2017/goodservices/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID int64) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetActivity(ctx context.Context, userID int64) (*models.UserActivity, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user models.NewUser) (*models.UserDB, error)
	UpdateProfile(ctx context.Context, userID int64, patch models.ProfilePatch) (*models.UserDB, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64, username, role string) (string, error)
}

// LoginAttemptStore counts consecutive failed logins per username.
type LoginAttemptStore interface {
	Failures(ctx context.Context, username string) (int64, error)
	RegisterFailure(ctx context.Context, username string) (int64, error)
	Reset(ctx context.Context, username string) error
}

// RegisterInput holds the raw registration fields.
type RegisterInput struct {
	Username    string
	Password    string
	DisplayName string
	IDType      string
	IDNumber    string
	Phone       string
	Description *string
}

// AuthService handles registration and login.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	jwt         JWTGenerator
	attempts    LoginAttemptStore
	maxAttempts int64
}

// NewAuthService creates a new AuthService instance.
// Login throttling is disabled when attempts is nil or maxAttempts is not positive.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, attempts LoginAttemptStore, maxAttempts int) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		attempts:    attempts,
		maxAttempts: int64(maxAttempts),
	}
}

func validateRegister(in RegisterInput) error {
	if err := checkLength("username", in.Username, 3, 50); err != nil {
		return err
	}
	if strings.TrimSpace(in.IDType) == "" {
		return validationError("id_type", "must not be empty")
	}
	if err := checkLength("id_number", in.IDNumber, 6, 50); err != nil {
		return err
	}
	if err := checkLength("display_name", in.DisplayName, 2, 50); err != nil {
		return err
	}
	if err := checkPassword(in.Password); err != nil {
		return err
	}
	return checkPhone(in.Phone)
}

// Register validates and stores a new user with the normal role.
func (svc *AuthService) Register(ctx context.Context, in RegisterInput) (*models.UserDB, error) {
	log := logger.FromContext(ctx)

	if err := validateRegister(in); err != nil {
		log.Warnw("invalid registration", "username", in.Username, "err", err)
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Create(ctx, models.NewUser{
		Username:     in.Username,
		DisplayName:  in.DisplayName,
		PasswordHash: string(hashedPassword),
		IDType:       in.IDType,
		IDNumber:     in.IDNumber,
		Phone:        in.Phone,
		Description:  in.Description,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			log.Warnw("user already exists", "username", in.Username, "err", err)
			return nil, userConflict(err)
		}
		log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

func (svc *AuthService) throttled() bool {
	return svc.attempts != nil && svc.maxAttempts > 0
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.UserDB, error) {
	log := logger.FromContext(ctx)

	if svc.throttled() {
		failures, err := svc.attempts.Failures(ctx, username)
		if err != nil {
			log.Errorw("failed to read login attempts", "username", username, "err", err)
		} else if failures >= svc.maxAttempts {
			log.Warnw("login locked", "username", username, "failures", failures)
			return "", nil, ErrTooManyAttempts
		}
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		log.Warnw("invalid credentials", "username", username)
		svc.registerFailure(ctx, username)
		return "", nil, ErrInvalidCredentials
	}

	if svc.throttled() {
		if err := svc.attempts.Reset(ctx, username); err != nil {
			log.Errorw("failed to reset login attempts", "username", username, "err", err)
		}
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username, user.Role)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

func (svc *AuthService) registerFailure(ctx context.Context, username string) {
	if !svc.throttled() {
		return
	}
	if _, err := svc.attempts.RegisterFailure(ctx, username); err != nil {
		logger.FromContext(ctx).Errorw("failed to register login failure", "username", username, "err", err)
	}
}
