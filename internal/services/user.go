package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/goodservices/internal/logger"
	"github.com/sbilibin2017/goodservices/internal/models"
	"github.com/sbilibin2017/goodservices/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// UserService serves the authenticated user's own account.
type UserService struct {
	reader UserReader
	writer UserWriter
}

func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{reader: reader, writer: writer}
}

// Me returns the actor's profile with request, response and completion counts.
func (svc *UserService) Me(ctx context.Context, actor models.Actor) (*models.UserProfile, error) {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		log.Errorw("failed to get user", "user_id", actor.UserID, "err", err)
		return nil, err
	}

	activity, err := svc.reader.GetActivity(ctx, actor.UserID)
	if err != nil {
		log.Errorw("failed to get user activity", "user_id", actor.UserID, "err", err)
		return nil, err
	}

	return &models.UserProfile{User: *user, Activity: *activity}, nil
}

// UpdateProfile changes the display name, phone or description of the actor.
func (svc *UserService) UpdateProfile(ctx context.Context, actor models.Actor, patch models.ProfilePatch) (*models.UserDB, error) {
	log := logger.FromContext(ctx)

	if patch.DisplayName != nil {
		if err := checkLength("display_name", *patch.DisplayName, 2, 50); err != nil {
			return nil, err
		}
	}
	if patch.Phone != nil {
		if err := checkPhone(*patch.Phone); err != nil {
			return nil, err
		}
	}

	user, err := svc.writer.UpdateProfile(ctx, actor.UserID, patch)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, userConflict(err)
		}
		log.Errorw("failed to update profile", "user_id", actor.UserID, "err", err)
		return nil, err
	}

	return user, nil
}

// ChangePassword replaces the actor's password after checking the old one.
func (svc *UserService) ChangePassword(ctx context.Context, actor models.Actor, oldPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Errorw("failed to get user", "user_id", actor.UserID, "err", err)
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		log.Warnw("wrong old password", "user_id", actor.UserID)
		return ErrWrongPassword
	}
	if err := checkPassword(newPassword); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, actor.UserID, string(hashedPassword)); err != nil {
		log.Errorw("failed to update password", "user_id", actor.UserID, "err", err)
		return err
	}
	return nil
}
