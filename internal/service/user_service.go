// Package service orchestrates validation, authorization and persistence for
// the application's domain operations.
package service

import (
	"context"

	"recipebox/internal/models"
	"recipebox/internal/repository"
	"recipebox/internal/validation"
)

// UserService handles profile reads and partial profile updates.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateProfileInput carries the fields of a profile update. Nil fields were
// absent from the payload and keep their prior values.
type UpdateProfileInput struct {
	UserID   uint
	Username *string
	Email    *string
	Bio      *string
}

// GetProfile returns the user's own record.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies a partial update to the user's record. Present fields
// are re-validated against registration bounds; a uniqueness conflict on
// username or email surfaces as a DuplicateField error from the store.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	if err := validation.ValidateProfileUpdate(validation.ProfilePayload{
		Username: in.Username,
		Email:    in.Email,
		Bio:      in.Bio,
	}); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
