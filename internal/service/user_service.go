// Package service implements the application's business logic on top of the
// repositories: authorization checks, input validation and the listing
// envelopes the HTTP layer returns.
package service

import (
	"context"
	"time"

	"inkwell/internal/authz"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/token"
	"inkwell/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService carries the user lifecycle operations.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateUserInput is the allow-listed set of fields a user may change about
// itself. Anything else in a request body (notably isAdmin) is discarded
// before it gets here.
type UpdateUserInput struct {
	Username       string
	Email          string
	Password       string
	ProfilePicture string
}

// UserListing is the paginated admin listing envelope.
type UserListing struct {
	Users          []models.User `json:"users"`
	TotalUsers     int64         `json:"totalUsers"`
	LastMonthUsers int64         `json:"lastMonthUsers"`
}

// Get returns a single user. Readable by the user itself or any admin.
func (s *UserService) Get(ctx context.Context, actor token.Claims, targetID uint) (*models.User, error) {
	if !authz.SelfOrAdmin(actor, targetID) {
		return nil, models.NewForbiddenError("You are not allowed to see this user")
	}
	return s.userRepo.GetByID(ctx, targetID)
}

// List returns one page of users plus the dashboard counts. Admin only.
func (s *UserService) List(ctx context.Context, actor token.Claims, p repository.PageParams) (*UserListing, error) {
	if !authz.AdminOnly(actor) {
		return nil, models.NewForbiddenError("You are not allowed to see all users")
	}

	users, err := s.userRepo.List(ctx, p)
	if err != nil {
		return nil, err
	}
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	lastMonth, err := s.userRepo.CountCreatedSince(ctx, repository.LastMonthStart(time.Now()))
	if err != nil {
		return nil, err
	}

	return &UserListing{Users: users, TotalUsers: total, LastMonthUsers: lastMonth}, nil
}

// Update applies the allow-listed profile changes. Only the user itself may
// update its profile; each provided field is validated before anything is
// persisted, so a rejected field never partially applies.
func (s *UserService) Update(ctx context.Context, actor token.Claims, targetID uint, in UpdateUserInput) (*models.User, error) {
	// "Your are" is misspelled on the wire; clients match the exact string.
	if !authz.Self(actor, targetID) {
		return nil, models.NewForbiddenError("Your are not allowed to update this user")
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if in.Password != "" {
		if err := validation.ValidatePassword(in.Password); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hashed)
	}

	if in.Username != "" {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Username = in.Username
	}

	if in.Email != "" {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Email = in.Email
	}

	if in.ProfilePicture != "" {
		user.ProfilePicture = in.ProfilePicture
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account. Allowed for the user itself or an admin.
func (s *UserService) Delete(ctx context.Context, actor token.Claims, targetID uint) error {
	if !authz.SelfOrAdmin(actor, targetID) {
		return models.NewForbiddenError("Your are not allowed to delete this user")
	}
	return s.userRepo.Delete(ctx, targetID)
}
