package service

import (
	"context"

	"github.com/kamilprz/activitylog/internal/daylog"
	"github.com/kamilprz/activitylog/internal/models"
)

// UserRepository defines the persistence operations required by the user
// service.
type UserRepository interface {
	// FindAll returns every stored user.
	FindAll(ctx context.Context) ([]models.User, error)
	// FindByID returns the user with the given id, or models.ErrNotFound.
	FindByID(ctx context.Context, id string) (*models.User, error)
	// Save rewrites the user's day log.
	Save(ctx context.Context, user *models.User) error
	// DeleteByID removes the user. Absent users are not an error.
	DeleteByID(ctx context.Context, id string) error
}

// UserService implements user listing, lookup, deletion and activity updates.
type UserService struct {
	repo UserRepository
}

// NewUserService constructs a UserService using the provided repository.
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

// Get returns the user with the given id, or models.ErrNotFound.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

// AddActivity validates the activity, merges it into the user's day log and
// persists the result, returning the updated user.
//
// Validation failures and chronology violations leave the stored log
// untouched. The load-merge-save is a whole-document read-modify-write with
// no version check: two concurrent updates to the same user race and the
// last save wins.
func (s *UserService) AddActivity(ctx context.Context, id, date, typ, label string, duration *float64) (*models.User, error) {
	if date == "" {
		return nil, &models.ValidationError{Field: "date", Reason: "is required"}
	}
	act, err := daylog.ValidateActivity(typ, label, duration)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	days, err := daylog.Append(user.Days, date, act)
	if err != nil {
		return nil, err
	}
	user.Days = days

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ActivitiesOn returns the activities the user logged on the given date.
// Returns models.ErrNotFound when the user is absent or no day matches.
func (s *UserService) ActivitiesOn(ctx context.Context, id, date string) ([]models.Activity, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	acts, ok := daylog.ActivitiesOn(user.Days, date)
	if !ok {
		return nil, models.ErrNotFound
	}
	return acts, nil
}

// Delete removes the user with the given id.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
