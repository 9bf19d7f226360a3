package service

import (
	"context"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/stresscheck/backend/pkg/model"
)

const respondentIDChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// UserStore is the persistence capability for user records
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// UserService manages respondent and staff records. Authentication is
// owned by the presentation layer; the service only keeps identities that
// results can reference.
type UserService struct {
	store  UserStore
	logger *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(store UserStore, logger *zap.Logger) *UserService {
	return &UserService{
		store:  store,
		logger: logger,
	}
}

// Create adds a user. Respondents get a generated 4-character alphanumeric
// id; staff and admin identities use their name as login id.
func (s *UserService) Create(ctx context.Context, name string, role model.Role, assignedStaffID string) (*model.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationErrorf("user name is required")
	}

	switch role {
	case model.RoleUser, model.RoleStaff, model.RoleAdmin:
	default:
		return nil, validationErrorf("unknown role: %s", role)
	}

	user := &model.User{
		Name: name,
		Role: role,
	}
	if role == model.RoleUser {
		user.ID = generateRespondentID()
	} else {
		user.ID = name
	}
	if assignedStaffID != "" {
		user.AssignedStaffID = &assignedStaffID
	}

	if err := s.store.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	return user, nil
}

// GetByID retrieves a user
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.store.GetByID(ctx, id)
}

// List returns all users
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.store.List(ctx)
}

// Delete removes a user and, through the storage layer, their results.
// Returns false when the user did not exist.
func (s *UserService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Info("user deleted", zap.String("user_id", id))
	}

	return deleted, nil
}

func generateRespondentID() string {
	b := make([]byte, 4)
	for i := range b {
		b[i] = respondentIDChars[rand.IntN(len(respondentIDChars))]
	}
	return string(b)
}
