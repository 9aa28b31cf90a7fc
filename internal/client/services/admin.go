package services

import (
	"context"

	"github.com/dmitrijs2005/snipshare/internal/client/api"
	"github.com/dmitrijs2005/snipshare/internal/client/models"
	"github.com/dmitrijs2005/snipshare/internal/logging"
)

// AdminService exposes user management and analytics. The admin route
// guard keeps the views behind it; the server enforces the real check.
type AdminService interface {
	Users(ctx context.Context) ([]*models.User, error)
	User(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, username string) error
	AllPastes(ctx context.Context) ([]*models.Paste, error)
	Analytics(ctx context.Context) ([]*models.PasteAnalytics, error)
	AnalyticsFor(ctx context.Context, pasteID string) (*models.PasteAnalytics, error)
}

type adminService struct {
	api api.Client
	log logging.Logger
}

func NewAdminService(apiClient api.Client, log logging.Logger) AdminService {
	return &adminService{api: apiClient, log: log}
}

func (s *adminService) Users(ctx context.Context) ([]*models.User, error) {
	return s.api.Users(ctx)
}

func (s *adminService) User(ctx context.Context, username string) (*models.User, error) {
	return s.api.User(ctx, username)
}

func (s *adminService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if err := validateLogin(req.Username, req.Password); err != nil {
		return nil, err
	}
	if len(req.Password) < MinPasswordLength {
		return nil, &ValidationError{Reason: "password must be at least 6 characters long"}
	}
	user, err := s.api.CreateUser(ctx, req)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "user created", "username", user.Username, "is_admin", user.IsAdmin)
	return user, nil
}

func (s *adminService) UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
	if req.Username == nil && req.Password == nil && req.IsAdmin == nil {
		return nil, &ValidationError{Reason: "nothing to update"}
	}
	if req.Password != nil && len(*req.Password) < MinPasswordLength {
		return nil, &ValidationError{Reason: "password must be at least 6 characters long"}
	}
	return s.api.UpdateUser(ctx, username, req)
}

func (s *adminService) DeleteUser(ctx context.Context, username string) error {
	if err := s.api.DeleteUser(ctx, username); err != nil {
		return err
	}
	s.log.Info(ctx, "user deleted", "username", username)
	return nil
}

func (s *adminService) AllPastes(ctx context.Context) ([]*models.Paste, error) {
	return s.api.AllPastes(ctx)
}

func (s *adminService) Analytics(ctx context.Context) ([]*models.PasteAnalytics, error) {
	return s.api.PasteAnalytics(ctx)
}

func (s *adminService) AnalyticsFor(ctx context.Context, pasteID string) (*models.PasteAnalytics, error) {
	return s.api.PasteAnalyticsFor(ctx, pasteID)
}
