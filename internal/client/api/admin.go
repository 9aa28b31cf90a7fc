package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/snipshare/internal/client/models"
)

// Administrative endpoints. The server rejects these for non-admin callers;
// the CLI additionally hides them behind the admin route guard.

func (c *HTTPClient) Users(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) User(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/user/"+url.PathEscape(username), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodPut, "/api/admin/user/"+url.PathEscape(username), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, username string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/admin/user/"+url.PathEscape(username), nil, nil)
}

func (c *HTTPClient) AllPastes(ctx context.Context) ([]*models.Paste, error) {
	var pastes []*models.Paste
	if err := c.doJSON(ctx, http.MethodGet, "/api/manage/pastes", nil, &pastes); err != nil {
		return nil, err
	}
	return pastes, nil
}

func (c *HTTPClient) PasteAnalytics(ctx context.Context) ([]*models.PasteAnalytics, error) {
	var stats []*models.PasteAnalytics
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/paste-analytics", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *HTTPClient) PasteAnalyticsFor(ctx context.Context, id string) (*models.PasteAnalytics, error) {
	var stats models.PasteAnalytics
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/paste-analytics/"+url.PathEscape(id), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
