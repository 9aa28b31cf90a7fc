package models

// User is the administrative view of an account.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt Timestamp `json:"created_at"`
}

// CreateUserRequest is the payload for the admin user-creation endpoint.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// UpdateUserRequest is a partial update; nil fields are left unchanged
// on the server.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	IsAdmin  *bool   `json:"is_admin,omitempty"`
}

// PasteAnalytics aggregates view statistics for a single paste.
type PasteAnalytics struct {
	PasteID            string `json:"paste_id"`
	Title              string `json:"title"`
	TotalViews         int64  `json:"total_views"`
	UniqueIPs          int64  `json:"unique_ips"`
	AuthenticatedViews int64  `json:"authenticated_views"`
	RecentViews        int64  `json:"recent_views"`
}
