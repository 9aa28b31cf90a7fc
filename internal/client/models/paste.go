package models

// Paste is the shareable text resource. UserID/Username identify the owner;
// Hidden pastes are visible only to the owner and administrators.
type Paste struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt Timestamp `json:"created_at"`
	Hidden    bool      `json:"hidden"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	ViewCount int64     `json:"view_count"`
}

// PasteRequest is the payload for creating or updating a paste.
type PasteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Hidden  bool   `json:"hidden"`
}
