package models

// Identity is the authenticated principal as reported by the server's
// who-am-i endpoint. A nil *Identity means anonymous.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}
