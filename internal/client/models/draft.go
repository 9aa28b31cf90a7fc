package models

import "time"

// Draft is a locally stored paste-in-progress. It never leaves the client
// until published, at which point it becomes a Paste on the server.
type Draft struct {
	ID        string
	Title     string
	Content   string
	Hidden    bool
	UpdatedAt time.Time
}
