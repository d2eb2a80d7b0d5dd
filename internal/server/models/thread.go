package models

import "time"

type Thread struct {
	ID            string
	Title         string
	Content       string
	PublishedAt   time.Time
	Closed        bool
	OwnerID       string
	OwnerUsername string
}

// Owner returns the username of the thread's owning user.
// Satisfies the ownership guard in internal/server/auth.
func (t *Thread) Owner() string { return t.OwnerUsername }
