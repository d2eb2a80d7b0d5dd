package models

import "time"

type Comment struct {
	ID            string
	ThreadID      string
	Content       string
	PublishedAt   time.Time
	OwnerID       string
	OwnerUsername string
}

// Owner returns the username of the comment's owning user.
func (c *Comment) Owner() string { return c.OwnerUsername }
