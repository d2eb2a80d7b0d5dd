// Package models contains the persisted entities of the forum.
package models

// Role restricts what routes a user may call.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Timezone     string
	Role         Role
}
