// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an identity record. The password is stored only as a salted
// one-way digest.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	Salt         []byte
	CreatedAt    time.Time
}
