// Package model defines domain entities for the application.
package model

import "time"

// User is a user record built from a creation request.
// It is never stored; ID is the creation instant in Unix milliseconds.
type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}
