package models

import "time"

// User is an anonymous identity created on first visit. The ID is the only
// unique field; display names may collide.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
