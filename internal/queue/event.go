// Package queue defines message payloads exchanged over the message broker.
package queue

// BreedsRefreshedEvent is published after a successful refresh of the breed
// cache. Consumers can log or trigger downstream sync without querying the
// primary database.
type BreedsRefreshedEvent struct {
	Count       int    `json:"count"`
	RefreshedAt string `json:"refreshed_at"`
}

// UserRegisteredEvent is published when a new account is created.
type UserRegisteredEvent struct {
	UserID       int64  `json:"user_id"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registered_at"`
}
