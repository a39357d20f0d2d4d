package pkg

import "github.com/google/uuid"

// GenerateGameID - returns a new random game identifier.
func GenerateGameID() string {
	return uuid.NewString()
}
