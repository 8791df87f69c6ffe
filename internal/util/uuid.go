package util

import "github.com/google/uuid"

// GenerateUUID returns a fresh random id for a new customer record.
func GenerateUUID() string {
	return uuid.NewString()
}
