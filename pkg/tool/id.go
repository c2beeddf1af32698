package tool

import "github.com/google/uuid"

// GenerateUUIDV7 mints journal entry ids. V7 ids are time-ordered, so primary
// key order roughly follows creation order.
func GenerateUUIDV7() string {
	return uuid.Must(uuid.NewV7()).String()
}
