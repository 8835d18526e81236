// Package schema defines the ent schemas for the story database.
package schema

import "github.com/google/uuid"

// newV7 is the id default for every table. V7 ids sort by creation time,
// which keeps index pages append-mostly.
func newV7() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
