package models

import "github.com/google/uuid"

// assignID fills an empty primary key with a new UUID.
func assignID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}
