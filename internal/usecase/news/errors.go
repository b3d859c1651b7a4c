// Package news provides use cases for managing news classification records.
// It implements business logic for creating, updating, deleting and querying
// records, including validation and interaction with the news repository.
package news

import "errors"

// Sentinel errors for news use case operations.
var (
	// ErrNewsNotFound indicates that the requested record was not found.
	ErrNewsNotFound = errors.New("news classification not found")

	// ErrInvalidNewsID indicates that the provided record ID is invalid.
	// Record IDs must be positive integers.
	ErrInvalidNewsID = errors.New("invalid news ID")
)
