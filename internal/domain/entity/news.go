// Package entity defines the core domain entities and validation logic for the application.
// It contains the News classification record along with its validation rules and
// domain-specific errors.
package entity

import (
	"strings"
	"time"
)

// News represents a single news text classification record.
// Review holds the classified text and Label holds its category
// (e.g. BUSINESS, POLITICS, SCIENCE, SPORTS, ENTERTAINMENT).
type News struct {
	ID         int64
	Review     string
	Label      string
	TokenCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks that the record satisfies the persistence invariants:
// review and label must be present and non-empty after trimming whitespace.
func (n *News) Validate() error {
	if strings.TrimSpace(n.Review) == "" {
		return &ValidationError{Field: "review", Message: "is required"}
	}
	if strings.TrimSpace(n.Label) == "" {
		return &ValidationError{Field: "label", Message: "is required"}
	}
	return nil
}
