// Package news provides HTTP handlers for news classification endpoints.
// It includes handlers for creating, listing, searching, updating, and
// deleting classification records, plus the statistics summary.
package news

import (
	"time"

	"news-classify/internal/domain/entity"
)

// DTO represents the JSON structure for news classification data transfer.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	Review    string    `json:"review" example:"Stocks rallied after the jobs report beat expectations."`
	Label     string    `json:"label" example:"BUSINESS"`
	CreatedAt time.Time `json:"created_at" example:"2025-10-26T12:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-10-26T12:00:00Z"`
}

// StatsDTO represents the JSON structure for the statistics summary.
type StatsDTO struct {
	TotalRecords      int64            `json:"total_records" example:"15000"`
	LabelDistribution map[string]int64 `json:"label_distribution"`
}

func toDTO(n *entity.News) DTO {
	return DTO{
		ID:        n.ID,
		Review:    n.Review,
		Label:     n.Label,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
