package models

import "time"

// Insight types
const (
	InsightInfo    = "INFO"
	InsightWarning = "WARNING"
	InsightSuccess = "SUCCESS"
	InsightRisk    = "RISK"
)

// Insight represents a generated finding shown on the dashboard feed
type Insight struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
