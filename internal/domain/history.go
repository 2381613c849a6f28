package domain

import "time"

// HistoryRecord captures a produced recommendation.
type HistoryRecord struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Provider    Provider  `json:"provider"`
	Components  []string  `json:"components"`
	Confidence  float64   `json:"confidence"`
}

// CacheEntry stores a response under its request signature.
type CacheEntry struct {
	Key       string            `json:"key"`
	Response  AssistantResponse `json:"response"`
	CreatedAt time.Time         `json:"created_at"`
}

// CacheStats reports the current and maximum number of cached entries.
type CacheStats struct {
	Size    int `json:"size"`
	MaxSize int `json:"maxSize"`
}
