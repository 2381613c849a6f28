package helpers

import (
	"sort"

	"github.com/dc25-uiux/uxai/internal/domain"
)

// ComponentStatistic represents how often a component was recommended
type ComponentStatistic struct {
	Component string
	Count     int
}

// HistoryStatistics summarizes a slice of history records
type HistoryStatistics struct {
	Total             int
	AverageConfidence float64
	ProviderCounts    map[domain.Provider]int
	ComponentCounts   map[string]int
}

// AnalyzeHistory computes provider and component distributions
func AnalyzeHistory(records []domain.HistoryRecord) HistoryStatistics {
	stats := HistoryStatistics{
		Total:           len(records),
		ProviderCounts:  make(map[domain.Provider]int),
		ComponentCounts: make(map[string]int),
	}
	var confidence float64
	for _, rec := range records {
		stats.ProviderCounts[rec.Provider]++
		for _, c := range rec.Components {
			stats.ComponentCounts[c]++
		}
		confidence += rec.Confidence
	}
	if len(records) > 0 {
		stats.AverageConfidence = confidence / float64(len(records))
	}
	return stats
}

// FallbackRate returns the share of records answered by the rule engine, in percent
func (s HistoryStatistics) FallbackRate() float64 {
	if s.Total == 0 {
		return 0.0
	}
	return float64(s.ProviderCounts[domain.ProviderFallback]) / float64(s.Total) * 100.0
}

// CalculateTopComponents returns the top N most frequently recommended components
// If limit is 0 or negative, returns all components
func CalculateTopComponents(frequency map[string]int, limit int) []ComponentStatistic {
	stats := make([]ComponentStatistic, 0, len(frequency))
	for name, count := range frequency {
		stats = append(stats, ComponentStatistic{Component: name, Count: count})
	}
	sortStatisticsByFrequency(stats)

	if shouldLimitResults(limit, len(stats)) {
		return stats[:limit]
	}
	return stats
}

// sortStatisticsByFrequency sorts statistics by count (descending) then by name (ascending)
func sortStatisticsByFrequency(stats []ComponentStatistic) {
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count == stats[j].Count {
			return stats[i].Component < stats[j].Component
		}
		return stats[i].Count > stats[j].Count
	})
}

func shouldLimitResults(limit int, actualLength int) bool {
	return limit > 0 && actualLength > limit
}
