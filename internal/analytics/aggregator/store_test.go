package aggregator

import (
	"testing"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analytics"
	"github.com/stretchr/testify/assert"
)

func TestChangedIgnoresDerivedFields(t *testing.T) {
	prev := analytics.AggregatedStats{TotalSearches: 3, SearchesPerMinute: 1.5}
	cur := prev
	cur.SearchesPerMinute = 0.5
	cur.AvgLatencyMs = 12
	assert.False(t, changed(prev, cur))

	cur.TotalDocsDeleted++
	assert.True(t, changed(prev, cur))
	assert.True(t, changed(analytics.AggregatedStats{}, analytics.AggregatedStats{FailedSearches: 1}))
}
