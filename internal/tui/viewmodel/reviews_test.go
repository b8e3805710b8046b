package viewmodel

import (
	"testing"

	"github.com/Veraticus/homeserve/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReviewSummary(t *testing.T) {
	p := model.ServiceProvider{Rating: 4.9, ReviewCount: 127}
	reviews := []model.Review{{Rating: 5}, {Rating: 5}, {Rating: 4}}

	s := NewReviewSummary(p, reviews)
	assert.InDelta(t, 4.9, s.Rating, 0.001)
	assert.Equal(t, 127, s.ReviewCount)
	require.Len(t, s.Histogram, 5)

	assert.Equal(t, 5, s.Histogram[0].Stars)
	assert.Equal(t, 2, s.Histogram[0].Count)
	assert.InDelta(t, 66.667, s.Histogram[0].Percent, 0.01)
	assert.Equal(t, 4, s.Histogram[1].Stars)
	assert.InDelta(t, 33.333, s.Histogram[1].Percent, 0.01)
	assert.Equal(t, 1, s.Histogram[4].Stars)
	assert.InDelta(t, 0.0, s.Histogram[4].Percent, 0.001)
}

func TestNewReviewSummaryNoReviews(t *testing.T) {
	s := NewReviewSummary(model.ServiceProvider{Rating: 4.6, ReviewCount: 176}, nil)
	require.Len(t, s.Histogram, 5)
	for _, bar := range s.Histogram {
		assert.Zero(t, bar.Count)
		assert.InDelta(t, 0.0, bar.Percent, 0.001)
	}
}
