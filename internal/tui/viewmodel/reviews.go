package viewmodel

import "github.com/Veraticus/homeserve/internal/model"

// HistogramBar is one row of the rating distribution.
type HistogramBar struct {
	Stars   int
	Count   int
	Percent float64
}

// ReviewSummary is the header of a provider's reviews section.
type ReviewSummary struct {
	Histogram   []HistogramBar // Five stars first
	Rating      float64
	ReviewCount int
}

// NewReviewSummary builds the summary. Rating and count come from the
// provider; the histogram is computed from the reviews actually listed,
// bucketing each review by the integer part of its rating.
func NewReviewSummary(p model.ServiceProvider, reviews []model.Review) ReviewSummary {
	counts := make(map[int]int, 5)
	for _, r := range reviews {
		counts[r.Rating]++
	}

	bars := make([]HistogramBar, 0, 5)
	for stars := 5; stars >= 1; stars-- {
		bar := HistogramBar{Stars: stars, Count: counts[stars]}
		if len(reviews) > 0 {
			bar.Percent = float64(bar.Count) / float64(len(reviews)) * 100
		}
		bars = append(bars, bar)
	}

	return ReviewSummary{
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Histogram:   bars,
	}
}
