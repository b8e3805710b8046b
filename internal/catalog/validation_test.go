package catalog

import (
	"testing"

	"github.com/Veraticus/homeserve/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProvider = `
providers:
  - {id: "1", name: Pat, service: Plumbing, rating: 4.5, hourly_rate: 80}
`

func TestParseSeedRejectsMalformedData(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "rating above five",
			yaml:    "providers:\n  - {id: \"1\", name: Pat, service: Plumbing, rating: 5.5, hourly_rate: 80}\n",
			wantErr: ErrInvalidProvider,
		},
		{
			name:    "non-positive rate",
			yaml:    "providers:\n  - {id: \"1\", name: Pat, service: Plumbing, rating: 4, hourly_rate: 0}\n",
			wantErr: ErrInvalidProvider,
		},
		{
			name:    "duplicate provider",
			yaml:    "providers:\n  - {id: \"1\", name: A, service: S, rating: 4, hourly_rate: 1}\n  - {id: \"1\", name: B, service: S, rating: 4, hourly_rate: 1}\n",
			wantErr: ErrInvalidProvider,
		},
		{
			name:    "review rating zero",
			yaml:    validProvider + "reviews:\n  - {id: r1, provider_id: \"1\", user_name: X, rating: 0, date: \"2024-01-01\"}\n",
			wantErr: ErrInvalidReview,
		},
		{
			name:    "review for unknown provider",
			yaml:    validProvider + "reviews:\n  - {id: r1, provider_id: \"9\", user_name: X, rating: 4, date: \"2024-01-01\"}\n",
			wantErr: ErrInvalidReview,
		},
		{
			name:    "unknown booking status",
			yaml:    validProvider + "bookings:\n  - {id: b1, provider_id: \"1\", provider_name: Pat, service: S, date: \"2024-01-01\", time: \"9:00 AM\", status: rescheduled, price: 10}\n",
			wantErr: ErrInvalidBooking,
		},
		{
			name:    "zero price job",
			yaml:    validProvider + "jobs:\n  - {id: j1, provider_id: \"1\", provider_name: Pat, service: S, date: \"2024-01-01\", time: \"9:00 AM\", status: pending, price: 0}\n",
			wantErr: ErrInvalidBooking,
		},
		{
			name:    "unknown package type",
			yaml:    "packages:\n  - {id: x, name: X, type: lifetime, regular_price: 10, discounted_price: 5, savings: 5}\n",
			wantErr: ErrInvalidPackage,
		},
		{
			name:    "discount above regular price",
			yaml:    "packages:\n  - {id: x, name: X, type: bundle, regular_price: 10, discounted_price: 15, savings: -5}\n",
			wantErr: ErrInvalidPackage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseSeedRejectsDuplicateIDs(t *testing.T) {
	booking := func(id string) string {
		return "  - {id: " + id + ", provider_id: \"1\", provider_name: Pat, service: S, date: \"2024-01-01\", time: \"9:00 AM\", status: pending, price: 10}\n"
	}
	review := "  - {id: r1, provider_id: \"1\", user_name: X, rating: 4, date: \"2024-01-01\"}\n"
	pkg := "  - {id: p1, name: X, type: bundle, regular_price: 10, discounted_price: 5, savings: 5}\n"

	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "provider",
			yaml:    "providers:\n  - {id: \"1\", name: A, service: S, rating: 4, hourly_rate: 1}\n  - {id: \"1\", name: B, service: S, rating: 4, hourly_rate: 1}\n",
			wantErr: ErrInvalidProvider,
		},
		{
			name:    "review",
			yaml:    validProvider + "reviews:\n" + review + review,
			wantErr: ErrInvalidReview,
		},
		{
			name:    "booking shared with a job",
			yaml:    validProvider + "bookings:\n" + booking("b1") + "jobs:\n" + booking("b1"),
			wantErr: ErrInvalidBooking,
		},
		{
			name:    "package",
			yaml:    "packages:\n" + pkg + pkg,
			wantErr: ErrInvalidPackage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, common.ErrDuplicateEntry)
		})
	}

	_, err := ParseSeed([]byte(validProvider + "bookings:\n" + booking("b1") + "jobs:\n" + booking("j1")))
	assert.NoError(t, err, "distinct IDs across bookings and jobs")
}

func TestParseSeedBadDate(t *testing.T) {
	_, err := ParseSeed([]byte(validProvider + "reviews:\n  - {id: r1, provider_id: \"1\", user_name: X, rating: 4, date: \"last week\"}\n"))
	assert.ErrorIs(t, err, ErrInvalidReview)

	_, err = ParseSeed([]byte(validProvider + "bookings:\n  - {id: b1, provider_id: \"1\", provider_name: Pat, service: S, date: \"12/05\", time: \"9:00 AM\", status: pending, price: 10}\n"))
	assert.ErrorIs(t, err, ErrInvalidBooking)
}

func TestParseSeedInvalidYAML(t *testing.T) {
	_, err := ParseSeed([]byte("providers: [unterminated"))
	assert.Error(t, err)
}

func TestDefaultSeedIsValid(t *testing.T) {
	seed, err := DefaultSeed()
	require.NoError(t, err)
	assert.Len(t, seed.Providers, 6)
	assert.Len(t, seed.Reviews, 7)
	assert.Len(t, seed.Bookings, 3)
	assert.Len(t, seed.Jobs, 4)
	assert.Len(t, seed.Packages, 8)
}
