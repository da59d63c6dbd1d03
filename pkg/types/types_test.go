package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessToken_Expired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token AccessToken
		want  bool
	}{
		{
			name:  "missing token is expired",
			token: AccessToken{ExpiresAt: "2026-03-01 13:00:00"},
			want:  true,
		},
		{
			name:  "missing expiry is expired",
			token: AccessToken{Token: "abc"},
			want:  true,
		},
		{
			name:  "future expiry is valid",
			token: AccessToken{Token: "abc", ExpiresAt: "2026-03-01 12:00:01"},
			want:  false,
		},
		{
			name:  "expiry equal to now is expired",
			token: AccessToken{Token: "abc", ExpiresAt: "2026-03-01 12:00:00"},
			want:  true,
		},
		{
			name:  "past expiry is expired",
			token: AccessToken{Token: "abc", ExpiresAt: "2026-02-28 23:59:59"},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.token.Expired(now))
		})
	}
}

func TestCandidateCart_IsGuest(t *testing.T) {
	t.Parallel()

	zero := int64(0)
	id := int64(42)

	assert.True(t, (&CandidateCart{}).IsGuest())
	assert.True(t, (&CandidateCart{CustomerID: &zero}).IsGuest())
	assert.False(t, (&CandidateCart{CustomerID: &id}).IsGuest())
}

func TestAbandonmentRecord_Terminal(t *testing.T) {
	t.Parallel()

	assert.False(t, (&AbandonmentRecord{EventTriggerCount: 1}).Terminal())
	assert.True(t, (&AbandonmentRecord{EventTriggerCount: 2}).Terminal())
}

func TestRunSummary_Totals(t *testing.T) {
	t.Parallel()

	s := &RunSummary{Stores: []StoreResult{
		{SuccessCount: 2, FailureCount: 1},
		{SuccessCount: 0, FailureCount: 3},
	}}

	success, failure := s.Totals()
	assert.Equal(t, 2, success)
	assert.Equal(t, 4, failure)
	assert.Equal(t, 3, s.Stores[0].Total())
}
