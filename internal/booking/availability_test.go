package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsAvailable_Scenario(t *testing.T) {
	confirmed := []DateRange{mustRange(t, "2024-06-01", "2024-06-05")}

	assert.False(t, IsAvailable(mustRange(t, "2024-06-04", "2024-06-07"), confirmed))
	assert.True(t, IsAvailable(mustRange(t, "2024-06-05", "2024-06-07"), confirmed))

	// cancelling the only booking leaves nothing to block the stay
	assert.True(t, IsAvailable(mustRange(t, "2024-06-04", "2024-06-07"), nil))
}

func TestIsAvailable_NeverOverlapsWhenAvailable(t *testing.T) {
	confirmed := []DateRange{
		mustRange(t, "2024-06-01", "2024-06-05"),
		mustRange(t, "2024-06-10", "2024-06-12"),
	}
	start := time.Date(2024, 5, 25, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 25; i++ {
		for n := 1; n <= 6; n++ {
			in := start.AddDate(0, 0, i)
			candidate, err := NewDateRange(in, in.AddDate(0, 0, n))
			assert.NoError(t, err)

			if IsAvailable(candidate, confirmed) {
				for _, b := range confirmed {
					assert.False(t, candidate.Overlaps(b), "%s reported available but overlaps %s", candidate, b)
				}
			}
		}
	}
}
