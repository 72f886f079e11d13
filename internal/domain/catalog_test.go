package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLevel(t *testing.T) {
	tests := []struct {
		name string
		xp   int
		want int
	}{
		{"zero xp", 0, 1},
		{"below first threshold", 99, 1},
		{"exactly first threshold", 100, 2},
		{"between thresholds", 150, 2},
		{"exactly second threshold", 300, 3},
		{"top threshold", 5000, 10},
		{"beyond table", 99999, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeLevel(tt.xp))
		})
	}
}

func TestComputeLevelThresholdBoundaries(t *testing.T) {
	for i, threshold := range LevelThresholds {
		assert.Equal(t, i+1, ComputeLevel(threshold), "threshold %d", threshold)
		if threshold > 0 {
			assert.Equal(t, i, ComputeLevel(threshold-1), "just below threshold %d", threshold)
		}
	}
}

func TestComputeLevelNonDecreasing(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 6000; xp += 50 {
		level := ComputeLevel(xp)
		assert.GreaterOrEqual(t, level, prev)
		prev = level
	}
}

func TestDefaultInventoryIsFree(t *testing.T) {
	for _, id := range DefaultInventory {
		item, ok := FindItem(id)
		require.True(t, ok, "default item %s must exist in catalog", id)
		assert.Equal(t, 0, item.Price, "default item %s must be free", id)
	}
}

func TestFirstItemOfTypeIsDefault(t *testing.T) {
	theme, ok := FirstItemOfType(ItemTheme)
	require.True(t, ok)
	assert.Equal(t, DefaultThemeID, theme.ID)

	confetti, ok := FirstItemOfType(ItemConfetti)
	require.True(t, ok)
	assert.Equal(t, DefaultConfettiID, confetti.ID)
}

func TestChallengeQuotesCoverAllBlocks(t *testing.T) {
	// One quote per 5-day block over 60 days.
	assert.Len(t, ChallengeQuotes, 12)
}
