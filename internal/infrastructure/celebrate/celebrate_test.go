package celebrate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestQueueDrain(t *testing.T) {
	q := NewQueue(8, zap.NewNop())

	q.Celebrate([]string{"#ff0000", "#00ff00"})
	q.NotifyLevelUp(3)

	events := q.Drain()
	require.Len(t, events, 2)
	assert.Equal(t, "confetti", events[0].Type)
	assert.Equal(t, []string{"#ff0000", "#00ff00"}, events[0].Colors)
	assert.Equal(t, "levelup", events[1].Type)
	assert.Equal(t, 3, events[1].Level)

	assert.Empty(t, q.Drain(), "drain clears the queue")
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue(3, zap.NewNop())

	for i := 1; i <= 5; i++ {
		q.NotifyLevelUp(i)
	}

	events := q.Drain()
	require.Len(t, events, 3)
	assert.Equal(t, 3, events[0].Level)
	assert.Equal(t, 5, events[2].Level)
}

func TestQueueDefaultLimit(t *testing.T) {
	q := NewQueue(0, zap.NewNop())
	for i := 0; i < 40; i++ {
		q.Celebrate([]string{fmt.Sprintf("#%06d", i)})
	}
	assert.Len(t, q.Drain(), 32)
}
