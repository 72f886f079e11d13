package celebrate

import (
	"sync"

	"go.uber.org/zap"
)

// Event is one pending visual flourish for the presentation layer.
type Event struct {
	Type   string   `json:"type"` // "confetti" or "levelup"
	Colors []string `json:"colors,omitempty"`
	Level  int      `json:"level,omitempty"`
}

// Queue buffers celebration events until the presentation layer drains
// them. It is fire-and-forget from the engine's point of view: pushes
// never block and overflow drops the oldest event.
type Queue struct {
	mu     sync.Mutex
	events []Event
	limit  int
	log    *zap.Logger
}

func NewQueue(limit int, log *zap.Logger) *Queue {
	if limit <= 0 {
		limit = 32
	}
	return &Queue{limit: limit, log: log}
}

func (q *Queue) Celebrate(colors []string) {
	q.push(Event{Type: "confetti", Colors: colors})
	q.log.Debug("confetti_queued", zap.Int("colors", len(colors)))
}

func (q *Queue) NotifyLevelUp(level int) {
	q.push(Event{Type: "levelup", Level: level})
	q.log.Info("level_up", zap.Int("level", level))
}

// Drain returns all pending events and clears the queue.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.events
	q.events = nil
	return out
}

func (q *Queue) push(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) >= q.limit {
		q.events = q.events[1:]
	}
	q.events = append(q.events, ev)
}
