package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueue_FIFO(t *testing.T) {
	q := NewEventQueueSize(4)
	for i := range 3 {
		q.Push(GameEvent{Type: EventUnitHit, Frame: int64(i)})
	}
	require.Equal(t, 3, q.Len())

	got := q.Consume()
	require.Len(t, got, 3)
	for i, ev := range got {
		assert.Equal(t, int64(i), ev.Frame)
	}
	assert.Zero(t, q.Len())
	assert.Nil(t, q.Consume())
}

func TestEventQueue_GrowsInsteadOfDropping(t *testing.T) {
	q := NewEventQueueSize(4)

	const n = 37
	for i := range n {
		q.Push(GameEvent{Type: EventDespawnRequest, Frame: int64(i)})
	}
	assert.GreaterOrEqual(t, q.Cap(), n)
	assert.Equal(t, 4, q.Grows())

	got := q.Consume()
	require.Len(t, got, n)
	for i, ev := range got {
		assert.Equal(t, int64(i), ev.Frame, "event %d out of order", i)
	}
}

func TestEventQueue_ReuseWithoutGrowth(t *testing.T) {
	q := NewEventQueueSize(4)
	q.Push(GameEvent{Frame: 0})
	q.Push(GameEvent{Frame: 1})
	q.Push(GameEvent{Frame: 2})
	require.Len(t, q.Consume(), 3)

	for i := range 4 {
		q.Push(GameEvent{Frame: int64(10 + i)})
	}
	assert.Zero(t, q.Grows())

	got := q.Consume()
	require.Len(t, got, 4)
	assert.Equal(t, int64(10), got[0].Frame)
	assert.Equal(t, int64(13), got[3].Frame)
}

func TestEventQueue_ConcurrentProducers(t *testing.T) {
	q := NewEventQueueSize(8)
	const producers, each = 8, 500

	var wg sync.WaitGroup
	for range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range each {
				q.Push(GameEvent{Type: EventSoundRequest})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, q.Consume(), producers*each)
}

type countingHandler struct {
	types []EventType
	seen  []EventType
	push  func(GameEvent)
}

func (h *countingHandler) EventTypes() []EventType { return h.types }

func (h *countingHandler) HandleEvent(ev GameEvent) {
	h.seen = append(h.seen, ev.Type)
	if h.push != nil {
		h.push(ev)
	}
}

func TestRouter_DispatchesEventsPushedDuringDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	h := &countingHandler{types: []EventType{EventUnitHit, EventDespawnRequest}}
	h.push = func(ev GameEvent) {
		if ev.Type == EventUnitHit {
			q.Push(GameEvent{Type: EventDespawnRequest})
		}
	}
	r.Register(h)
	assert.Equal(t, 1, r.HandlerCount(EventUnitHit))

	q.Push(GameEvent{Type: EventUnitHit})
	q.Push(GameEvent{Type: EventMatchEnd}) // No handler

	assert.Equal(t, 3, r.DispatchAll())
	assert.Equal(t, []EventType{EventUnitHit, EventDespawnRequest}, h.seen)
}
