// Package notify carries catalog change events from the service layer to
// interested consumers. Stores never push data to views; they announce that
// something changed and consumers re-query.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const defaultBuffer = 64

// Event describes a single catalog mutation.
type Event struct {
	Op     string    // "issue", "return", or "add"
	BookID string
	At     time.Time
}

// Hub fans change events out to subscriber channels. Publishing never
// blocks: a subscriber whose buffer is full misses the event and must
// re-query, which is always safe because events carry no state.
type Hub struct {
	mu   sync.RWMutex
	subs []chan Event
	log  zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{log: log}
}

// Subscribe registers a new consumer and returns its event channel.
// If buffer <= 0 a default capacity is used.
func (h *Hub) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	ch := make(chan Event, buffer)

	h.mu.Lock()
	h.subs = append(h.subs, ch)
	h.mu.Unlock()

	return ch
}

// Publish delivers an event to every subscriber without blocking.
func (h *Hub) Publish(e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subs {
		select {
		case ch <- e:
		default:
			h.log.Warn().Str("op", e.Op).Str("book_id", e.BookID).Msg("subscriber buffer full, event dropped")
		}
	}
}

// CatalogChanged satisfies the service layer's ChangeNotifier.
func (h *Hub) CatalogChanged(op, bookID string) {
	h.Publish(Event{Op: op, BookID: bookID, At: time.Now().UTC()})
}

// LogEvents starts a goroutine that logs every change event until ctx is
// cancelled. It is the default subscriber wired by the entrypoint.
func (h *Hub) LogEvents(ctx context.Context) {
	ch := h.Subscribe(defaultBuffer)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-ch:
				if !ok {
					return
				}
				h.log.Debug().
					Str("op", e.Op).
					Str("book_id", e.BookID).
					Time("at", e.At).
					Msg("catalog changed")
			}
		}
	}()
}
