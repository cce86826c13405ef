package events

import (
	"sync"
	"time"
)

// Topics published by the stores.
const (
	TopicStocks    = "stocks"
	TopicSchedules = "schedules"
)

// Event is one change notification from a store.
type Event struct {
	Topic   string    `json:"topic"`
	Kind    string    `json:"kind"` // created|updated|deleted|completed|uncompleted
	UserID  string    `json:"user_id"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

// Broker fans events out to subscribers. Replaces the implicit push listeners
// of the list screens with an explicit subscribe/unsubscribe pair.
type Broker struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[int]chan Event)}
}

// Subscribe registers a listener. The returned func removes it; calling it
// more than once is harmless.
func (b *Broker) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	b.mu.Lock()
	id := b.next
	b.next++
	ch := make(chan Event, buffer)
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers ev to every subscriber. Slow subscribers miss events
// rather than block a store mutation.
func (b *Broker) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
