// internal/event/manager.go
package event

import (
	"slices"
	"sync"

	"github.com/bethropolis/prism/internal/logger"
)

// Handler is called for every dispatched event of the subscribed type. The
// return value reports whether the event was consumed; consumed events are
// not passed to later handlers.
type Handler func(e Event) bool

// SubscriptionID identifies a subscription for Unsubscribe.
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler Handler
}

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	nextID   SubscriptionID
	handlers map[Type][]subscription
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]subscription),
	}
}

// Subscribe adds a handler for eventType.
func (m *Manager) Subscribe(eventType Type, handler Handler) SubscriptionID {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.handlers[eventType] = append(m.handlers[eventType], subscription{id: m.nextID, handler: handler})
	logger.DebugTagf("event", "Event Manager: handler %d subscribed to %v", m.nextID, eventType)
	return m.nextID
}

// Unsubscribe removes a subscription. Unknown ids are ignored.
func (m *Manager) Unsubscribe(id SubscriptionID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for t, subs := range m.handlers {
		m.handlers[t] = slices.DeleteFunc(subs, func(s subscription) bool { return s.id == id })
	}
}

// Dispatch sends an event to the handlers of its type, synchronously and in
// subscription order. Handlers may subscribe or unsubscribe while running.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	m.mu.RLock()
	subs := slices.Clone(m.handlers[eventType])
	m.mu.RUnlock()

	if len(subs) == 0 {
		return
	}
	logger.DebugTagf("event", "Event Manager: dispatching %v to %d handler(s)", eventType, len(subs))

	e := Event{Type: eventType, Data: data}
	for _, s := range subs {
		if s.handler(e) {
			break
		}
	}
}
