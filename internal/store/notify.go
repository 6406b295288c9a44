package store

import "sync"

// notifier broadcasts change notifications to subscribers. Every mutation of
// the store signals all subscribers; a subscriber is expected to re-read the
// full snapshot it cares about.
type notifier struct {
	mu     sync.Mutex
	closed bool
	subs   map[int]chan struct{}
	nextID int
}

// Subscribe returns a channel that receives a signal after every store
// mutation, and an unsubscribe function. The channel is buffered: a
// subscriber that is mid-reload coalesces intervening signals into one.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	return s.notifier.subscribe()
}

func (n *notifier) subscribe() (<-chan struct{}, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]chan struct{})
	}
	id := n.nextID
	n.nextID++

	ch := make(chan struct{}, 1)
	if n.closed {
		close(ch)
		return ch, func() {}
	}
	n.subs[id] = ch

	unsubscribe := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if sub, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(sub)
		}
	}
	return ch, unsubscribe
}

func (n *notifier) broadcast() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default: // signal already pending
		}
	}
}

func (n *notifier) close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	for id, ch := range n.subs {
		delete(n.subs, id)
		close(ch)
	}
}
