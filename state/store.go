package state

import (
	"slices"
	"sync"
)

// Store owns the current Snapshot. Readers always see one complete version;
// writers serialize through Update.
type Store struct {
	mu      sync.RWMutex
	current Snapshot

	subMu       sync.Mutex
	subscribers map[int]func(Snapshot)
	nextSubID   int
}

// NewStore creates a store holding initial.
func NewStore(initial Snapshot) *Store {
	if initial.Overrides == nil {
		initial = NewSnapshot(initial.Base)
	}
	return &Store{current: initial, subscribers: make(map[int]func(Snapshot))}
}

// Current returns the latest snapshot.
func (st *Store) Current() Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.current
}

// Update applies fn to the current snapshot and installs the result. If fn
// returns an error the store is left unchanged. Subscribers are notified
// outside the lock, in registration order.
func (st *Store) Update(fn func(Snapshot) (Snapshot, error)) (Snapshot, error) {
	st.mu.Lock()
	next, err := fn(st.current)
	if err != nil {
		cur := st.current
		st.mu.Unlock()
		return cur, err
	}
	st.current = next
	st.mu.Unlock()

	st.notify(next)
	return next, nil
}

// Replace installs s as the next version, keeping versions monotonic.
// Used when the backing document is reloaded from disk.
func (st *Store) Replace(s Snapshot) Snapshot {
	next, _ := st.Update(func(cur Snapshot) (Snapshot, error) {
		if s.Version <= cur.Version {
			s.Version = cur.Version + 1
		}
		return s, nil
	})
	return next
}

// Subscribe registers fn to receive every new snapshot. The returned function
// removes the subscription.
func (st *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	st.subMu.Lock()
	id := st.nextSubID
	st.nextSubID++
	st.subscribers[id] = fn
	st.subMu.Unlock()

	return func() {
		st.subMu.Lock()
		delete(st.subscribers, id)
		st.subMu.Unlock()
	}
}

func (st *Store) notify(s Snapshot) {
	st.subMu.Lock()
	ids := make([]int, 0, len(st.subscribers))
	for id := range st.subscribers {
		ids = append(ids, id)
	}
	fns := make([]func(Snapshot), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, st.subscribers[id])
	}
	st.subMu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}
