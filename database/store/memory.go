package store

import (
	"context"
	"sync"

	"barbershop/models"

	"github.com/google/uuid"
)

type memCollection struct {
	docs  map[string]Document
	order []string
}

func (c *memCollection) snapshot() []Record {
	out := make([]Record, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, Record{ID: id, Data: Clone(c.docs[id])})
	}
	return out
}

func (c *memCollection) remove(id string) {
	delete(c.docs, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// subscription delivers snapshots on its own goroutine. Pending snapshots
// are coalesced: a slow listener only ever sees the latest contents.
type subscription struct {
	fn     ChangeFunc
	signal chan struct{}
	done   chan struct{}
	once   sync.Once

	mu      sync.Mutex
	pending []Record
	dirty   bool
}

func (s *subscription) offer(records []Record) {
	s.mu.Lock()
	s.pending = records
	s.dirty = true
	s.mu.Unlock()
	select {
	case s.signal <- struct{}{}:
	default:
	}
}

func (s *subscription) run(ctx context.Context) {
	for {
		select {
		case <-s.done:
			return
		case <-ctx.Done():
			return
		case <-s.signal:
			s.mu.Lock()
			records, dirty := s.pending, s.dirty
			s.pending, s.dirty = nil, false
			s.mu.Unlock()
			if dirty {
				s.fn(records)
			}
		}
	}
}

func (s *subscription) stop() {
	s.once.Do(func() { close(s.done) })
}

// MemoryStore is the single-process fallback backend.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memCollection
	subs        map[string]map[*subscription]struct{}
	newID       func() string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]*memCollection),
		subs:        make(map[string]map[*subscription]struct{}),
		newID:       func() string { return "local-" + uuid.NewString() },
	}
}

func (m *MemoryStore) Mode() models.StoreMode {
	return models.StoreModeFallback
}

// collection must be called with m.mu held for writing.
func (m *MemoryStore) collection(name string) *memCollection {
	c, ok := m.collections[name]
	if !ok {
		c = &memCollection{docs: make(map[string]Document)}
		m.collections[name] = c
	}
	return c
}

// publish must be called with m.mu held so snapshots are offered in write order.
func (m *MemoryStore) publish(name string, c *memCollection) {
	subs := m.subs[name]
	if len(subs) == 0 {
		return
	}
	for s := range subs {
		s.offer(c.snapshot())
	}
}

func (m *MemoryStore) Create(_ context.Context, collection string, doc Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := m.collection(collection)
	id := m.newID()
	c.docs[id] = Clone(doc)
	c.order = append(c.order, id)
	m.publish(collection, c)
	return id, nil
}

func (m *MemoryStore) Set(_ context.Context, collection, id string, doc Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := m.collection(collection)
	if _, exists := c.docs[id]; !exists {
		c.order = append(c.order, id)
	}
	c.docs[id] = Clone(doc)
	m.publish(collection, c)
	return nil
}

func (m *MemoryStore) Update(_ context.Context, collection, id string, partial Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := m.collection(collection)
	existing, ok := c.docs[id]
	if !ok {
		return nil
	}
	c.docs[id] = merge(existing, partial)
	m.publish(collection, c)
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := m.collection(collection)
	if _, ok := c.docs[id]; !ok {
		return nil
	}
	c.remove(id)
	m.publish(collection, c)
	return nil
}

func (m *MemoryStore) Get(_ context.Context, collection, id string) (Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	doc, ok := c.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return Clone(doc), nil
}

func (m *MemoryStore) List(_ context.Context, collection string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.collections[collection]
	if !ok {
		return []Record{}, nil
	}
	return c.snapshot(), nil
}

func (m *MemoryStore) Subscribe(ctx context.Context, collection string, fn ChangeFunc) (func(), error) {
	s := &subscription{
		fn:     fn,
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}

	m.mu.Lock()
	if m.subs[collection] == nil {
		m.subs[collection] = make(map[*subscription]struct{})
	}
	m.subs[collection][s] = struct{}{}
	s.offer(m.collection(collection).snapshot())
	m.mu.Unlock()

	unsubscribe := func() {
		m.mu.Lock()
		delete(m.subs[collection], s)
		m.mu.Unlock()
		s.stop()
	}
	go func() {
		s.run(ctx)
		unsubscribe()
	}()
	return unsubscribe, nil
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, subs := range m.subs {
		for s := range subs {
			s.stop()
		}
		delete(m.subs, name)
	}
	return nil
}
