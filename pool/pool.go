// Package pool is a fixed-capacity arena of reusable objects addressed by
// handles. Objects are reset through their own Reset method on release and
// on reuse, so no state bleeds from one lifetime into the next.
package pool

// Resetter is implemented by pooled objects. Reset must restore every field
// to its zero/default value.
type Resetter interface {
	Reset()
}

// Handle addresses one lifetime of a pooled object. A handle goes stale once
// its slot is released and reacquired.
type Handle struct {
	Slot int
	ID   uint64
}

type slot[T Resetter] struct {
	obj    T
	id     uint64
	active bool
}

// Stats is a point-in-time view of the pool.
type Stats struct {
	Total     int
	Active    int
	Inactive  int
	Evictions int
}

// Pool holds at most max objects. When every slot is taken, Acquire evicts the
// oldest lifetime rather than growing.
type Pool[T Resetter] struct {
	factory   func() T
	max       int
	slots     []slot[T]
	nextID    uint64
	active    int
	evictions int
}

// New creates a pool that constructs objects with factory, up to max of them.
// max below 1 is treated as 1.
func New[T Resetter](factory func() T, max int) *Pool[T] {
	if max < 1 {
		max = 1
	}
	return &Pool[T]{factory: factory, max: max}
}

// Acquire returns a fresh lifetime. It prefers an inactive slot, then grows
// below max, and finally resets and reuses the slot holding the oldest
// lifetime, active or not. Reuse of an active slot counts as an eviction.
func (p *Pool[T]) Acquire() (Handle, T) {
	idx := -1
	for i := range p.slots {
		if !p.slots[i].active {
			idx = i
			break
		}
	}
	if idx < 0 && len(p.slots) < p.max {
		p.slots = append(p.slots, slot[T]{obj: p.factory()})
		idx = len(p.slots) - 1
	}
	if idx < 0 {
		idx = p.oldest()
		p.evictions++
		p.active--
	}

	s := &p.slots[idx]
	s.obj.Reset()
	p.nextID++
	s.id = p.nextID
	s.active = true
	p.active++
	return Handle{Slot: idx, ID: s.id}, s.obj
}

func (p *Pool[T]) oldest() int {
	idx := 0
	for i := range p.slots {
		if p.slots[i].id < p.slots[idx].id {
			idx = i
		}
	}
	return idx
}

// Evictee reports the active lifetime the next Acquire would evict, if the
// pool is saturated.
func (p *Pool[T]) Evictee() (Handle, bool) {
	if p.active < p.max {
		return Handle{}, false
	}
	idx := p.oldest()
	return Handle{Slot: idx, ID: p.slots[idx].id}, true
}

// Release resets and deactivates the object behind h. Releasing twice or
// releasing a stale handle does nothing. It reports whether a release happened.
func (p *Pool[T]) Release(h Handle) bool {
	s := p.lookup(h)
	if s == nil {
		return false
	}
	s.obj.Reset()
	s.active = false
	p.active--
	return true
}

// Get returns the object behind h while that lifetime is active.
func (p *Pool[T]) Get(h Handle) (T, bool) {
	s := p.lookup(h)
	if s == nil {
		var zero T
		return zero, false
	}
	return s.obj, true
}

func (p *Pool[T]) lookup(h Handle) *slot[T] {
	if h.Slot < 0 || h.Slot >= len(p.slots) {
		return nil
	}
	s := &p.slots[h.Slot]
	if !s.active || s.id != h.ID {
		return nil
	}
	return s
}

// Active appends the handles of all active objects to dst in slot order.
func (p *Pool[T]) Active(dst []Handle) []Handle {
	for i := range p.slots {
		if p.slots[i].active {
			dst = append(dst, Handle{Slot: i, ID: p.slots[i].id})
		}
	}
	return dst
}

// Len reports the number of active objects.
func (p *Pool[T]) Len() int {
	return p.active
}

// Clear releases every active object. Allocated slots are kept for reuse.
func (p *Pool[T]) Clear() {
	for i := range p.slots {
		if p.slots[i].active {
			p.slots[i].obj.Reset()
			p.slots[i].active = false
		}
	}
	p.active = 0
}

// Stats reports slot usage and the number of evictions so far.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Total:     len(p.slots),
		Active:    p.active,
		Inactive:  len(p.slots) - p.active,
		Evictions: p.evictions,
	}
}
