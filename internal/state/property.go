package state

import (
	"sync"

	"fyne.io/fyne/v2/data/binding"
)

// Property is a mutable observable value. Observers run synchronously
// inside Set, after the value is stored and outside the lock.
type Property[T any] struct {
	mu        sync.RWMutex
	val       T
	observers []*observer[T]
	items     map[binding.DataListener]func()
}

type observer[T any] struct {
	fn func(T)
}

// NewProperty returns a Property holding initial.
func NewProperty[T any](initial T) *Property[T] {
	return &Property[T]{val: initial}
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.val
}

// Set stores v and notifies every observer.
func (p *Property[T]) Set(v T) {
	p.mu.Lock()
	p.val = v
	obs := make([]*observer[T], len(p.observers))
	copy(obs, p.observers)
	p.mu.Unlock()

	for _, o := range obs {
		o.fn(v)
	}
}

// Modify replaces the value with fn(current).
func (p *Property[T]) Modify(fn func(T) T) {
	p.Set(fn(p.Get()))
}

// Observe registers fn for every subsequent change. The returned func
// removes it.
func (p *Property[T]) Observe(fn func(T)) (cancel func()) {
	o := &observer[T]{fn: fn}
	p.mu.Lock()
	p.observers = append(p.observers, o)
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, cur := range p.observers {
			if cur == o {
				p.observers = append(p.observers[:i], p.observers[i+1:]...)
				return
			}
		}
	}
}

// AddListener makes the property usable wherever Fyne expects a
// binding.DataItem. Like Fyne's own bindings, the listener is called once
// straight away.
func (p *Property[T]) AddListener(l binding.DataListener) {
	cancel := p.Observe(func(T) { l.DataChanged() })
	p.mu.Lock()
	if p.items == nil {
		p.items = make(map[binding.DataListener]func())
	}
	p.items[l] = cancel
	p.mu.Unlock()
	l.DataChanged()
}

// RemoveListener detaches a listener added with AddListener.
func (p *Property[T]) RemoveListener(l binding.DataListener) {
	p.mu.Lock()
	cancel, ok := p.items[l]
	delete(p.items, l)
	p.mu.Unlock()
	if ok {
		cancel()
	}
}

// Derived is a read-only value computed from another observable.
type Derived[T any] struct {
	cell *Property[T]
}

// Source is anything a Derived can be computed from.
type Source[S any] interface {
	Get() S
	Observe(fn func(S)) (cancel func())
}

// Map derives a read-only value from src. The value is computed now and
// again, synchronously, on every change of src.
func Map[S, T any](src Source[S], fn func(S) T) *Derived[T] {
	d := &Derived[T]{cell: NewProperty(fn(src.Get()))}
	src.Observe(func(v S) { d.cell.Set(fn(v)) })
	return d
}

// Get returns the current derived value.
func (d *Derived[T]) Get() T { return d.cell.Get() }

// Observe registers fn for every recomputation.
func (d *Derived[T]) Observe(fn func(T)) (cancel func()) { return d.cell.Observe(fn) }

func (d *Derived[T]) AddListener(l binding.DataListener)    { d.cell.AddListener(l) }
func (d *Derived[T]) RemoveListener(l binding.DataListener) { d.cell.RemoveListener(l) }

var (
	_ binding.DataItem = (*Property[int])(nil)
	_ binding.DataItem = (*Derived[int])(nil)
	_ Source[int]      = (*Derived[int])(nil)
)
