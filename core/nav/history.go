package nav

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/atomic"
)

// History is one client's navigation session over a Controller: a current
// activation plus back and forward stacks. Safe for concurrent use.
//
// The latest navigation request wins. A navigation still loading its
// components when a newer one starts returns ErrSuperseded once its loads
// finish, and leaves the session untouched.
type History[T any] struct {
	ctrl *Controller[T]
	gen  atomic.Uint64

	mu      sync.Mutex
	current *Activation[T]
	back    stack
	forward stack
}

type mode uint8

const (
	modePush mode = iota
	modeReplace
	modeBack
	modeForward
)

// Push navigates to path and records the previous location for Back.
// Pushing the current path again is a no-op that returns the current
// activation.
func (h *History[T]) Push(ctx context.Context, path string) (*Activation[T], error) {
	return h.navigate(ctx, path, modePush)
}

// PushName navigates to a named route.
func (h *History[T]) PushName(ctx context.Context, name string, params map[string]string) (*Activation[T], error) {
	p, err := h.ctrl.Href(name, params)
	if err != nil {
		return nil, err
	}
	return h.navigate(ctx, p, modePush)
}

// Replace navigates to path without recording the previous location.
func (h *History[T]) Replace(ctx context.Context, path string) (*Activation[T], error) {
	return h.navigate(ctx, path, modeReplace)
}

// Back returns to the previous location. Fails with ErrNoHistory at the start.
func (h *History[T]) Back(ctx context.Context) (*Activation[T], error) {
	h.mu.Lock()
	prev := h.back.peek()
	h.mu.Unlock()

	if prev == nil {
		return nil, ErrNoHistory
	}
	return h.navigate(ctx, prev.path, modeBack)
}

// Forward re-applies a location undone by Back.
func (h *History[T]) Forward(ctx context.Context) (*Activation[T], error) {
	h.mu.Lock()
	next := h.forward.peek()
	h.mu.Unlock()

	if next == nil {
		return nil, ErrNoHistory
	}
	return h.navigate(ctx, next.path, modeForward)
}

// Current returns the active location, nil before the first navigation.
func (h *History[T]) Current() *Activation[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Len returns the number of entries reachable by Back plus the current one.
func (h *History[T]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := h.back.len()
	if h.current != nil {
		n++
	}
	return n
}

func (h *History[T]) navigate(ctx context.Context, path string, m mode) (*Activation[T], error) {
	token := h.gen.Inc()

	if m == modePush {
		h.mu.Lock()
		cur := h.current
		h.mu.Unlock()
		if cur != nil && h.ctrl.withBase(cur.Match.Path) == cleanPath(stripQuery(path)) {
			return cur, nil
		}
	}

	act, err := h.ctrl.Activate(ctx, path)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.gen.Load() != token {
		return nil, fmt.Errorf("%w: %q", ErrSuperseded, path)
	}
	if err != nil {
		return nil, err
	}

	switch m {
	case modePush:
		if h.current != nil {
			h.back.push(entry{path: h.ctrl.withBase(h.current.Match.Path)})
		}
		h.forward.clear()
	case modeBack:
		h.back.pop()
		if h.current != nil {
			h.forward.push(entry{path: h.ctrl.withBase(h.current.Match.Path)})
		}
	case modeForward:
		h.forward.pop()
		if h.current != nil {
			h.back.push(entry{path: h.ctrl.withBase(h.current.Match.Path)})
		}
	}

	h.current = act
	return act, nil
}

type entry struct {
	path string
}

// stack holds history entries, most recent last.
type stack struct {
	entries []entry
}

func (s *stack) push(e entry) {
	s.entries = append(s.entries, e)
}

func (s *stack) pop() *entry {
	if len(s.entries) == 0 {
		return nil
	}
	e := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &e
}

func (s *stack) peek() *entry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

func (s *stack) len() int {
	return len(s.entries)
}

func (s *stack) clear() {
	s.entries = s.entries[:0]
}
