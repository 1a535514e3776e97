package navigation

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Navigator defines the push/pop stack the screens talk to.
type Navigator interface {
	Push(route Route, params Params) error
	Pop() bool
	Current() Entry
	Depth() int
}

// Entry is one screen on the stack
type Entry struct {
	Key    string
	Route  Route
	Params Params
	Title  string
}

// DetailParams returns the entry parameters when the entry is a detail screen
func (e Entry) DetailParams() (DetailParams, bool) {
	switch p := e.Params.(type) {
	case DetailParams:
		return p, true
	case *DetailParams:
		if p != nil {
			return *p, true
		}
	}
	return DetailParams{}, false
}

// Stack is the in-memory Navigator. The list route is always at the bottom.
type Stack struct {
	mu       sync.RWMutex
	entries  []Entry
	onChange func(Entry)
}

// NewStack creates a stack holding only the list screen
func NewStack() *Stack {
	return &Stack{
		entries: []Entry{newEntry(RouteList, ListParams{})},
	}
}

// SetChangeCallback sets the callback invoked after every push or pop
func (s *Stack) SetChangeCallback(callback func(Entry)) {
	s.mu.Lock()
	s.onChange = callback
	s.mu.Unlock()
}

// Push adds a screen on top of the stack
func (s *Stack) Push(route Route, params Params) error {
	if err := validate(route, params); err != nil {
		return fmt.Errorf("push %s: %w", route, err)
	}
	if params == nil {
		params = ListParams{}
	}

	entry := newEntry(route, params)

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	s.notify(entry)
	return nil
}

// Pop removes the top screen. The root entry is never popped.
func (s *Stack) Pop() bool {
	s.mu.Lock()
	if len(s.entries) <= 1 {
		s.mu.Unlock()
		return false
	}
	s.entries = s.entries[:len(s.entries)-1]
	top := s.entries[len(s.entries)-1]
	s.mu.Unlock()

	s.notify(top)
	return true
}

// Current returns the top entry
func (s *Stack) Current() Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[len(s.entries)-1]
}

// Depth returns the number of entries
func (s *Stack) Depth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// CanGoBack reports whether Pop would change the stack
func (s *Stack) CanGoBack() bool {
	return s.Depth() > 1
}

func (s *Stack) notify(entry Entry) {
	s.mu.RLock()
	callback := s.onChange
	s.mu.RUnlock()

	if callback != nil {
		callback(entry)
	}
}

func newEntry(route Route, params Params) Entry {
	return Entry{
		Key:    uuid.NewString(),
		Route:  route,
		Params: params,
		Title:  titleFor(route, params),
	}
}
