package scheduler

import (
	"context"
	"sync"
)

// Set groups handles so they can be canceled or waited on together. Members leave the
// set on their own once they finish.
type Set struct {
	mu    sync.Mutex
	items map[*Async]struct{}
}

func NewSet() *Set {
	return &Set{items: make(map[*Async]struct{})}
}

func (s *Set) Add(a *Async) {
	s.mu.Lock()
	if _, found := s.items[a]; found {
		s.mu.Unlock()
		return
	}
	s.items[a] = struct{}{}
	s.mu.Unlock()

	a.AddCallback(s.remove)
}

func (s *Set) remove(a *Async) {
	s.mu.Lock()
	delete(s.items, a)
	s.mu.Unlock()
}

func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Set) IsEmpty() bool {
	return s.Len() == 0
}

// Cancel requests cancellation of every member.
func (s *Set) Cancel() {
	for _, a := range s.members() {
		a.Cancel()
	}
}

// Clear forgets all members without waiting for them.
func (s *Set) Clear() {
	s.mu.Lock()
	clear(s.items)
	s.mu.Unlock()
}

// Wait blocks until every current member has finished or ctx is done.
func (s *Set) Wait(ctx context.Context) error {
	for _, a := range s.members() {
		if err := a.WaitContext(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Set) members() []*Async {
	s.mu.Lock()
	defer s.mu.Unlock()

	members := make([]*Async, 0, len(s.items))
	for a := range s.items {
		members = append(members, a)
	}
	return members
}
