// Package navstack implements the visible screen stack decisions are
// applied to. Redirects replace the top entry; history below the top is
// never discarded, so back navigation to ungated screens keeps working.
package navstack

import "sync"

// Entry is one screen on the stack.
type Entry struct {
	Path string
}

// Stack is a concurrency-safe navigation stack implementing
// ports.NavStack.
type Stack struct {
	mu      sync.Mutex
	entries []Entry
}

// New creates an empty stack, optionally seeded with initial paths
// (bottom first).
func New(initial ...string) *Stack {
	s := &Stack{}
	for _, p := range initial {
		s.entries = append(s.entries, Entry{Path: p})
	}
	return s
}

// Push appends a new top entry.
func (s *Stack) Push(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, Entry{Path: path})
}

// ReplaceTop swaps the top entry without touching the rest of the
// history. On an empty stack it behaves like Push.
func (s *Stack) ReplaceTop(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		s.entries = append(s.entries, Entry{Path: path})
		return
	}
	s.entries[len(s.entries)-1] = Entry{Path: path}
}

// Pop removes and returns the top entry, or nil when empty.
func (s *Stack) Pop() *Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Current returns the path of the top entry, or "" when empty.
func (s *Stack) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return ""
	}
	return s.entries[len(s.entries)-1].Path
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// History returns a copy of the stack paths, bottom first.
func (s *Stack) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Path
	}
	return out
}
