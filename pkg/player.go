package pkg

import (
	"errors"
	"sort"
	"sync"
	"time"
)

var ErrTooManySessions = errors.New("server: too many sessions")

// Session is one remote terminal running its own hot-seat game
type Session struct {
	Name    string
	User    string
	Remote  string
	Term    string
	Started time.Time
}

type Sessions struct {
	mu   sync.Mutex
	byID map[string]*Session
}

func NewSessions() *Sessions {
	return &Sessions{byID: make(map[string]*Session)}
}

// Add registers s under a fresh name. A positive limit caps the number of
// active sessions.
func (ss *Sessions) Add(s *Session, limit int) (*Session, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if limit > 0 && len(ss.byID) >= limit {
		return nil, ErrTooManySessions
	}

	name := SessionName()
	for _, taken := ss.byID[name]; taken; _, taken = ss.byID[name] {
		name = SessionName()
	}
	s.Name = name
	ss.byID[name] = s
	return s, nil
}

func (ss *Sessions) Remove(name string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.byID, name)
}

func (ss *Sessions) Count() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return len(ss.byID)
}

// Names lists active session names in order
func (ss *Sessions) Names() []string {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	names := make([]string, 0, len(ss.byID))
	for n := range ss.byID {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
