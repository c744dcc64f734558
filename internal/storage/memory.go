package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"svw.info/truthpuzzle/internal/domain"
)

// Memory keeps play sessions in process memory. Once capacity is reached the
// least recently saved session is evicted.
type Memory struct {
	mu       sync.Mutex
	capacity int
	sessions map[string]*domain.Session
	order    []string // least recently saved first
}

func NewMemory(capacity int) *Memory {
	if capacity < 1 {
		capacity = 1
	}
	return &Memory{capacity: capacity, sessions: make(map[string]*domain.Session)}
}

func (s *Memory) Save(ctx context.Context, sess *domain.Session) error {
	if sess == nil || strings.TrimSpace(sess.ID) == "" {
		return errors.New("invalid session: missing ID")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sess.ID]; ok {
		s.forget(sess.ID)
	}
	for len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.sessions, oldest)
	}
	s.sessions[sess.ID] = sess.Clone()
	s.order = append(s.order, sess.ID)
	return nil
}

func (s *Memory) Load(ctx context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return sess.Clone(), nil
}

func (s *Memory) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	s.forget(id)
	delete(s.sessions, id)
	return nil
}

// Len reports how many sessions are held.
func (s *Memory) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Memory) forget(id string) {
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
