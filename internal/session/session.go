package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sailakshmimedida/Menu-Management/internal/menu"
	"github.com/sailakshmimedida/Menu-Management/internal/order"
)

var ErrSessionNotFound = errors.New("session not found")

// Session carries the state one visitor works against: a seeded
// catalog and an empty order. Created at session start, discarded at
// session end, never shared between visitors.
type Session struct {
	ID        string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`

	Menu  *menu.Service  `json:"-"`
	Order *order.Service `json:"-"`
}

// Store holds the live sessions keyed by id.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Create starts a session with the seeded starting menu and an empty
// order.
func (s *Store) Create() *Session {
	menuService := menu.NewService(menu.NewSeededRepository())

	sess := &Session{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Menu:      menuService,
		Order:     order.NewService(menuService),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Delete discards a session. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Menu implements menu.Sessions.
func (s *Store) Menu(id string) (*menu.Service, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return sess.Menu, nil
}

// Order implements order.Sessions.
func (s *Store) Order(id string) (*order.Service, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return sess.Order, nil
}
