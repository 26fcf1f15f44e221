package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/youruser/deckcode/internal/deck"
)

var ErrNotFound = errors.New("deck not found")

// Snapshot is a consistent view of one deck.
type Snapshot struct {
	ID      string       `json:"id"`
	Entries []deck.Entry `json:"entries"`
	Total   int          `json:"total"`
	Code    string       `json:"code"`
}

type slot struct {
	mu    sync.Mutex
	state *deck.State
}

// Store keeps live decks in memory. Each deck is mutated under its own lock
// and the code is recomputed after every change.
type Store struct {
	catalog deck.Lookuper

	mu    sync.RWMutex
	decks map[string]*slot
}

func New(catalog deck.Lookuper) *Store {
	return &Store{catalog: catalog, decks: map[string]*slot{}}
}

func (s *Store) put(st *deck.State) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.decks[id] = &slot{state: st}
	s.mu.Unlock()
	return id
}

func (s *Store) slot(id string) (*slot, error) {
	s.mu.RLock()
	sl, ok := s.decks[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "deck %s", id)
	}
	return sl, nil
}

func snapshot(id string, st *deck.State) Snapshot {
	entries := st.Entries()
	return Snapshot{ID: id, Entries: entries, Total: st.TotalCount(), Code: deck.Encode(entries)}
}

func (s *Store) Create() Snapshot {
	st := deck.NewState(s.catalog)
	return snapshot(s.put(st), st)
}

// Import decodes a deck code into a new deck.
func (s *Store) Import(code string) (Snapshot, error) {
	entries, err := deck.Decode(code, s.catalog)
	if err != nil {
		return Snapshot{}, err
	}
	st, err := deck.FromEntries(s.catalog, entries)
	if err != nil {
		return Snapshot{}, err
	}
	return snapshot(s.put(st), st), nil
}

func (s *Store) Get(id string) (Snapshot, error) {
	sl, err := s.slot(id)
	if err != nil {
		return Snapshot{}, err
	}
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return snapshot(id, sl.state), nil
}

func (s *Store) Add(id string, cardID int) (Snapshot, error) {
	sl, err := s.slot(id)
	if err != nil {
		return Snapshot{}, err
	}
	sl.mu.Lock()
	defer sl.mu.Unlock()
	if err := sl.state.Add(cardID); err != nil {
		return Snapshot{}, err
	}
	return snapshot(id, sl.state), nil
}

func (s *Store) Remove(id string, cardID int) (Snapshot, error) {
	sl, err := s.slot(id)
	if err != nil {
		return Snapshot{}, err
	}
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.state.Remove(cardID)
	return snapshot(id, sl.state), nil
}

func (s *Store) Reset(id string) (Snapshot, error) {
	sl, err := s.slot(id)
	if err != nil {
		return Snapshot{}, err
	}
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.state.Reset()
	return snapshot(id, sl.state), nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.decks[id]; !ok {
		return errors.Wrapf(ErrNotFound, "deck %s", id)
	}
	delete(s.decks, id)
	return nil
}
