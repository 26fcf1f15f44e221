package deck

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/youruser/deckcode/internal/cards"
)

// MaxCopies is the cap on copies of a single card.
const MaxCopies = 3

var ErrUnknownCard = errors.New("unknown card")

// Lookuper resolves catalog ids. *cards.Catalog satisfies it.
type Lookuper interface {
	Lookup(id int) (cards.Card, bool)
}

type Entry struct {
	Card  cards.Card `json:"card"`
	Count int        `json:"count"`
}

// State owns the contents of one deck. Every mutation builds a new map and
// swaps it in, so readers only ever see a whole deck.
type State struct {
	catalog Lookuper
	entries map[int]Entry
}

func NewState(catalog Lookuper) *State {
	return &State{catalog: catalog, entries: map[int]Entry{}}
}

// FromEntries builds a State holding the given entries, typically the output
// of Decode.
func FromEntries(catalog Lookuper, entries []Entry) (*State, error) {
	m := make(map[int]Entry, len(entries))
	for _, e := range entries {
		if e.Count < 1 || e.Count > MaxCopies {
			return nil, errors.Errorf("card %d: count %d out of range [1,%d]", e.Card.ID, e.Count, MaxCopies)
		}
		card, ok := catalog.Lookup(e.Card.ID)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownCard, "card %d", e.Card.ID)
		}
		if _, dup := m[card.ID]; dup {
			return nil, errors.Errorf("card %d listed twice", card.ID)
		}
		m[card.ID] = Entry{Card: card, Count: e.Count}
	}
	return &State{catalog: catalog, entries: m}, nil
}

func (s *State) clone() map[int]Entry {
	m := make(map[int]Entry, len(s.entries)+1)
	for k, v := range s.entries {
		m[k] = v
	}
	return m
}

// Add puts one more copy of a card in the deck. At MaxCopies it does nothing.
func (s *State) Add(id int) error {
	card, ok := s.catalog.Lookup(id)
	if !ok {
		return errors.Wrapf(ErrUnknownCard, "card %d", id)
	}
	e, exists := s.entries[id]
	if exists && e.Count >= MaxCopies {
		return nil
	}
	next := s.clone()
	if exists {
		e.Count++
		next[id] = e
	} else {
		next[id] = Entry{Card: card, Count: 1}
	}
	s.entries = next
	return nil
}

// Remove takes one copy out; the last copy removes the entry.
func (s *State) Remove(id int) {
	e, ok := s.entries[id]
	if !ok {
		return
	}
	next := s.clone()
	if e.Count > 1 {
		e.Count--
		next[id] = e
	} else {
		delete(next, id)
	}
	s.entries = next
}

func (s *State) Reset() {
	s.entries = map[int]Entry{}
}

func (s *State) Count(id int) int {
	return s.entries[id].Count
}

func (s *State) TotalCount() int {
	total := 0
	for _, e := range s.entries {
		total += e.Count
	}
	return total
}

// Entries lists the deck by card type priority, then catalog id.
func (s *State) Entries() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	SortForDisplay(out)
	return out
}

// Code is the deck code for the current contents.
func (s *State) Code() string {
	return Encode(s.Entries())
}

func SortForDisplay(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		pi, pj := entries[i].Card.Type.Priority(), entries[j].Card.Type.Priority()
		if pi != pj {
			return pi < pj
		}
		return entries[i].Card.ID < entries[j].Card.ID
	})
}
