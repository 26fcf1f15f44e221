package cards

import "github.com/pkg/errors"

// MaxCardID is the largest id a deck code can carry: display ids (id+1) must
// fit in two base-35 digits.
const MaxCardID = 35*35 - 2

// Catalog is the immutable, ordered card list loaded at startup.
type Catalog struct {
	cards []Card
	index map[int]int
}

func NewCatalog(cs []Card) (*Catalog, error) {
	c := &Catalog{
		cards: make([]Card, 0, len(cs)),
		index: make(map[int]int, len(cs)),
	}
	for _, card := range cs {
		if card.ID < 0 || card.ID > MaxCardID {
			return nil, errors.Errorf("card %q: id %d out of range [0,%d]", card.Name, card.ID, MaxCardID)
		}
		if _, dup := c.index[card.ID]; dup {
			return nil, errors.Errorf("card %q: duplicate id %d", card.Name, card.ID)
		}
		c.index[card.ID] = len(c.cards)
		c.cards = append(c.cards, card)
	}
	return c, nil
}

func (c *Catalog) Lookup(id int) (Card, bool) {
	i, ok := c.index[id]
	if !ok {
		return Card{}, false
	}
	return c.cards[i], true
}

// Cards returns a copy of the catalog in insertion order.
func (c *Catalog) Cards() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

func (c *Catalog) Len() int {
	return len(c.cards)
}
