package cards

import (
	"strings"

	"github.com/pkg/errors"
)

type CardType string

const (
	TypeUnit     CardType = "unit"
	TypeSupport  CardType = "support"
	TypeBuilding CardType = "building"
	TypeField    CardType = "field"
)

// Priority is the display rank of a card type. Unknown types sort last.
func (t CardType) Priority() int {
	switch t {
	case TypeUnit:
		return 1
	case TypeSupport:
		return 2
	case TypeBuilding:
		return 3
	case TypeField:
		return 4
	}
	return 5
}

func ParseCardType(s string) (CardType, error) {
	t := CardType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TypeUnit, TypeSupport, TypeBuilding, TypeField:
		return t, nil
	}
	return "", errors.Errorf("unknown card type %q", s)
}

type Card struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Type     CardType `json:"type"`
	Effect   string   `json:"effect"`
	Group    string   `json:"group"`
	Cost     *int     `json:"cost,omitempty"`
	Attack   *int     `json:"attack,omitempty"`
	Defense  *int     `json:"defense,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
}
