package deck

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Deck code format: up to three groups, one per copy count, in the order
// 1, 2, 3 copies. A group is a marker of 1-3 'Z' followed by two-digit
// base-35 tokens holding catalog id + 1, ascending.
const (
	base35Digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXY"
	marker       = 'Z'
	tokenWidth   = 2
)

var (
	ErrMalformedMarker = errors.New("malformed group marker")
	ErrDuplicateGroup  = errors.New("duplicate group")
	ErrInvalidDigit    = errors.New("invalid base-35 digit")
	ErrTruncatedToken  = errors.New("truncated token")
	ErrMissingMarker   = errors.New("token outside any group")
	ErrDuplicateCard   = errors.New("card listed twice")
	ErrUnorderedIDs    = errors.New("ids out of order")
)

// DecodeError reports where and why a deck code could not be decoded.
type DecodeError struct {
	Pos      int
	Fragment string
	Reason   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("deck code: %v at offset %d (%q)", e.Reason, e.Pos, e.Fragment)
}

func (e *DecodeError) Unwrap() error { return e.Reason }

// Cause lets errors.Cause from github.com/pkg/errors reach the reason.
func (e *DecodeError) Cause() error { return e.Reason }

func toBase35(n int) string {
	if n == 0 {
		return "00"
	}
	var b []byte
	for n > 0 {
		b = append([]byte{base35Digits[n%35]}, b...)
		n /= 35
	}
	s := string(b)
	if len(s) < tokenWidth {
		s = strings.Repeat("0", tokenWidth-len(s)) + s
	}
	return s
}

// Encode returns the deck code for entries given in any order. Entries with
// a count outside 1..3 are not representable and are skipped. Catalog ids
// above cards.MaxCardID produce tokens wider than two digits and cannot be
// decoded.
func Encode(entries []Entry) string {
	var groups [MaxCopies][]int
	for _, e := range entries {
		if e.Count < 1 || e.Count > MaxCopies {
			continue
		}
		groups[e.Count-1] = append(groups[e.Count-1], e.Card.ID+1)
	}

	var sb strings.Builder
	for i, ids := range groups {
		if len(ids) == 0 {
			continue
		}
		sort.Ints(ids)
		sb.WriteString(strings.Repeat(string(marker), i+1))
		for _, id := range ids {
			sb.WriteString(toBase35(id))
		}
	}
	return sb.String()
}

func digitValue(c byte) int {
	return strings.IndexByte(base35Digits, c)
}

// Decode parses a deck code back into entries, resolving each id against the
// catalog. The result is in display order.
func Decode(code string, catalog Lookuper) ([]Entry, error) {
	out := []Entry{}
	seenCard := map[int]bool{}
	lastGroup := 0
	active := 0
	prev := 0

	// Fragments end on a rune boundary so non-ASCII input stays readable.
	fail := func(pos, end int, reason error) error {
		if end > len(code) {
			end = len(code)
		}
		for end < len(code) && !utf8.RuneStart(code[end]) {
			end++
		}
		return &DecodeError{Pos: pos, Fragment: code[pos:end], Reason: reason}
	}

	pos := 0
	for pos < len(code) {
		if code[pos] == marker {
			start := pos
			for pos < len(code) && code[pos] == marker {
				pos++
			}
			n := pos - start
			switch {
			case n > MaxCopies:
				return nil, fail(start, pos, ErrMalformedMarker)
			case n == lastGroup:
				return nil, fail(start, pos, ErrDuplicateGroup)
			case n < lastGroup:
				return nil, fail(start, pos, errors.Wrap(ErrMalformedMarker, "group out of order"))
			case pos == len(code):
				return nil, fail(start, pos, errors.Wrap(ErrMalformedMarker, "empty group"))
			}
			lastGroup, active, prev = n, n, 0
			continue
		}

		if active == 0 {
			return nil, fail(pos, pos+tokenWidth, ErrMissingMarker)
		}
		if pos+tokenWidth > len(code) {
			return nil, fail(pos, len(code), ErrTruncatedToken)
		}
		tok := code[pos : pos+tokenWidth]
		value := 0
		for i := 0; i < tokenWidth; i++ {
			d := digitValue(tok[i])
			if d < 0 {
				return nil, fail(pos, pos+tokenWidth, ErrInvalidDigit)
			}
			value = value*35 + d
		}

		id := value - 1
		card, ok := catalog.Lookup(id)
		if !ok {
			return nil, fail(pos, pos+tokenWidth, errors.Wrapf(ErrUnknownCard, "card %d", id))
		}
		if seenCard[id] {
			return nil, fail(pos, pos+tokenWidth, ErrDuplicateCard)
		}
		if value <= prev {
			return nil, fail(pos, pos+tokenWidth, ErrUnorderedIDs)
		}
		prev = value
		seenCard[id] = true
		out = append(out, Entry{Card: card, Count: active})
		pos += tokenWidth
	}

	SortForDisplay(out)
	return out, nil
}
