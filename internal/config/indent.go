package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidIndentationStyle is returned for style strings outside the accepted grammar.
var ErrInvalidIndentationStyle = errors.New(
	"invalid indentation style, expected a string like 'N tabs', 'N spaces', 'tabs' or 'spaces'")

// IndentKind is the character used for indentation.
type IndentKind int

const (
	Tabs IndentKind = iota
	Spaces
)

// Char returns the indentation character of the kind.
func (k IndentKind) Char() rune {
	if k == Tabs {
		return '\t'
	}
	return ' '
}

// String returns the plural name of the kind, as used in messages.
func (k IndentKind) String() string {
	if k == Tabs {
		return "tabs"
	}
	return "spaces"
}

// Other returns the kind that is not k.
func (k IndentKind) Other() IndentKind {
	if k == Tabs {
		return Spaces
	}
	return Tabs
}

// IndentationStyle describes the indentation a file must use: every line
// starts with a multiple of Amount Kind characters.
//
// An Amount of 1 allows any number of indentation characters and only
// enforces the kind. With Spaces and an Amount of 4, continuation lines
// aligned to an opening parenthesis at column 6 are rejected:
//
//	my_fn(first_parameter,
//	      second_parameter)
type IndentationStyle struct {
	Kind   IndentKind
	Amount uint64
}

// String renders the style in the same grammar ParseIndentationStyle accepts.
func (s IndentationStyle) String() string {
	return fmt.Sprintf("%d %s", s.Amount, s.Kind)
}

// ParseIndentationStyle parses "N tab", "N tabs", "N space", "N spaces",
// "tabs" or "spaces". The bare forms set an Amount of 1. N must be at least 1.
func ParseIndentationStyle(s string) (IndentationStyle, error) {
	parts := strings.Fields(s)

	switch len(parts) {
	case 1:
		switch parts[0] {
		case "tabs":
			return IndentationStyle{Kind: Tabs, Amount: 1}, nil
		case "spaces":
			return IndentationStyle{Kind: Spaces, Amount: 1}, nil
		}
	case 2:
		amount, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil || amount == 0 {
			break
		}
		switch parts[1] {
		case "tab", "tabs":
			return IndentationStyle{Kind: Tabs, Amount: amount}, nil
		case "space", "spaces":
			return IndentationStyle{Kind: Spaces, Amount: amount}, nil
		}
	}

	return IndentationStyle{}, fmt.Errorf("%w: got %q", ErrInvalidIndentationStyle, s)
}
