package draft

import (
	"errors"
	"fmt"
)

var (
	ErrAmbiguousLayout    = errors.New("only one slot can have more than one value")
	ErrDuplicateLayout    = errors.New("two slot values map to the same layout name")
	ErrDuplicateSingleton = errors.New("rarity appears in more than one single-value slot")
	ErrEmptySlot          = errors.New("slot has no values")
	ErrNoVariableSlot     = errors.New("layout has no slot with more than one value")
)

// ConfigurationError reports a pack layout that cannot be expanded.
type ConfigurationError struct {
	Layout string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Layout == "" {
		return "layout configuration: " + e.Err.Error()
	}
	return fmt.Sprintf("layout configuration %q: %v", e.Layout, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

type UnknownRarityError struct {
	Line  int
	Card  string
	Token string
}

func (e *UnknownRarityError) Error() string {
	return fmt.Sprintf("line %d: unknown rarity %q for card %q", e.Line, e.Token, e.Card)
}

// MalformedRowError is returned for data rows too short to carry a rarity column.
type MalformedRowError struct {
	Line   int
	Fields int
	Want   int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("line %d: expected at least %d fields, got %d", e.Line, e.Want, e.Fields)
}
