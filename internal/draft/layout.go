package draft

import "fmt"

// SlotValue pairs a rarity with a count. In a Slot the count is the relative
// print-run weight of that rarity; in a Layout it is the number of cards of
// that rarity placed in the pack.
type SlotValue struct {
	Rarity Rarity `yaml:"rarity"`
	Count  int    `yaml:"count"`
}

type Slot struct {
	Values []SlotValue `yaml:"values"`
}

func (s Slot) IsVariable() bool {
	return len(s.Values) > 1
}

// RawSlot is one slot shape and how many physical instances of it a pack holds.
type RawSlot struct {
	Slot      `yaml:",inline"`
	Instances int `yaml:"instances"`
}

type RawLayout []RawSlot

type Layout struct {
	Weight int
	Slots  []SlotValue
}

type NamedLayout struct {
	Name string
	Layout
}

// Layouts keeps named layouts in insertion order.
type Layouts struct {
	items []NamedLayout
	index map[string]int
}

func (l *Layouts) add(name string, layout Layout) error {
	if l.index == nil {
		l.index = map[string]int{}
	}
	if _, ok := l.index[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateLayout, name)
	}
	l.index[name] = len(l.items)
	l.items = append(l.items, NamedLayout{Name: name, Layout: layout})
	return nil
}

func (l Layouts) Len() int {
	return len(l.items)
}

func (l Layouts) Get(name string) (Layout, bool) {
	i, ok := l.index[name]
	if !ok {
		return Layout{}, false
	}
	return l.items[i].Layout, true
}

func (l Layouts) Names() []string {
	out := make([]string, 0, len(l.items))
	for _, it := range l.items {
		out = append(out, it.Name)
	}
	return out
}

// All returns a copy of the layouts in insertion order.
func (l Layouts) All() []NamedLayout {
	out := make([]NamedLayout, len(l.items))
	copy(out, l.items)
	return out
}

// Expand turns a raw slot description into one layout per outcome of its
// single variable slot. Every layout carries the variable outcome first,
// followed by each single-value slot in raw order.
//
// A raw layout without a variable slot yields no layouts and no error.
func Expand(raw RawLayout) (Layouts, error) {
	type singleton struct {
		rarity    Rarity
		instances int
	}

	var singles []singleton
	seen := map[Rarity]bool{}
	variable := -1

	for i, rs := range raw {
		switch {
		case len(rs.Values) == 0:
			return Layouts{}, &ConfigurationError{Err: fmt.Errorf("%w (slot %d)", ErrEmptySlot, i)}
		case rs.IsVariable():
			if variable >= 0 {
				return Layouts{}, &ConfigurationError{Err: fmt.Errorf("%w (slots %d and %d)", ErrAmbiguousLayout, variable, i)}
			}
			variable = i
		default:
			r := rs.Values[0].Rarity
			if seen[r] {
				return Layouts{}, &ConfigurationError{Err: fmt.Errorf("%w: %s", ErrDuplicateSingleton, r)}
			}
			seen[r] = true
			singles = append(singles, singleton{rarity: r, instances: rs.Instances})
		}
	}

	var out Layouts
	if variable < 0 {
		return out, nil
	}

	vs := raw[variable]
	for _, v := range vs.Values {
		slots := make([]SlotValue, 0, len(singles)+1)
		slots = append(slots, SlotValue{Rarity: v.Rarity, Count: vs.Instances})
		for _, s := range singles {
			slots = append(slots, SlotValue{Rarity: s.rarity, Count: s.instances})
		}
		if err := out.add(v.Rarity.String(), Layout{Weight: v.Count, Slots: slots}); err != nil {
			return Layouts{}, &ConfigurationError{Err: err}
		}
	}
	return out, nil
}
