package draft

import (
	"fmt"
	"strings"
)

type Rarity int

// Declaration order is the severity order used for deterministic output.
const (
	Common Rarity = iota
	Uncommon
	Rare
	Mythic
	Special
)

var rarityNames = [...]string{
	Common:   "Common",
	Uncommon: "Uncommon",
	Rare:     "Rare",
	Mythic:   "Mythic",
	Special:  "Special",
}

func Rarities() []Rarity {
	return []Rarity{Common, Uncommon, Rare, Mythic, Special}
}

func (r Rarity) String() string {
	if r < 0 || int(r) >= len(rarityNames) {
		return fmt.Sprintf("Rarity(%d)", int(r))
	}
	return rarityNames[r]
}

func (r Rarity) Valid() bool {
	return r >= Common && r <= Special
}

// ParseRarity maps the lowercase export token (e.g. "mythic") to a Rarity.
func ParseRarity(token string) (Rarity, bool) {
	switch token {
	case "common":
		return Common, true
	case "uncommon":
		return Uncommon, true
	case "rare":
		return Rare, true
	case "mythic":
		return Mythic, true
	case "special":
		return Special, true
	default:
		return 0, false
	}
}

func (r Rarity) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid rarity %d", int(r))
	}
	return []byte(strings.ToLower(r.String())), nil
}

// UnmarshalText accepts the export token or the display name.
func (r *Rarity) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if v, ok := ParseRarity(s); ok {
		*r = v
		return nil
	}
	for _, v := range Rarities() {
		if v.String() == s {
			*r = v
			return nil
		}
	}
	return fmt.Errorf("unknown rarity %q", s)
}
