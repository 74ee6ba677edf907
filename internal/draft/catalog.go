package draft

// Catalog buckets card names by rarity, preserving insertion order within
// each bucket. Iteration over rarities follows severity order.
type Catalog struct {
	cards map[Rarity][]string
}

func NewCatalog() *Catalog {
	return &Catalog{cards: map[Rarity][]string{}}
}

func (c *Catalog) Add(r Rarity, name string) {
	if c.cards == nil {
		c.cards = map[Rarity][]string{}
	}
	c.cards[r] = append(c.cards[r], name)
}

func (c *Catalog) Cards(r Rarity) []string {
	return c.cards[r]
}

// Rarities returns the rarities holding at least one card.
func (c *Catalog) Rarities() []Rarity {
	var out []Rarity
	for _, r := range Rarities() {
		if len(c.cards[r]) > 0 {
			out = append(out, r)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	n := 0
	for _, names := range c.cards {
		n += len(names)
	}
	return n
}
