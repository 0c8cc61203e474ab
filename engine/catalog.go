package engine

// Catalog is a fixed, ordered set of card definitions.
type Catalog struct {
	defs []CardDef
	byID map[string]int
}

// NewCatalog builds a catalog from defs. Later duplicates of an id shadow
// earlier ones for Lookup but every entry still takes part in draws.
func NewCatalog(defs []CardDef) Catalog {
	c := Catalog{
		defs: append([]CardDef(nil), defs...),
		byID: make(map[string]int, len(defs)),
	}
	for i, d := range c.defs {
		c.byID[d.ID] = i
	}
	return c
}

// DefaultCatalog returns the standard nine item cards.
func DefaultCatalog() Catalog {
	return NewCatalog([]CardDef{
		{ID: "p10", Label: "+10", Effect: Add{Amount: 10}},
		{ID: "p20", Label: "+20", Effect: Add{Amount: 20}},
		{ID: "p30", Label: "+30", Effect: Add{Amount: 30}},
		{ID: "m10", Label: "-10", Effect: Add{Amount: -10}},
		{ID: "m30", Label: "-30", Effect: Add{Amount: -30}},
		{ID: "m50", Label: "-50", Effect: Add{Amount: -50}},
		{ID: "rev", Label: "Reverse", Effect: Reverse{}},
		{ID: "skip", Label: "Skip", Effect: Skip{}},
		{ID: "poison", Label: "Poison", Effect: Poison{}},
	})
}

// Lookup returns the definition for id.
func (c Catalog) Lookup(id string) (CardDef, bool) {
	i, ok := c.byID[id]
	if !ok {
		return CardDef{}, false
	}
	return c.defs[i], true
}

// Len returns the number of definitions.
func (c Catalog) Len() int { return len(c.defs) }

// Defs returns a copy of the definitions in catalog order.
func (c Catalog) Defs() []CardDef {
	return append([]CardDef(nil), c.defs...)
}

// at returns the definition at position i.
func (c Catalog) at(i int) CardDef { return c.defs[i] }
