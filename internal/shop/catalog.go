// Package shop holds the static clothing catalog.
package shop

// Category is an outfit slot. Each slot holds at most one item.
type Category string

const (
	CategoryHead  Category = "head"
	CategoryUpper Category = "upper"
	CategoryLower Category = "lower"
	CategoryFeet  Category = "feet"
)

// Categories lists the outfit slots from head to toe.
var Categories = []Category{CategoryHead, CategoryUpper, CategoryLower, CategoryFeet}

// Valid reports whether c is a known slot.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// Rarity of an item, for display only.
type Rarity string

const (
	RarityCommon Rarity = "common"
	RarityRare   Rarity = "rare"
	RarityEpic   Rarity = "epic"
)

// Age is the pet's cosmetic tier. Items may be restricted to one of them.
type Age string

const (
	AgeChild  Age = "child"
	AgeParent Age = "parent"
)

// Valid reports whether a is a known age.
func (a Age) Valid() bool {
	return a == AgeChild || a == AgeParent
}

// Item is a catalog entry.
type Item struct {
	ID             string
	Name           string
	Description    string
	Icon           string
	Price          int
	Category       Category
	Rarity         Rarity
	AgeRestriction Age // empty means any age
}

// AllowedFor reports whether a pet of the given age may wear the item.
func (i Item) AllowedFor(age Age) bool {
	return i.AgeRestriction == "" || i.AgeRestriction == age
}

// Listing is an item together with whether the pet owns it.
type Listing struct {
	Item
	Unlocked bool
}

// Catalog is an immutable, indexed item table.
type Catalog struct {
	items []Item
	index map[string]int
}

// NewCatalog indexes items by id. Later duplicates are ignored.
func NewCatalog(items []Item) *Catalog {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, it := range items {
		if _, dup := c.index[it.ID]; dup {
			continue
		}
		c.index[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}
	return c
}

// Lookup returns the item with the given id.
func (c *Catalog) Lookup(id string) (Item, bool) {
	i, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Items returns a copy of the catalog in display order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// ByCategory returns the items of one slot in display order.
func (c *Catalog) ByCategory(cat Category) []Item {
	var out []Item
	for _, it := range c.items {
		if it.Category == cat {
			out = append(out, it)
		}
	}
	return out
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Listings returns every item with Unlocked computed by owned.
func (c *Catalog) Listings(owned func(id string) bool) []Listing {
	out := make([]Listing, len(c.items))
	for i, it := range c.items {
		out[i] = Listing{Item: it, Unlocked: owned != nil && owned(it.ID)}
	}
	return out
}

// FilterForAge drops listings the given age may not wear.
func FilterForAge(listings []Listing, age Age) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if l.AllowedFor(age) {
			out = append(out, l)
		}
	}
	return out
}
