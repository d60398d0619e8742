package catalog

import (
	"github.com/matzehuels/umlsvg/pkg/errors"
	"github.com/matzehuels/umlsvg/pkg/uml"
)

// Catalog is an ordered set of named boxes and sheets.
type Catalog struct {
	Name string

	boxes  []*uml.Box
	index  map[string]int
	sheets []*Sheet
}

// New creates an empty catalog.
func New(name string) *Catalog {
	return &Catalog{Name: name, index: make(map[string]int)}
}

// Add stores b. A box with the same name is replaced in place, so the last
// declaration wins while the first one fixes the position.
func (c *Catalog) Add(b *uml.Box) *uml.Box {
	if i, ok := c.index[b.Name()]; ok {
		c.boxes[i] = b
		return b
	}
	c.index[b.Name()] = len(c.boxes)
	c.boxes = append(c.boxes, b)
	return b
}

// Class declares a new class box.
func (c *Catalog) Class(name string) *uml.Box {
	return c.Add(uml.NewClass(name))
}

// Interface declares a new interface box.
func (c *Catalog) Interface(name string) *uml.Box {
	return c.Add(uml.NewInterface(name))
}

// Lookup returns the box with the given name.
func (c *Catalog) Lookup(name string) (*uml.Box, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.boxes[i], true
}

// Box is Lookup with a BOX_NOT_FOUND error.
func (c *Catalog) Box(name string) (*uml.Box, error) {
	b, ok := c.Lookup(name)
	if !ok {
		return nil, errors.New(errors.ErrCodeBoxNotFound, "no box named %q in catalog %s", name, c.Name)
	}
	return b, nil
}

// Boxes returns the boxes in declaration order.
func (c *Catalog) Boxes() []*uml.Box {
	return append([]*uml.Box(nil), c.boxes...)
}

// Names returns box names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.boxes))
	for i, b := range c.boxes {
		names[i] = b.Name()
	}
	return names
}

// Len is the number of boxes.
func (c *Catalog) Len() int { return len(c.boxes) }

// AddSheet stores s, replacing a sheet with the same name.
func (c *Catalog) AddSheet(s *Sheet) {
	for i, existing := range c.sheets {
		if existing.Name() == s.Name() {
			c.sheets[i] = s
			return
		}
	}
	c.sheets = append(c.sheets, s)
}

// Sheet returns the sheet with the given name.
func (c *Catalog) Sheet(name string) (*Sheet, error) {
	for _, s := range c.sheets {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, errors.New(errors.ErrCodeSheetNotFound, "no sheet named %q in catalog %s", name, c.Name)
}

// Sheets returns the sheets in declaration order.
func (c *Catalog) Sheets() []*Sheet {
	return append([]*Sheet(nil), c.sheets...)
}
