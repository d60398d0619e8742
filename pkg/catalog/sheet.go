package catalog

import (
	"github.com/matzehuels/umlsvg/pkg/errors"
	"github.com/matzehuels/umlsvg/pkg/uml"
)

// Placement positions a catalog box inside a sheet. Offsets are relative to
// the package symbol's top-left corner.
type Placement struct {
	Box  string
	X, Y float64
}

// Sheet is a package symbol with placed members.
type Sheet struct {
	Package *uml.Package
	Members []Placement
}

// NewSheet creates a sheet around a package symbol of the given size.
func NewSheet(name string, width, height float64) *Sheet {
	return &Sheet{Package: uml.NewPackage(name, width, height)}
}

// Name is the package name.
func (s *Sheet) Name() string { return s.Package.Name() }

// Place adds a member at (x, y).
func (s *Sheet) Place(box string, x, y float64) *Sheet {
	s.Members = append(s.Members, Placement{Box: box, X: x, Y: y})
	return s
}

// Resolve looks up every member box in c.
func (s *Sheet) Resolve(c *Catalog) ([]*uml.Box, error) {
	boxes := make([]*uml.Box, len(s.Members))
	for i, m := range s.Members {
		b, ok := c.Lookup(m.Box)
		if !ok {
			return nil, errors.New(errors.ErrCodeBoxNotFound, "sheet %s places unknown box %q", s.Name(), m.Box)
		}
		boxes[i] = b
	}
	return boxes, nil
}
