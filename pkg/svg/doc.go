// Package svg is a minimal in-memory SVG element tree.
//
// Shapes are built by appending or inserting [Element] values into a parent
// and serialized with [Element.Encode]. Text content is escaped by the
// encoding/xml serializer; no other escaping is applied.
//
// The tree mirrors the small subset of DOM operations the diagram renderers
// need: append, insert-before-first-child, and reading or amending the class
// attribute of a container.
package svg
