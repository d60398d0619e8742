// Package uml lays out and draws UML-style class boxes and package symbols.
//
// A [Box] is a class or interface rectangle with a name section and optional
// attribute, method and note sections. A [Package] is a folder-shaped
// container drawn behind boxes already placed inside it. Both implement
// [Shape]: given a [Target] container and a [Config], they insert positioned
// SVG primitives (rect, text, line, polygon) tagged with role classes for
// external styling.
//
// # Geometry
//
// Every section is measured in paddings and text lines:
//
//	name       = 2*padding + textHeight
//	attributes = padding                      (no entries)
//	           = 2*padding + n*textHeight     (n entries)
//	methods    = same as attributes
//	notes      = 2*padding + n*textHeight     (drawn below the box)
//
// [Box.Height] is name + attributes + methods. The note callout is drawn
// underneath that outline and is not part of the height; use [Box.Extent] for
// the full drawn height.
//
// # Example
//
//	b := uml.NewClass("Widget")
//	b.AddAttribute("id")
//	b.AddMethod("render()")
//
//	g := svg.NewElement("g")
//	b.Insert(g, uml.DefaultConfig())
package uml
