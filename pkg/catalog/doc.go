// Package catalog holds hand-authored box declarations.
//
// A [Catalog] is an ordered, name-indexed list of [uml.Box] values plus any
// number of [Sheet] values: package symbols whose member boxes are placed at
// author-given offsets. Catalogs are written in TOML:
//
//	name = "cli2"
//
//	[[box]]
//	name = "Parent"
//	kind = "interface"
//	methods = ["processParent(...)"]
//	notes = ["-f <arg1>"]
//
//	[[sheet]]
//	name = "org.apache.commons.cli2"
//	width = 400
//	height = 240
//
//	  [[sheet.member]]
//	  box = "Parent"
//	  x = 20
//	  y = 40
//
// [CLI2] returns the built-in declarations for the cli2 command-line parsing
// library used in its site documentation.
package catalog
