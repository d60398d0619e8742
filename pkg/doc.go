// Package pkg holds the umlsvg libraries.
//
// The data flow for one diagram:
//
//	[catalog] TOML or built-in declarations
//	     ↓
//	[uml] Box / Package shapes with a Config
//	     ↓
//	[svg] element tree
//	     ↓
//	[sink] SVG, PNG or PDF bytes
//
// [cache], [server] and [observability] support the CLI and the HTTP
// preview; [errors] carries coded errors across all of them.
//
// Quick start:
//
//	b := uml.NewClass("Widget")
//	b.AddAttribute("id")
//	b.AddMethod("render()")
//	os.WriteFile("widget.svg", sink.RenderSVG(b), 0o644)
package pkg
