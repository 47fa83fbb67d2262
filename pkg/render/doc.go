// Package render converts VNode trees into HTML strings or streams.
//
// It handles all aspects of producing valid, secure HTML output:
//
//   - HTML5 compliant element rendering
//   - Proper text and attribute escaping (XSS prevention)
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, checked, etc.)
//   - Full page rendering with DOCTYPE, head, body
//
// # Basic Usage
//
// To render a VNode tree to a string:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// To stream HTML to a writer:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	err := renderer.RenderToWriter(w, node)
//
// # Full Page Rendering
//
// To render a complete HTML document:
//
//	page := render.PageData{
//	    Body:  bodyNode,
//	    Title: "My Page",
//	}
//	err := renderer.RenderPage(w, page)
//
// # Determinism
//
// Attribute keys are sorted before rendering, so the same tree always
// produces the same bytes. A Renderer holds no per-render state and is
// safe for concurrent use.
//
// # Security
//
// All text content is escaped by default to prevent XSS attacks.
// Raw HTML can be inserted using KindRaw nodes, but should only be
// used with trusted content.
package render
