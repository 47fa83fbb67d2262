package ui

import "github.com/marketfront/marketfront/pkg/vdom"

// Icon identifies a glyph from the site's icon set.
// The set is closed; each value maps to inline SVG markup so pages have no
// icon-font or sprite-sheet dependency.
type Icon uint8

const (
	IconNone Icon = iota
	IconCandles
	IconBolt
	IconShield
	IconGlobe
	IconLayers
	IconCompass
	IconQuote
	IconCheck
	IconLock
	IconArrowRight
)

// svgOpen is the shared prefix for all glyphs: 24x24 viewBox, stroked with
// currentColor so the surrounding text tint applies.
const svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">`

var glyphs = map[Icon]string{
	IconCandles:    svgOpen + `<line x1="6" y1="4" x2="6" y2="20"/><rect x="4" y="8" width="4" height="7"/><line x1="12" y1="2" x2="12" y2="22"/><rect x="10" y="6" width="4" height="9"/><line x1="18" y1="5" x2="18" y2="19"/><rect x="16" y="9" width="4" height="6"/></svg>`,
	IconBolt:       svgOpen + `<polygon points="13 2 3 14 12 14 11 22 21 10 12 10 13 2"/></svg>`,
	IconShield:     svgOpen + `<path d="M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z"/></svg>`,
	IconGlobe:      svgOpen + `<circle cx="12" cy="12" r="10"/><line x1="2" y1="12" x2="22" y2="12"/><path d="M12 2a15.3 15.3 0 0 1 4 10 15.3 15.3 0 0 1-4 10 15.3 15.3 0 0 1-4-10 15.3 15.3 0 0 1 4-10z"/></svg>`,
	IconLayers:     svgOpen + `<polygon points="12 2 2 7 12 12 22 7 12 2"/><polyline points="2 17 12 22 22 17"/><polyline points="2 12 12 17 22 12"/></svg>`,
	IconCompass:    svgOpen + `<circle cx="12" cy="12" r="10"/><polygon points="16.24 7.76 14.12 14.12 7.76 16.24 9.88 9.88 16.24 7.76"/></svg>`,
	IconQuote:      svgOpen + `<path d="M3 21c3-1 5-3.5 5-8V5H2v8h4c0 3-1 5-3 6z"/><path d="M14 21c3-1 5-3.5 5-8V5h-6v8h4c0 3-1 5-3 6z"/></svg>`,
	IconCheck:      svgOpen + `<polyline points="20 6 9 17 4 12"/></svg>`,
	IconLock:       svgOpen + `<rect x="3" y="11" width="18" height="11" rx="2" ry="2"/><path d="M7 11V7a5 5 0 0 1 10 0v4"/></svg>`,
	IconArrowRight: svgOpen + `<line x1="5" y1="12" x2="19" y2="12"/><polyline points="12 5 19 12 12 19"/></svg>`,
}

// Node returns the glyph wrapped in a span carrying the given classes.
// Unknown icons (including IconNone) render nothing.
func (i Icon) Node(classes ...string) *vdom.VNode {
	markup, ok := glyphs[i]
	if !ok {
		return nil
	}
	return vdom.Span(vdom.Class(classes...), vdom.Raw(markup))
}
