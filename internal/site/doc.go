// Package site holds the marketing site's content and section renderers.
//
// Content (the feature catalog, testimonial, call to action, nav and footer
// links) is compiled in: defined once, read every render. Section renderers
// are pure functions from that content to vdom trees, so rendering the same
// catalog always yields the same page.
package site
