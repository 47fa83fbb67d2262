// Package vdom provides the element tree that marketfront pages are built
// from.
//
// Components are plain functions that return *VNode trees:
//
//	func Badge(label string) *vdom.VNode {
//	    return vdom.Span(vdom.Class("badge"), vdom.Text(label))
//	}
//
// Trees are immutable once built and carry no behavior; rendering them to
// HTML is the job of pkg/render.
package vdom
