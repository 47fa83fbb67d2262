package ui

import "github.com/marketfront/marketfront/pkg/vdom"

// CardData describes the slots of a card container.
type CardData struct {
	// Header is optional content rendered above the title (icon badge, etc.).
	Header *vdom.VNode

	// Title is the card heading text.
	Title string

	// Content is the card body.
	Content *vdom.VNode

	// Class appends extra utility classes to the card wrapper.
	Class string
}

// Card renders a bordered container with header, title, and content slots.
func Card(data CardData) *vdom.VNode {
	cls := "group rounded-xl border border-gray-200 dark:border-gray-800 bg-white dark:bg-gray-900 p-6 transition-colors hover:border-gray-300 dark:hover:border-gray-700"
	if data.Class != "" {
		cls += " " + data.Class
	}

	return vdom.Div(vdom.Class(cls),
		data.Header,
		vdom.When(data.Title != "", func() *vdom.VNode {
			return vdom.H3(vdom.Class("text-lg font-semibold text-gray-900 dark:text-white"),
				vdom.Text(data.Title),
			)
		}),
		data.Content,
	)
}
