package site

import (
	"github.com/marketfront/marketfront/internal/ui"
	"github.com/marketfront/marketfront/pkg/vdom"
)

// Navbar renders the fixed top navigation.
func Navbar() *vdom.VNode {
	return vdom.Header(vdom.Class("border-b border-gray-200 dark:border-gray-800"),
		vdom.Div(vdom.Class("max-w-6xl mx-auto px-5 py-4 flex items-center justify-between"),
			vdom.A(vdom.Href("/"), vdom.Class("flex items-center gap-2 font-bold text-lg text-gray-900 dark:text-white hover:opacity-80 transition-opacity"),
				ui.IconCandles.Node("h-6 w-6 "+ui.TokenPrimary.TextClass()),
				vdom.Text(brandName),
			),
			vdom.Nav(vdom.Class("hidden sm:flex items-center gap-6"), vdom.AriaLabel("Main"),
				vdom.Map(navItems, navLink),
			),
			vdom.A(vdom.Href("/signup"),
				vdom.Class("rounded-lg bg-indigo-600 px-4 py-2 text-sm font-semibold text-white transition-colors hover:bg-indigo-500"),
				vdom.Text("Get started"),
			),
		),
	)
}

func navLink(item NavItem) *vdom.VNode {
	return vdom.A(vdom.Href(item.Href),
		vdom.Class("text-sm text-gray-600 dark:text-gray-300 hover:text-gray-900 dark:hover:text-white transition-colors"),
		vdom.Text(item.Label),
	)
}
