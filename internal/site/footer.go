package site

import "github.com/marketfront/marketfront/pkg/vdom"

// SiteFooter renders the footer link columns and legal line.
func SiteFooter() *vdom.VNode {
	return vdom.Footer(vdom.Class("border-t border-gray-200 dark:border-gray-800 mt-auto"),
		vdom.Div(vdom.Class("max-w-6xl mx-auto px-5 py-12 grid gap-10 sm:grid-cols-3"),
			vdom.Map(footerColumns, footerColumn),
		),
		vdom.Div(vdom.Class("max-w-6xl mx-auto px-5 py-6 border-t border-gray-200 dark:border-gray-800 text-sm text-gray-500 dark:text-gray-400"),
			vdom.Text("© 2026 "+brandName+". Trading involves risk of loss."),
		),
	)
}

func footerColumn(col FooterColumn) *vdom.VNode {
	return vdom.Div(
		vdom.H4(vdom.Class("text-sm font-semibold text-gray-900 dark:text-white"),
			vdom.Text(col.Heading),
		),
		vdom.Ul(vdom.Class("mt-4 space-y-2"),
			vdom.Map(col.Links, func(link NavItem) *vdom.VNode {
				return vdom.Li(
					vdom.A(vdom.Href(link.Href),
						vdom.Class("text-sm text-gray-600 dark:text-gray-400 hover:text-gray-900 dark:hover:text-white transition-colors"),
						vdom.Text(link.Label),
					),
				)
			}),
		),
	)
}
