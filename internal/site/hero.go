package site

import "github.com/marketfront/marketfront/pkg/vdom"

// Hero renders the opening headline, subtitle, and stats row.
func Hero() *vdom.VNode {
	return vdom.Section(vdom.Class("max-w-6xl mx-auto px-5 pt-24 pb-16 text-center"),
		vdom.H1(vdom.Class("text-4xl sm:text-6xl font-bold tracking-tight text-gray-900 dark:text-white"),
			vdom.Text(heroTagline),
		),
		vdom.P(vdom.Class("mt-6 max-w-2xl mx-auto text-lg text-gray-600 dark:text-gray-400"),
			vdom.Text(heroSubtitle),
		),
		vdom.Div(vdom.Class("mt-10 flex items-center justify-center gap-4"),
			vdom.A(vdom.Href("/signup"),
				vdom.Class("rounded-lg bg-indigo-600 px-6 py-3 font-semibold text-white transition-colors hover:bg-indigo-500"),
				vdom.Text("Open an account"),
			),
			vdom.A(vdom.Href("#features"),
				vdom.Class("rounded-lg border border-gray-300 dark:border-gray-700 px-6 py-3 font-semibold text-gray-900 dark:text-white transition-colors hover:bg-gray-50 dark:hover:bg-gray-800"),
				vdom.Text("See features"),
			),
		),
		vdom.Dl(vdom.Class("mt-16 grid grid-cols-2 gap-8 sm:grid-cols-4"),
			vdom.Map(heroStats, statItem),
		),
	)
}

func statItem(s Stat) *vdom.VNode {
	return vdom.Div(
		vdom.Dd(vdom.Class("text-3xl font-bold text-gray-900 dark:text-white"), vdom.Text(s.Value)),
		vdom.Dt(vdom.Class("mt-1 text-sm text-gray-500 dark:text-gray-400"), vdom.Text(s.Label)),
	)
}
