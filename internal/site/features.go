package site

import (
	"github.com/marketfront/marketfront/internal/ui"
	"github.com/marketfront/marketfront/pkg/vdom"
)

// FeaturesSection renders the features grid, testimonial, and call to action.
//
// Rendering is a pure function of the catalog: the same input always
// produces the same tree. An empty catalog renders an empty grid; the
// testimonial and CTA blocks render regardless.
func FeaturesSection(features []Feature) *vdom.VNode {
	return vdom.Section(vdom.ID("features"), vdom.Class("max-w-6xl mx-auto px-5 py-20"),
		featuresHeading(),
		vdom.Div(vdom.Class("grid gap-6 sm:grid-cols-2 lg:grid-cols-3"),
			vdom.Map(features, featureCard),
		),
		testimonialBlock(testimonial),
		ctaBlock(callToAction),
	)
}

// featuresHeading is the fixed heading block above the grid.
func featuresHeading() *vdom.VNode {
	return vdom.Div(vdom.Class("max-w-2xl mx-auto text-center mb-14"),
		vdom.H2(vdom.Class("text-3xl sm:text-4xl font-bold text-gray-900 dark:text-white"),
			vdom.Text("Everything a serious trader needs"),
		),
		vdom.P(vdom.Class("mt-4 text-lg text-gray-600 dark:text-gray-400"),
			vdom.Text("No add-ons, no upsells. The full toolkit ships with every account."),
		),
	)
}

// featureCard renders one catalog entry. Entries missing a title or
// description are skipped rather than aborting the section.
func featureCard(f Feature) *vdom.VNode {
	if f.Title == "" || f.Description == "" {
		return nil
	}

	return ui.Card(ui.CardData{
		Header: vdom.Div(
			vdom.Class("mb-4 inline-flex h-12 w-12 items-center justify-center rounded-lg "+f.Accent.BadgeClass()),
			vdom.Data("accent", f.Accent.String()),
			f.Icon.Node("h-6 w-6 "+f.Accent.TextClass()),
		),
		Title: f.Title,
		Content: vdom.P(vdom.Class("mt-2 text-sm leading-relaxed text-gray-600 dark:text-gray-400"),
			vdom.Text(f.Description),
		),
	})
}

// testimonialBlock renders the fixed customer quote.
func testimonialBlock(t Testimonial) *vdom.VNode {
	return vdom.Figure(vdom.Class("mt-20 max-w-3xl mx-auto text-center"),
		ui.IconQuote.Node("mx-auto mb-6 h-8 w-8 "+ui.TokenPrimary.TextClass()),
		vdom.Blockquote(vdom.Class("text-xl font-medium text-gray-900 dark:text-white"),
			vdom.Textf("“%s”", t.Quote),
		),
		vdom.Figcaption(vdom.Class("mt-6 text-sm text-gray-600 dark:text-gray-400"),
			vdom.Span(vdom.Class("font-semibold text-gray-900 dark:text-white"), vdom.Text(t.Author)),
			vdom.Textf(" — %s", t.Role),
		),
	)
}

// ctaBlock renders the fixed closing call to action with trust badges.
func ctaBlock(cta CallToAction) *vdom.VNode {
	return vdom.Div(vdom.Class("mt-20 rounded-2xl border border-gray-200 dark:border-gray-800 bg-gray-50 dark:bg-gray-900 px-6 py-14 text-center"),
		vdom.H2(vdom.Class("text-3xl font-bold text-gray-900 dark:text-white"),
			vdom.Text(cta.Heading),
		),
		vdom.P(vdom.Class("mt-4 max-w-xl mx-auto text-gray-600 dark:text-gray-400"),
			vdom.Text(cta.Body),
		),
		vdom.A(vdom.Href(cta.Href),
			vdom.Class("mt-8 inline-flex items-center gap-2 rounded-lg bg-indigo-600 px-6 py-3 font-semibold text-white transition-colors hover:bg-indigo-500"),
			vdom.Text(cta.Button),
			ui.IconArrowRight.Node("h-4 w-4"),
		),
		vdom.Div(vdom.Class("mt-8 flex flex-wrap items-center justify-center gap-6 text-sm text-gray-500 dark:text-gray-400"),
			vdom.Map(cta.Badges, trustBadge),
		),
	)
}

// trustBadge renders one icon+label pair in the CTA trust row.
func trustBadge(b TrustBadge) *vdom.VNode {
	return vdom.Span(vdom.Class("inline-flex items-center gap-2"),
		b.Icon.Node("h-4 w-4"),
		vdom.Text(b.Label),
	)
}
