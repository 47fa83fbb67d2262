package site

import (
	"github.com/marketfront/marketfront/pkg/render"
	"github.com/marketfront/marketfront/pkg/vdom"
)

// Landing composes the full landing page body.
func Landing() *vdom.VNode {
	return vdom.Div(vdom.Class("min-h-screen flex flex-col bg-white dark:bg-gray-950"),
		Navbar(),
		vdom.Main(
			Hero(),
			FeaturesSection(Features()),
		),
		SiteFooter(),
	)
}

// LandingPage returns the complete page data for the landing route.
func LandingPage() render.PageData {
	return render.PageData{
		Body:  Landing(),
		Title: brandName + " — " + heroTagline,
		Lang:  "en",
		Meta: []render.MetaTag{
			{Name: "description", Content: heroSubtitle},
			{Property: "og:title", Content: brandName},
			{Property: "og:description", Content: heroSubtitle},
			{Property: "og:type", Content: "website"},
		},
		Links: []render.LinkTag{
			{Rel: "icon", Href: "/assets/favicon.svg", Type: "image/svg+xml"},
		},
		StyleSheets: []string{"/assets/site.css"},
	}
}

// Routes maps URL paths to page data constructors. The exporter and the
// HTTP server both iterate this table so they cannot drift apart.
func Routes() map[string]func() render.PageData {
	return map[string]func() render.PageData{
		"/": LandingPage,
	}
}
