package site

import "github.com/marketfront/marketfront/internal/ui"

// Feature describes one card in the features grid.
// Values are defined once at build time and read every render.
type Feature struct {
	Title       string
	Description string
	Icon        ui.Icon
	Accent      ui.Token
}

// featureCatalog is the canonical ordered catalog. Order is meaningful:
// it is the grid layout order.
var featureCatalog = []Feature{
	{
		Title:       "Real-Time Market Data",
		Description: "Streaming quotes, depth, and candles for every listed instrument, delivered with sub-second latency.",
		Icon:        ui.IconCandles,
		Accent:      ui.TokenPrimary,
	},
	{
		Title:       "Lightning Execution",
		Description: "Orders route to the venue with the best price in milliseconds, with full fill transparency.",
		Icon:        ui.IconBolt,
		Accent:      ui.TokenBull,
	},
	{
		Title:       "Built-In Risk Controls",
		Description: "Position limits, stop-loss automation, and drawdown alerts keep downside where you set it.",
		Icon:        ui.IconShield,
		Accent:      ui.TokenBear,
	},
	{
		Title:       "Global Markets",
		Description: "Trade equities, FX, and futures across 40+ exchanges from a single account.",
		Icon:        ui.IconGlobe,
		Accent:      ui.TokenPrimary,
	},
	{
		Title:       "Unified Portfolio",
		Description: "Every holding, every venue, one ledger. P&L and exposure update as the market moves.",
		Icon:        ui.IconLayers,
		Accent:      ui.TokenBull,
	},
	{
		Title:       "Smart Screener",
		Description: "Scan the whole market on fundamentals, momentum, and volatility in a single query.",
		Icon:        ui.IconCompass,
		Accent:      ui.TokenPrimary,
	},
}

// Features returns the fixed ordered feature catalog.
// Callers receive a copy; the canonical order cannot be mutated.
func Features() []Feature {
	out := make([]Feature, len(featureCatalog))
	copy(out, featureCatalog)
	return out
}

// Testimonial is the static customer quote shown under the features grid.
type Testimonial struct {
	Quote  string
	Author string
	Role   string
}

// testimonial is fixed content, not data-driven.
var testimonial = Testimonial{
	Quote:  "I moved three portfolios over in a weekend. The execution speed is real, and the risk controls caught a fat-finger order on day two.",
	Author: "Dana Whitfield",
	Role:   "Portfolio Manager, Causeway Capital",
}

// CallToAction is the static closing block content.
type CallToAction struct {
	Heading string
	Body    string
	Button  string
	Href    string
	Badges  []TrustBadge
}

// TrustBadge is one item in the CTA trust row.
type TrustBadge struct {
	Label string
	Icon  ui.Icon
}

var callToAction = CallToAction{
	Heading: "Start trading in minutes",
	Body:    "Open an account, fund it, and place your first order before the next candle closes.",
	Button:  "Open an account",
	Href:    "/signup",
	Badges: []TrustBadge{
		{Label: "Bank-grade security", Icon: ui.IconLock},
		{Label: "No hidden fees", Icon: ui.IconCheck},
		{Label: "Cancel anytime", Icon: ui.IconCheck},
	},
}

// Stat is one entry in the hero stats row.
type Stat struct {
	Value string
	Label string
}

var heroStats = []Stat{
	{Value: "40+", Label: "Exchanges"},
	{Value: "<10ms", Label: "Order routing"},
	{Value: "280k", Label: "Active traders"},
	{Value: "99.99%", Label: "Uptime"},
}

// NavItem is one entry in the top navigation.
type NavItem struct {
	Label string
	Href  string
}

var navItems = []NavItem{
	{Label: "Features", Href: "#features"},
	{Label: "Pricing", Href: "/pricing"},
	{Label: "Docs", Href: "/docs"},
	{Label: "Status", Href: "/status"},
}

// FooterColumn groups footer links under a heading.
type FooterColumn struct {
	Heading string
	Links   []NavItem
}

var footerColumns = []FooterColumn{
	{
		Heading: "Product",
		Links: []NavItem{
			{Label: "Features", Href: "#features"},
			{Label: "Pricing", Href: "/pricing"},
			{Label: "API", Href: "/docs/api"},
		},
	},
	{
		Heading: "Company",
		Links: []NavItem{
			{Label: "About", Href: "/about"},
			{Label: "Careers", Href: "/careers"},
			{Label: "Press", Href: "/press"},
		},
	},
	{
		Heading: "Legal",
		Links: []NavItem{
			{Label: "Privacy", Href: "/privacy"},
			{Label: "Terms", Href: "/terms"},
			{Label: "Disclosures", Href: "/disclosures"},
		},
	},
}

const (
	brandName    = "Marketfront"
	heroTagline  = "Markets move fast. Move faster."
	heroSubtitle = "Marketfront is the trading platform for people who treat the market as a craft: real-time data, instant execution, and risk controls that never sleep."
)
