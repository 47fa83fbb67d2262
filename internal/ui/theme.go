package ui

// Token is a semantic accent color resolved by the site stylesheet.
// The set is closed: components carry tokens, never raw color values.
type Token uint8

const (
	// TokenPrimary is the brand accent.
	TokenPrimary Token = iota

	// TokenBull is the positive/upside accent.
	TokenBull

	// TokenBear is the negative/downside accent.
	TokenBear
)

// String returns the token's symbolic name.
func (t Token) String() string {
	switch t {
	case TokenBull:
		return "bull"
	case TokenBear:
		return "bear"
	default:
		return "primary"
	}
}

// ParseToken resolves a symbolic name to a Token.
// Unknown names fall back to TokenPrimary.
func ParseToken(name string) Token {
	switch name {
	case "bull":
		return TokenBull
	case "bear":
		return TokenBear
	default:
		return TokenPrimary
	}
}

// accentClasses holds the utility classes each token resolves to.
type accentClasses struct {
	text   string
	badge  string
	border string
}

var accentTable = map[Token]accentClasses{
	TokenPrimary: {
		text:   "text-indigo-600 dark:text-indigo-400",
		badge:  "bg-indigo-50 dark:bg-indigo-500/10",
		border: "border-indigo-200 dark:border-indigo-500/30",
	},
	TokenBull: {
		text:   "text-emerald-600 dark:text-emerald-400",
		badge:  "bg-emerald-50 dark:bg-emerald-500/10",
		border: "border-emerald-200 dark:border-emerald-500/30",
	},
	TokenBear: {
		text:   "text-rose-600 dark:text-rose-400",
		badge:  "bg-rose-50 dark:bg-rose-500/10",
		border: "border-rose-200 dark:border-rose-500/30",
	},
}

// classes resolves the token, falling back to primary for unknown values.
func (t Token) classes() accentClasses {
	if c, ok := accentTable[t]; ok {
		return c
	}
	return accentTable[TokenPrimary]
}

// TextClass returns the text tint classes for the token.
func (t Token) TextClass() string { return t.classes().text }

// BadgeClass returns the background tint classes for the token.
func (t Token) BadgeClass() string { return t.classes().badge }

// BorderClass returns the border tint classes for the token.
func (t Token) BorderClass() string { return t.classes().border }
