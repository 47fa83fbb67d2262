// Package ui holds the design-system glue shared by all page sections:
// accent color tokens, the icon set, and the card container.
package ui
