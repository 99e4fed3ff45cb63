// Package ui holds the small pieces of styled, non-interactive output that the
// one-shot commands share: the ANSI color set, status symbols, and a
// table renderer built on bubbles/table.
//
// Colors are basic ANSI codes so output follows the user's terminal theme:
//
//	ColorSuccess   (green)
//	ColorError     (red)
//	ColorWarning   (yellow)
//	ColorInfo      (cyan)
//	ColorSecondary (blue)
//	ColorAccent    (magenta)
//	ColorPrimary   (white)
//	ColorMuted     (gray)
//
// Palette lists the first seven in ANSI order; the dashboard draws it as its
// swatch strip.
package ui
