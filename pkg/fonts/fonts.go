// Package fonts names the hand-drawn style's font stack.
//
// The upstream xkcd-script font files this package used to embed via
// go:embed are binary assets that never made it into this tree, so
// the embedding is dropped; the CSS font stack itself still earns a
// shared, named home rather than a string literal buried in a theme
// definition.
package fonts

// FontFamily is the CSS font-family name for the hand-drawn style's font.
const FontFamily = "xkcd Script"

// FallbackFontFamily is the full CSS font-family stack, falling back to
// common handwriting-style fonts when xkcd Script isn't installed.
const FallbackFontFamily = `'xkcd Script', 'Comic Sans MS', 'Bradley Hand', 'Segoe Script', sans-serif`
