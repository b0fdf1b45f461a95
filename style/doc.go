// Package style maps bracketed style tokens to raw terminal escape sequences.
//
// # Tokens
//
// A token is a name wrapped in square brackets. With the built-in ASCII
// table, "[bo]" becomes ESC[1m and "[re]" becomes ESC[0m:
//
//	ref := style.ASCII()
//	s := ref.Apply("[bo][fred]failed[re]")
//
// Unknown names are left alone, so "[nope]" survives substitution
// byte-for-byte. Token names are literal text and have no pattern syntax.
//
// # Built-in table
//
// The ASCII table defines 23 tokens:
//
//   - re, bo, th, ul, bl, rv, hd: reset and text attributes
//   - fblack ... fwhite: foreground colors
//   - bblack ... bwhite: background colors
//
// # Custom tables
//
// Tables can be built from a map with NewReference, derived from another
// table with Merge, or read from YAML with LoadReference. A writer needs
// the re token to close its level styles:
//
//	# tokens.yml
//	re: "\e[0m"
//	warn: "\e[1;33m"
//	dim: "\e[2m"
package style
