package pdf

import "strings"

// The core fonts carry a single-byte WinAnsi (CP1252) glyph table. Every
// string that reaches a draw or measure call must pass through Sanitize
// first; anything the encoding cannot represent would otherwise fail the
// render outright.

const tabSpaces = "    "

// cp1252Extras are the printable code points CP1252 maps into 0x80-0x9F.
var cp1252Extras = map[rune]struct{}{
	'€': {}, // euro sign
	'‚': {}, 'ƒ': {}, '„': {}, '…': {}, '†': {},
	'‡': {}, 'ˆ': {}, '‰': {}, 'Š': {}, '‹': {},
	'Œ': {}, 'Ž': {}, '‘': {}, '’': {}, '“': {},
	'”': {}, '•': {}, '–': {}, '—': {}, '˜': {},
	'™': {}, 'š': {}, '›': {}, 'œ': {}, 'ž': {},
	'Ÿ': {},
}

// ligatures that the font has no single glyph for, expanded to their
// constituent letters before the encodable-range check.
var ligatures = map[rune]string{
	'ﬀ': "ff",
	'ﬁ': "fi",
	'ﬂ': "fl",
	'ﬃ': "ffi",
	'ﬄ': "ffl",
}

// Sanitize normalizes arbitrary input into the glyph set the font encodes.
// Line endings collapse to \n, tabs expand to spaces, typographic ligatures
// expand to their letters, remaining control characters are stripped, and
// any rune outside the CP1252 range becomes a literal '?'.
// Sanitize is idempotent.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))

	skipLF := false
	for _, r := range text {
		if skipLF {
			skipLF = false
			if r == '\n' {
				continue
			}
		}
		switch {
		case r == '\r':
			b.WriteByte('\n')
			skipLF = true
		case r == '\n':
			b.WriteByte('\n')
		case r == '\t':
			b.WriteString(tabSpaces)
		case r < 0x20, r >= 0x7F && r < 0xA0:
			// C0/C1 controls (and DEL) other than newline
		case r <= 0x7E, r >= 0xA0 && r <= 0xFF:
			b.WriteRune(r)
		default:
			if exp, ok := ligatures[r]; ok {
				b.WriteString(exp)
			} else if _, ok := cp1252Extras[r]; ok {
				b.WriteRune(r)
			} else {
				b.WriteByte('?')
			}
		}
	}
	return b.String()
}

// encodable reports whether a rune survives Sanitize unchanged. Used by tests
// to state the closure property.
func encodable(r rune) bool {
	if r == '\n' {
		return true
	}
	if r >= 0x20 && r <= 0x7E {
		return true
	}
	if r >= 0xA0 && r <= 0xFF {
		return true
	}
	_, ok := cp1252Extras[r]
	return ok
}
