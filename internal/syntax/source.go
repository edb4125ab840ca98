package syntax

import "unicode/utf8"

// decodeRuneAt decodes the rune starting at byte offset off in buf. It
// returns (-1, 0) once off has reached the end of buf, matching the
// scanner's EOF sentinel convention. width is always >= 1 for a non-EOF
// result, even for invalid UTF-8 (width 1, rune utf8.RuneError), so the
// caller always makes forward progress.
func decodeRuneAt(buf []byte, off int) (r rune, width int) {
	if off >= len(buf) {
		return -1, 0
	}
	return utf8.DecodeRune(buf[off:])
}

// Character classification helpers, shared by the scanner's dispatch.

// isIdentifierStart reports whether r can begin an identifier: an ASCII
// letter, '_', '$', or any non-ASCII code point.
func isIdentifierStart(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_' || r == '$' || r > 0x7F
}

// isIdentifierPart reports whether r may continue an identifier: anything
// isIdentifierStart accepts, plus decimal digits.
func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || isDigit(r)
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isBinaryDigit reports whether r is a binary digit (0 or 1).
func isBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}

// isOctalDigit reports whether r is an octal digit (0-7). Octal is a strict
// superset of binary, following the binary ⊂ octal ⊂ decimal ⊂ hex
// acceptance-set hierarchy.
func isOctalDigit(r rune) bool {
	return isBinaryDigit(r) || r == '2' || r == '3' || r == '4' || r == '5' || r == '6' || r == '7'
}

// isDecimalDigit reports whether r is a decimal digit; decimal is a strict
// superset of octal.
func isDecimalDigit(r rune) bool {
	return isOctalDigit(r) || r == '8' || r == '9'
}

// isHexDigit reports whether r is a hexadecimal digit; hex is a strict
// superset of decimal.
func isHexDigit(r rune) bool {
	return isDecimalDigit(r) || 'a' <= lower(r) && lower(r) <= 'f'
}

// lower returns the lowercase version of r if r is an ASCII letter,
// otherwise returns r unchanged.
func lower(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// isScannerWhitespace reports whether r is whitespace the scanner skips
// without otherwise acting on it: space, tab, vertical tab. Newline and
// carriage return are handled specially by the scanner, not here.
func isScannerWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\v'
}
