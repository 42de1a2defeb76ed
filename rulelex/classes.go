package rulelex

// ASCII byte classes for Class rules and Options.Skip. Byte-oriented on
// purpose: bytes >= 0x80 belong to no class, so multi-byte codepoints fall
// through to the unknown token unless a literal rule covers them.

// Digit reports an ASCII decimal digit.
func Digit(b byte) bool { return b >= '0' && b <= '9' }

// Hex reports an ASCII hexadecimal digit.
func Hex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// Alpha reports an ASCII letter or underscore.
func Alpha(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// Alnum reports an ASCII letter, underscore, or decimal digit.
func Alnum(b byte) bool { return Alpha(b) || Digit(b) }

// Space reports a space or tab.
func Space(b byte) bool { return b == ' ' || b == '\t' }

// Newline reports a line-break byte.
func Newline(b byte) bool { return b == '\n' || b == '\r' }

// Whitespace reports any of Space or Newline.
func Whitespace(b byte) bool { return Space(b) || Newline(b) }
