package types

import "unicode"

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// MaxIdentifierLen is the longest name accepted for a function or group
const MaxIdentifierLen = 100

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// IsIdentifier returns true if the string is a valid function or group name:
// it starts with a letter or underscore, contains only letters, digits,
// underscores and hyphens, and is at most MaxIdentifierLen runes long
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	n := 0
	for i, r := range s {
		if n++; n > MaxIdentifierLen {
			return false
		}
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return false
		}
	}
	return true
}
