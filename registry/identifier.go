package registry

import (
	"fmt"
	"strings"
	"unicode"
)

// Identifier derives the variant identifier for the record:
// the pascal-cased network name with an "Account" suffix.
func (r AccountRecord) Identifier() string {
	return PascalCase(r.Network) + "Account"
}

// PascalCase splits s on non-alphanumeric runes and on lower-to-upper case
// boundaries, upper-cases the first rune of every segment and concatenates
// the segments. The transformation accepts arbitrary UTF-8 and is idempotent.
func PascalCase(s string) string {
	var (
		sb       strings.Builder
		boundary = true
		prev     rune
	)

	sb.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			boundary = true
			prev = r

			continue
		}

		// a lower case or digit rune followed by an upper case rune starts
		// a new segment
		if unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			boundary = true
		}

		if boundary {
			sb.WriteRune(unicode.ToUpper(r))
			boundary = false
		} else {
			sb.WriteRune(r)
		}

		prev = r
	}

	return sb.String()
}

// titleCase is PascalCase with the tail of each segment lower-cased,
// used for token variant names ("KTON" -> "Kton", "jDOT" -> "JDot").
func titleCase(s string) string {
	var (
		sb       strings.Builder
		boundary = true
		prev     rune
	)

	sb.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			boundary = true
			prev = r

			continue
		}

		if unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			boundary = true
		}

		if boundary {
			sb.WriteRune(unicode.ToUpper(r))
			boundary = false
		} else {
			sb.WriteRune(unicode.ToLower(r))
		}

		prev = r
	}

	return sb.String()
}

// ValidateIdentifier checks that id is a valid program identifier under
// Unicode XID: the first rune must be XID_Start, every following rune
// XID_Continue.
func ValidateIdentifier(id string) error {
	if id == "" {
		return fmt.Errorf("empty identifier")
	}

	for i, r := range id {
		if i == 0 {
			if !isXIDStart(r) {
				return fmt.Errorf("`%s` starts with `%c` which is not valid at the start", id, r)
			}

			continue
		}

		if !isXIDContinue(r) {
			return fmt.Errorf("invalid char `%c` in `%s`", r, id)
		}
	}

	return nil
}

// XID_Start per UAX #31: letters, letter numbers and Other_ID_Start, minus
// pattern syntax and pattern white space.
func isXIDStart(r rune) bool {
	if unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space) {
		return false
	}

	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_ID_Start)
}

// XID_Continue adds marks, decimal numbers, connector punctuation and
// Other_ID_Continue on top of XID_Start.
func isXIDContinue(r rune) bool {
	if isXIDStart(r) {
		return true
	}

	if unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space) {
		return false
	}

	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}
