package semantic

import (
	"strconv"

	"github.com/friscc/friscc/internal/tree"
)

// CanImplicit reports whether a value of type from may be used where a
// value of type to is expected without an explicit cast (spec.md §3.5,
// grounded on original_source/L3/main.cpp canImplicit): CHAR and INT
// scalars convert to themselves and CHAR widens to INT (INT never narrows
// to CHAR implicitly), and a non-const array implicitly decays to an array
// of a widenable element type; functions never implicitly convert.
func CanImplicit(from, to tree.Object) bool {
	if to.IsFunction {
		return false
	}
	widens := (from.Base == tree.CHAR && to.Base == tree.CHAR) ||
		(from.Base == tree.INT && to.Base == tree.INT) ||
		(from.Base == tree.CHAR && to.Base == tree.INT)

	if !from.Array && !to.Array {
		return widens
	}
	if from.Array && !from.Const && to.Array {
		return widens
	}
	return false
}

// CanExplicit additionally allows the one narrowing conversion a cast
// expression permits, INT to CHAR, on top of everything CanImplicit allows
// (spec.md §3.5 "<cast_izraz>").
func CanExplicit(from, to tree.Object) bool {
	if from.Base == tree.INT && to.Base == tree.CHAR {
		return true
	}
	return CanImplicit(from, to)
}

// IsLValue reports whether obj denotes an assignable, address-of-able
// location: not a function, not const, not an array (spec.md §3.5).
func IsLValue(obj tree.Object) bool {
	if obj.IsFunction {
		return false
	}
	return !obj.Const && !obj.Array
}

// IsValidInt reports whether str (optionally negated by minus, from a
// preceding unary MINUS) parses as a decimal, octal or hex integer literal
// that fits FRISC's 32-bit word (spec.md §4.3 "<primarni_izraz>" BROJ case).
func IsValidInt(str string, minus bool) bool {
	if minus {
		str = "-" + str
	}
	_, err := strconv.ParseInt(str, 0, 32)
	return err == nil
}

// isValidSpecial reports whether c is one of the six characters FRISC's
// char-literal grammar allows after a backslash escape.
func isValidSpecial(c byte) bool {
	switch c {
	case 't', 'n', '0', '\'', '"', '\\':
		return true
	default:
		return false
	}
}

// IsValidChar reports whether str (the raw lexeme, quotes included) is a
// well-formed `'x'` or `'\x'` character literal.
func IsValidChar(str string) bool {
	switch len(str) {
	case 3:
		return str[0] == '\'' && str[1] != '\'' && str[2] == '\''
	case 4:
		return str[0] == '\'' && str[1] == '\\' && isValidSpecial(str[2]) && str[3] == '\''
	default:
		return false
	}
}

// IsValidCharArray reports whether str (the raw lexeme, quotes included) is
// a well-formed string literal, returning its element count (excluding the
// implicit terminating null that `<inicijalizator>` resolution adds) or -1
// if malformed.
func IsValidCharArray(str string) int {
	inner := str[1 : len(str)-1]
	count := 0
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' {
			if i+1 >= len(inner) {
				return -1
			}
			if !isValidSpecial(inner[i+1]) {
				return -1
			}
			i++
			count++
		} else {
			count++
		}
	}
	return count
}

// IsValidArraySize reports whether str is a positive integer literal no
// greater than 1024, the array-declarator size bound (spec.md §4.3
// "<izravni_deklarator>").
func IsValidArraySize(str string) bool {
	n, err := strconv.Atoi(str)
	if err != nil {
		return false
	}
	return n > 0 && n <= 1024
}
