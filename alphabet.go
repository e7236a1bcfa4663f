package ghostcipher

// Alphabet holds the 16 invisible digit symbols; the index is the nibble value.
// The order is a wire format: decode depends on exact index correspondence.
var Alphabet = [16]rune{
	'\u200B', '\u200C', '\u200D', '\u2060',
	'\u2061', '\u2062', '\u2063', '\u2064',
	'\u206A', '\u206B', '\u206C', '\u206D',
	'\u206E', '\u206F', '\uFEFF', '\uFFF9',
}

const (
	base = 16

	// MaxCode is the largest code point one Encoded Unit can carry.
	MaxCode = base*base - 1

	// UnitSize is the number of symbols per encoded character.
	UnitSize = 2
)

// private copy; the exported var can be reassigned by importers
var digits = Alphabet

var nibble map[rune]byte

func init() {
	nibble = make(map[rune]byte, len(digits))
	for i, r := range digits {
		nibble[r] = byte(i)
	}
}

// IsSymbol reports whether r is one of the alphabet digits.
func IsSymbol(r rune) bool {
	_, ok := nibble[r]
	return ok
}
