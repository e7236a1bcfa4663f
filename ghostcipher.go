package ghostcipher

import (
	"strings"
	"unicode/utf8"
)

// Encode maps every character of text to one Encoded Unit (high nibble first).
// Characters above MaxCode fail with a *RangeError instead of being truncated.
func Encode(text string) (string, error) {
	var b strings.Builder
	b.Grow(utf8.RuneCountInString(text) * UnitSize * 3) // alphabet runes are 3 bytes in UTF-8

	i := 0
	for _, r := range text {
		if r > MaxCode {
			return "", &RangeError{Offset: i, Char: r}
		}
		writeUnit(&b, byte(r))
		i++
	}
	return b.String(), nil
}

// EncodeBytes is Encode over raw bytes. Every byte fits in one unit.
func EncodeBytes(p []byte) string {
	var b strings.Builder
	b.Grow(len(p) * UnitSize * 3)
	for _, c := range p {
		writeUnit(&b, c)
	}
	return b.String()
}

func writeUnit(b *strings.Builder, c byte) {
	b.WriteRune(digits[c/byte(base)])
	b.WriteRune(digits[c%byte(base)])
}

// Decode is the inverse of Encode.
// Odd symbol counts fail with ErrInvalidLength; foreign runes with a *SymbolError.
func Decode(invisible string) (string, error) {
	codes, err := decodeUnits(invisible)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(codes) * 2)
	for _, c := range codes {
		b.WriteRune(rune(c))
	}
	return b.String(), nil
}

// DecodeBytes is the inverse of EncodeBytes.
func DecodeBytes(invisible string) ([]byte, error) {
	return decodeUnits(invisible)
}

func decodeUnits(s string) ([]byte, error) {
	n := utf8.RuneCountInString(s)
	if n%UnitSize != 0 {
		return nil, ErrInvalidLength
	}

	out := make([]byte, 0, n/UnitSize)
	var high byte
	i := 0
	for _, r := range s {
		v, ok := nibble[r]
		if !ok {
			return nil, &SymbolError{Offset: i, Symbol: r}
		}
		if i%UnitSize == 0 {
			high = v
		} else {
			out = append(out, high*byte(base)+v)
		}
		i++
	}
	return out, nil
}

// Hide appends the encoded secret to carrier. An empty secret returns carrier.
func Hide(carrier, secret string) (string, error) {
	enc, err := Encode(secret)
	if err != nil {
		return "", err
	}
	return carrier + enc, nil
}

// Reveal decodes the last secretLength Encoded Units of combined.
//
// The payload carries no length marker. A secretLength smaller than the real
// payload silently returns its tail; a larger one fails with
// ErrInsufficientLength when combined is too short, or with a decode error
// when the window reaches into the visible carrier.
func Reveal(combined string, secretLength int) (string, error) {
	_, secret, err := Split(combined, secretLength)
	return secret, err
}

// RevealBytes is Reveal for payloads written with EncodeBytes.
func RevealBytes(combined string, n int) ([]byte, error) {
	_, tail, err := cut(combined, n)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(tail)
}

// Split is Reveal that also returns the visible prefix of combined.
func Split(combined string, secretLength int) (carrier, secret string, err error) {
	carrier, tail, err := cut(combined, secretLength)
	if err != nil {
		return "", "", err
	}
	secret, err = Decode(tail)
	if err != nil {
		return "", "", err
	}
	return carrier, secret, nil
}

// cut splits s before its last units*UnitSize runes.
func cut(s string, units int) (head, tail string, err error) {
	switch {
	case units < 0:
		return "", "", ErrInvalidLength
	case units == 0:
		return s, "", nil
	}

	want := units * UnitSize
	if want < units || utf8.RuneCountInString(s) < want { // overflow-safe
		return "", "", ErrInsufficientLength
	}

	off := len(s)
	for i := 0; i < want; i++ {
		_, size := utf8.DecodeLastRuneInString(s[:off])
		off -= size
	}
	return s[:off], s[off:], nil
}
