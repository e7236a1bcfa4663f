package ghostcipher

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength       = errors.New("ghostcipher: invalid length; should be even")
	ErrUnknownSymbol       = errors.New("ghostcipher: unknown symbol")
	ErrInsufficientLength  = errors.New("ghostcipher: text shorter than requested secret")
	ErrOutOfRangeCharacter = errors.New("ghostcipher: character out of range")
	ErrSecretTooLarge      = errors.New("ghostcipher: secret too large")
)

// SymbolError reports a rune outside the alphabet found while decoding.
// Offset counts runes from the start of the decoded input.
type SymbolError struct {
	Offset int
	Symbol rune
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("ghostcipher: unknown symbol %U at offset %d", e.Symbol, e.Offset)
}

func (e *SymbolError) Unwrap() error { return ErrUnknownSymbol }

// RangeError reports a source character that does not fit in one Encoded Unit.
type RangeError struct {
	Offset int
	Char   rune
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ghostcipher: character %U at offset %d exceeds %U", e.Char, e.Offset, rune(MaxCode))
}

func (e *RangeError) Unwrap() error { return ErrOutOfRangeCharacter }

// ForgetError is returned by Sealer.Forget when the generation bump, the
// record delete, or both failed.
type ForgetError struct {
	Key     string
	BumpErr error
	DelErr  error
}

func (e *ForgetError) Error() string {
	switch {
	case e.BumpErr != nil && e.DelErr != nil:
		return fmt.Sprintf("forget %q failed: gen bump and delete failed: bump=%v; delete=%v",
			e.Key, e.BumpErr, e.DelErr)
	case e.BumpErr != nil:
		return fmt.Sprintf("forget %q: gen bump failed: %v", e.Key, e.BumpErr)
	case e.DelErr != nil:
		return fmt.Sprintf("forget %q: delete failed: %v", e.Key, e.DelErr)
	default:
		return fmt.Sprintf("forget %q: unknown error", e.Key)
	}
}

func (e *ForgetError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.BumpErr != nil {
		errs = append(errs, e.BumpErr)
	}
	if e.DelErr != nil {
		errs = append(errs, e.DelErr)
	}
	return errs
}
