// Package ghostcipher hides short secrets inside visible text as a suffix of
// invisible Unicode code points.
//
// Every source character (code point 0..255) becomes one Encoded Unit: two
// symbols from a fixed 16-symbol Alphabet, high nibble first. The payload is
// not self-delimiting, so Reveal needs the secret length from the caller.
//
// Components:
//   - Encode/Decode, Hide/Reveal: pure, stateless text functions.
//   - EncodeBytes/DecodeBytes: same mapping over raw bytes (never out of range).
//   - Sealer[V]: typed values via a Codec[V], with the secret length kept in a
//     Provider-backed ledger so Open needs only the combined text.
//
// Alphabet order is a wire format. Changing it breaks every previously
// produced payload.
//
// Usage:
//
//	combined, _ := ghostcipher.Hide("Hello", "Hi")
//	secret, _ := ghostcipher.Reveal(combined, 2) // "Hi"
package ghostcipher
