// Package codec turns typed values into the bytes that Sealer hides.
//
// Every output byte becomes one invisible Encoded Unit (two symbols), so
// compact formats (CBOR, Msgpack, Protobuf) keep the hidden suffix short.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
