package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version  byte = 1
	kindSeal byte = 1

	recordLen = 4 + 1 + 1 + 8 + 4
)

var (
	ErrCorrupt = errors.New("ghostcipher: corrupt ledger record")
	magic4     = [...]byte{'G', 'H', 'S', 'T'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Record is one ledger entry: how many Encoded Units were appended to a
// combined text, and the ledger generation observed when it was written.
type Record struct {
	Gen   uint64
	Units uint32
}

// Seal: magic(4) | ver(1) | kind(1=seal) | gen(u64 be) | units(u32 be)
func EncodeRecord(r Record) []byte {
	var buf bytes.Buffer
	buf.Grow(recordLen)

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindSeal)

	var u8 [8]byte
	var u4 [4]byte

	binary.BigEndian.PutUint64(u8[:], r.Gen)
	buf.Write(u8[:])

	binary.BigEndian.PutUint32(u4[:], r.Units)
	buf.Write(u4[:])

	return buf.Bytes()
}

// DecodeRecord rejects anything that is not exactly one well-formed record,
// including trailing bytes.
func DecodeRecord(b []byte) (Record, error) {
	if len(b) != recordLen || !hasMagic(b) || b[4] != version || b[5] != kindSeal {
		return Record{}, ErrCorrupt
	}

	off := 6
	gen := binary.BigEndian.Uint64(b[off : off+8])
	off += 8
	units := binary.BigEndian.Uint32(b[off : off+4])

	return Record{Gen: gen, Units: units}, nil
}
